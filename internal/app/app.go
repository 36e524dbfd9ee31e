package app

import (
	"database/sql"

	"github.com/mirak10/PeopleIQ/internal/config"
	"github.com/mirak10/PeopleIQ/internal/metrics"
	"github.com/mirak10/PeopleIQ/internal/middleware"
	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the router and the connections it was built on.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	gormDB, sqlDB, err := openDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries, log)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set; prediction cache and idempotency keys disabled")
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(NewHealthHandler(sqlDB, rdb), cfg.HTTP.AllowedOrigins())

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		_ = sqlDB.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	return &App{Router: router, DB: sqlDB, Redis: rdb}, nil
}

// NewRouter returns an engine with the global middleware and the
// unauthenticated operational endpoints.
func NewRouter(health *HealthHandler, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(corsOrigins))
	router.Use(middleware.RequestID())
	router.Use(metrics.GinMiddleware())

	router.GET("/healthz", health.Check)
	router.GET("/metrics", metrics.Handler())

	return router
}

func openDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries, logger)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}
