package app

import (
	"database/sql"

	"github.com/mirak10/PeopleIQ/internal/auth"
	"github.com/mirak10/PeopleIQ/internal/config"
	"github.com/mirak10/PeopleIQ/internal/employee"
	"github.com/mirak10/PeopleIQ/internal/messaging/kafka"
	"github.com/mirak10/PeopleIQ/internal/prediction"
	"github.com/mirak10/PeopleIQ/internal/rbac"
	"github.com/mirak10/PeopleIQ/internal/rbac/infra"
	"github.com/mirak10/PeopleIQ/internal/shared/counter"
	"github.com/mirak10/PeopleIQ/internal/shared/token"
	"github.com/mirak10/PeopleIQ/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	predictionRepo := prediction.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, nil, logger)
	if err != nil {
		return err
	}
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// --- Services ---
	viewCache := prediction.NewViewCache(rdb, cfg.Redis.CacheTTL, logger)
	authService := auth.NewService(db, userRepo, employeeRepo, counterRepo, tokens, logger)
	employeeService := employee.NewService(db, employeeRepo, userRepo, counterRepo, outboxRepo, logger)
	predictionService := prediction.NewService(predictionRepo, viewCache, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieOptions{
		Secure: cfg.App.IsProduction(),
		MaxAge: cfg.Auth.TokenTTL,
	}, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	predictionHandler := prediction.NewHandler(predictionService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokens, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, tokens, rdb, logger)
		prediction.RegisterRoutes(api, predictionHandler, rbacService, tokens, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, tokens, logger)
	}

	return nil
}
