package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mirak10/PeopleIQ/internal/config"
	"github.com/mirak10/PeopleIQ/internal/messaging/kafka/consumer"
	"github.com/mirak10/PeopleIQ/internal/prediction"
	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RunConsumer applies the prediction feed topic to the store until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	gormDB, sqlDB, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Views cached by the api are dropped after every applied batch.
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	predictionRepo := prediction.NewRepository(gormDB)
	viewCache := prediction.NewViewCache(rdb, cfg.Redis.CacheTTL, logger)
	ingestor := prediction.NewIngestor(sqlDB, predictionRepo, viewCache, logger)

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.PredictionTopic, cfg.Kafka.PredictionGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("consuming prediction feed",
		zap.String("topic", cfg.Kafka.PredictionTopic),
		zap.String("group_id", cfg.Kafka.PredictionGroupID),
	)
	consumer.ConsumePredictionFeed(ctx, reader, ingestor, logger)

	log.Info("consumer shutting down")
	return nil
}
