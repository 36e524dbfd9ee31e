package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/mirak10/PeopleIQ/internal/config"
	"github.com/mirak10/PeopleIQ/internal/messaging/kafka"
	"github.com/mirak10/PeopleIQ/internal/messaging/kafka/producer"
	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerRequired = errors.New("KAFKA_BROKER is required")

// RunWorker relays pending outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	_, sqlDB, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter := connection.NewKafkaWriter(cfg.Kafka.Broker)
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, log, cfg.Kafka.OutboxPollInterval)

	log.Info("worker shutting down")
	return nil
}
