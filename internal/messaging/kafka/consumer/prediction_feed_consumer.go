package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mirak10/PeopleIQ/internal/events"
	"github.com/mirak10/PeopleIQ/internal/metrics"
	"github.com/mirak10/PeopleIQ/internal/prediction"
	"github.com/mirak10/PeopleIQ/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	outcomeApplied  = "applied"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
	outcomeSkipped  = "skipped"
)

// Retry delays for a message that failed transiently. The delay doubles up to
// the cap and the message is retried until it applies or ctx is done.
var (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumePredictionFeed applies scoring pipeline batches until ctx is done.
// Messages that can never succeed are committed. A transient failure blocks the
// partition: the same message is retried before anything else is fetched, so a
// later commit can never move the offset past it.
func ConsumePredictionFeed(
	ctx context.Context,
	reader MessageReader,
	ingestor prediction.Ingestor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.prediction_feed")
	log.Info("prediction feed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("prediction feed consumer stopped")
				return
			}
			log.Error("fetch prediction feed message failed", zap.Error(err))
			continue
		}

		if !applyWithRetry(ctx, msg, ingestor, log) {
			log.Info("prediction feed consumer stopped", zap.Int64("pending_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit prediction feed message failed", zap.Error(err))
		}
	}
}

// applyWithRetry reports false when ctx ended before msg reached a final outcome.
func applyWithRetry(ctx context.Context, msg kafkago.Message, ingestor prediction.Ingestor, log *zap.Logger) bool {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		eventType, outcome := handleFeedMessage(ctx, msg, ingestor, log)
		metrics.FeedMessages.WithLabelValues(eventType, outcome).Inc()
		if outcome != outcomeFailed {
			return true
		}

		log.Warn("retrying prediction feed message",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		delay = min(delay*2, retryMaxDelay)
	}
}

func handleFeedMessage(ctx context.Context, msg kafkago.Message, ingestor prediction.Ingestor, log *zap.Logger) (string, string) {
	var event events.PredictionFeedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode prediction feed event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return "unknown", outcomeInvalid
	}
	return event.EventType, applyFeedEvent(ctx, event, msg.Offset, ingestor, log)
}

func applyFeedEvent(ctx context.Context, event events.PredictionFeedEvent, offset int64, ingestor prediction.Ingestor, log *zap.Logger) string {
	fields := []zap.Field{
		zap.String("event_type", event.EventType),
		zap.String("batch_id", event.BatchID),
		zap.Int64("offset", offset),
	}

	switch event.EventType {
	case events.PredictionsUpserted:
		var records []prediction.PredictionRecord
		if err := json.Unmarshal(event.Payload, &records); err != nil {
			log.Error("decode prediction batch failed", append(fields, zap.Error(err))...)
			return outcomeInvalid
		}
		n, err := ingestor.UpsertPredictions(ctx, records)
		if err != nil {
			return ingestFailure(log, err, fields)
		}
		metrics.FeedRecords.Add(float64(n))
		log.Info("prediction batch applied", append(fields, zap.Int("rows", n))...)

	case events.AnalyticsSnapshotReplaced:
		var snapshot prediction.SnapshotRecord
		if err := json.Unmarshal(event.Payload, &snapshot); err != nil {
			log.Error("decode analytics snapshot failed", append(fields, zap.Error(err))...)
			return outcomeInvalid
		}
		if err := ingestor.ReplaceSnapshot(ctx, snapshot); err != nil {
			return ingestFailure(log, err, fields)
		}
		log.Info("analytics snapshot applied", fields...)

	default:
		log.Warn("unknown prediction feed event, skipping", fields...)
		return outcomeSkipped
	}

	return outcomeApplied
}

// ingestFailure classifies client errors as permanent so the offset moves on.
func ingestFailure(log *zap.Logger, err error, fields []zap.Field) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		log.Warn("prediction feed event rejected", append(fields, zap.Error(err))...)
		return outcomeRejected
	}
	log.Error("apply prediction feed event failed", append(fields, zap.Error(err))...)
	return outcomeFailed
}
