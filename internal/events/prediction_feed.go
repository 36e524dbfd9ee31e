package events

import (
	"encoding/json"
	"time"
)

const PredictionFeedTopic = "hr.analytics.predictions.v1"

const (
	PredictionsUpserted       = "predictions_upserted"
	AnalyticsSnapshotReplaced = "analytics_snapshot_replaced"
)

// PredictionFeedEvent is published by the external scoring pipeline.
// Payload holds a prediction batch or a snapshot depending on EventType.
type PredictionFeedEvent struct {
	EventType  string          `json:"event_type"`
	BatchID    string          `json:"batch_id"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}
