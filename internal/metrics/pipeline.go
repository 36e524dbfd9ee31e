package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboxPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "events_published_total",
			Help:      "Outbox events published to Kafka.",
		},
		[]string{"event_type"},
	)

	OutboxFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "events_failed_total",
			Help:      "Outbox publish attempts that failed.",
		},
		[]string{"event_type"},
	)

	FeedMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prediction_feed",
			Name:      "messages_total",
			Help:      "Prediction feed messages by event type and outcome.",
		},
		[]string{"event_type", "outcome"},
	)

	FeedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prediction_feed",
			Name:      "records_upserted_total",
			Help:      "Prediction rows written by the feed consumer.",
		},
	)
)
