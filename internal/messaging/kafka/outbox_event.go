package kafka

import (
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// MaxOutboxRetries is the number of failed publishes after which a row is no longer picked up.
const MaxOutboxRetries = 10

var ErrOutboxEventNotFound = errors.New("outbox event not found")

// OutboxEvent is one row of outbox_events, written in the same transaction
// as the change it announces.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// Validate checks the columns the relay needs to publish the row.
func (e OutboxEvent) Validate() error {
	var missing []string
	if e.ID == "" {
		missing = append(missing, "id")
	}
	if e.Topic == "" {
		missing = append(missing, "topic")
	}
	if e.EventType == "" {
		missing = append(missing, "event type")
	}
	if len(e.Payload) == 0 {
		missing = append(missing, "payload")
	}
	if len(missing) > 0 {
		return fmt.Errorf("outbox event missing %v", missing)
	}

	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	}
	return fmt.Errorf("invalid outbox status: %q", e.Status)
}
