package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mirak10/PeopleIQ/internal/events"
	"github.com/mirak10/PeopleIQ/internal/metrics"
	"github.com/mirak10/PeopleIQ/internal/prediction"
	predictionerrors "github.com/mirak10/PeopleIQ/internal/prediction/errors"
	predictionMock "github.com/mirak10/PeopleIQ/internal/prediction/mock"

	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader replays queued messages and cancels once drained.
type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	trace     *[]string
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
		if r.trace != nil {
			*r.trace = append(*r.trace, fmt.Sprintf("commit:%d", m.Offset))
		}
	}
	return nil
}

func feedMessage(t *testing.T, offset int64, eventType string, payload any) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	value, err := json.Marshal(events.PredictionFeedEvent{
		EventType:  eventType,
		BatchID:    "batch-1",
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: value}
}

func fastRetries(t *testing.T) {
	t.Helper()
	base, maxDelay := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = time.Millisecond, 2*time.Millisecond
	t.Cleanup(func() { retryBaseDelay, retryMaxDelay = base, maxDelay })
}

func runConsumer(t *testing.T, ingestor prediction.Ingestor, msgs ...kafkago.Message) *fakeReader {
	t.Helper()
	return runReader(t, &fakeReader{queue: msgs}, ingestor)
}

func runReader(t *testing.T, reader *fakeReader, ingestor prediction.Ingestor) *fakeReader {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reader.cancel = cancel

	done := make(chan struct{})
	go func() {
		ConsumePredictionFeed(ctx, reader, ingestor, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
	return reader
}

func TestConsumePredictionFeed(t *testing.T) {
	t.Run("applies batches and snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingestor := predictionMock.NewMockIngestor(ctrl)
		before := testutil.ToFloat64(metrics.FeedRecords)

		ingestor.EXPECT().
			UpsertPredictions(gomock.Any(), []prediction.PredictionRecord{{EmployeeID: "EMP-1"}, {EmployeeID: "EMP-2"}}).
			Return(2, nil)
		ingestor.EXPECT().
			ReplaceSnapshot(gomock.Any(), prediction.SnapshotRecord{TotalEmployees: 2}).
			Return(nil)

		reader := runConsumer(t, ingestor,
			feedMessage(t, 1, events.PredictionsUpserted, []prediction.PredictionRecord{{EmployeeID: "EMP-1"}, {EmployeeID: "EMP-2"}}),
			feedMessage(t, 2, events.AnalyticsSnapshotReplaced, prediction.SnapshotRecord{TotalEmployees: 2}),
		)

		assert.Equal(t, []int64{1, 2}, reader.committed)
		assert.Equal(t, before+2, testutil.ToFloat64(metrics.FeedRecords))
	})

	t.Run("commits poison and unknown messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingestor := predictionMock.NewMockIngestor(ctrl)

		reader := runConsumer(t, ingestor,
			kafkago.Message{Offset: 1, Value: []byte("not json")},
			feedMessage(t, 2, "predictions_deleted", nil),
			feedMessage(t, 3, events.PredictionsUpserted, map[string]string{"not": "a list"}),
		)

		assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	})

	t.Run("rejected batch is committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingestor := predictionMock.NewMockIngestor(ctrl)
		ingestor.EXPECT().UpsertPredictions(gomock.Any(), gomock.Any()).Return(0, predictionerrors.ErrEmptyBatch)

		reader := runConsumer(t, ingestor, feedMessage(t, 5, events.PredictionsUpserted, []prediction.PredictionRecord{}))

		assert.Equal(t, []int64{5}, reader.committed)
	})

	t.Run("transient failure stays uncommitted on shutdown", func(t *testing.T) {
		fastRetries(t)
		ctrl := gomock.NewController(t)
		ingestor := predictionMock.NewMockIngestor(ctrl)
		reader := &fakeReader{queue: []kafkago.Message{
			feedMessage(t, 7, events.AnalyticsSnapshotReplaced, prediction.SnapshotRecord{}),
			feedMessage(t, 8, events.AnalyticsSnapshotReplaced, prediction.SnapshotRecord{}),
		}}
		attempts := 0
		ingestor.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, prediction.SnapshotRecord) error {
				attempts++
				if attempts == 3 {
					reader.cancel()
				}
				return errors.New("connection reset")
			}).MinTimes(3)

		runReader(t, reader, ingestor)

		assert.Empty(t, reader.committed)
		require.Len(t, reader.queue, 1)
		assert.Equal(t, int64(8), reader.queue[0].Offset)
	})

	t.Run("failed message is reapplied before later offsets commit", func(t *testing.T) {
		fastRetries(t)
		ctrl := gomock.NewController(t)
		ingestor := predictionMock.NewMockIngestor(ctrl)
		var trace []string
		record := func(step string) { trace = append(trace, step) }

		gomock.InOrder(
			ingestor.EXPECT().UpsertPredictions(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, []prediction.PredictionRecord) (int, error) {
					record("apply:1")
					return 0, errors.New("deadlock detected")
				}),
			ingestor.EXPECT().UpsertPredictions(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, []prediction.PredictionRecord) (int, error) {
					record("apply:1")
					return 1, nil
				}),
			ingestor.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, prediction.SnapshotRecord) error {
					record("apply:2")
					return nil
				}),
		)

		reader := runReader(t, &fakeReader{
			queue: []kafkago.Message{
				feedMessage(t, 1, events.PredictionsUpserted, []prediction.PredictionRecord{{EmployeeID: "EMP-1"}}),
				feedMessage(t, 2, events.AnalyticsSnapshotReplaced, prediction.SnapshotRecord{}),
			},
			trace: &trace,
		}, ingestor)

		assert.Equal(t, []int64{1, 2}, reader.committed)
		assert.Equal(t, []string{"apply:1", "apply:1", "commit:1", "apply:2", "commit:2"}, trace)
	})
}
