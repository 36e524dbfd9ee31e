package prediction_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/mirak10/PeopleIQ/internal/prediction"
	predictionerrors "github.com/mirak10/PeopleIQ/internal/prediction/errors"
	predictionMock "github.com/mirak10/PeopleIQ/internal/prediction/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type ingestorDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *predictionMock.MockRepository
	ingestor  prediction.Ingestor
}

func setupIngestor(t *testing.T) *ingestorDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := predictionMock.NewMockRepository(ctrl)

	return &ingestorDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      repo,
		ingestor:  prediction.NewIngestor(db, repo, prediction.NewViewCache(rdb, 0, zap.NewNop()), zap.NewNop()),
	}
}

func expectViewInvalidation(mock redismock.ClientMock) {
	mock.ExpectDel(
		prediction.KeySummary,
		prediction.KeyTurnover,
		prediction.KeyPerformance,
		prediction.KeyAbsenteeism,
		prediction.KeyRecommendations,
	).SetVal(5)
}

func TestIngestor_UpsertPredictions(t *testing.T) {
	ctx := context.Background()

	t.Run("dedupes codes and derives alert count", func(t *testing.T) {
		d := setupIngestor(t)

		d.sqlMock.ExpectBegin()
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().
			UpsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []prediction.AIPrediction) error {
				require.Len(t, rows, 2)
				assert.Equal(t, "EMP-1", rows[0].EmployeeCode)
				assert.Equal(t, "High", rows[0].AttritionRiskLevel)
				assert.Equal(t, 2, rows[0].AlertCount)
				assert.Equal(t, "EMP-2", rows[1].EmployeeCode)
				assert.Equal(t, 0, rows[1].AlertCount)
				assert.NotNil(t, rows[1].Alerts)
				assert.NotNil(t, rows[1].TopRiskFactors)
				return nil
			})
		expectViewInvalidation(d.redisMock)

		n, err := d.ingestor.UpsertPredictions(ctx, []prediction.PredictionRecord{
			{EmployeeID: "EMP-1", AttritionRiskLevel: "Low"},
			{EmployeeID: " EMP-2 "},
			{EmployeeID: ""},
			{EmployeeID: "EMP-1", AttritionRiskLevel: "High", Alerts: []string{"Burnout", "Overtime"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
		assert.NoError(t, d.redisMock.ExpectationsWereMet())
	})

	t.Run("empty batch", func(t *testing.T) {
		d := setupIngestor(t)

		_, err := d.ingestor.UpsertPredictions(ctx, []prediction.PredictionRecord{{EmployeeID: " "}})
		assert.ErrorIs(t, err, predictionerrors.ErrEmptyBatch)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("write failure rolls back and keeps cache", func(t *testing.T) {
		d := setupIngestor(t)

		d.sqlMock.ExpectBegin()
		d.sqlMock.ExpectRollback()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		_, err := d.ingestor.UpsertPredictions(ctx, []prediction.PredictionRecord{{EmployeeID: "EMP-1"}})
		assert.EqualError(t, err, "deadlock")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
		assert.NoError(t, d.redisMock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		d := setupIngestor(t)
		d.sqlMock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		_, err := d.ingestor.UpsertPredictions(ctx, []prediction.PredictionRecord{{EmployeeID: "EMP-1"}})
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestIngestor_ReplaceSnapshot(t *testing.T) {
	d := setupIngestor(t)
	date := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().
		ReplaceSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trend *prediction.AnalyticsTrend) error {
			assert.True(t, date.Equal(trend.Date))
			assert.Equal(t, int64(1470), trend.TotalEmployees)
			assert.Equal(t, 16.1, trend.TurnoverRate)
			assert.NotNil(t, trend.TopTurnoverFactors)
			assert.NotNil(t, trend.DepartmentMetrics)
			return nil
		})
	expectViewInvalidation(d.redisMock)

	err := d.ingestor.ReplaceSnapshot(context.Background(), prediction.SnapshotRecord{
		Date:           &date,
		TotalEmployees: 1470,
		TurnoverRate:   16.1,
	})
	require.NoError(t, err)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	assert.NoError(t, d.redisMock.ExpectationsWereMet())
}
