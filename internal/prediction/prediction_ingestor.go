package prediction

import (
	"context"
	"database/sql"
	"strings"
	"time"

	predictionerrors "github.com/mirak10/PeopleIQ/internal/prediction/errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Ingestor writes the externally computed read models.
//
//go:generate mockgen -source=prediction_ingestor.go -destination=mock/prediction_ingestor_mock.go -package=mock
type Ingestor interface {
	UpsertPredictions(ctx context.Context, records []PredictionRecord) (int, error)
	ReplaceSnapshot(ctx context.Context, snapshot SnapshotRecord) error
}

type ingestor struct {
	db     *sql.DB
	repo   Repository
	cache  *ViewCache
	logger *zap.Logger
	now    func() time.Time
}

func NewIngestor(db *sql.DB, repo Repository, cache *ViewCache, logger ...*zap.Logger) Ingestor {
	l := zap.L().Named("prediction.ingestor")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("prediction.ingestor")
	}
	return &ingestor{db: db, repo: repo, cache: cache, logger: l, now: time.Now}
}

// UpsertPredictions writes records keyed by employee code. Later records
// win when a code repeats. Returns the number of rows written.
func (i *ingestor) UpsertPredictions(ctx context.Context, records []PredictionRecord) (int, error) {
	rows := make([]AIPrediction, 0, len(records))
	index := make(map[string]int, len(records))
	skipped := 0
	for _, rec := range records {
		code := strings.TrimSpace(rec.EmployeeID)
		if code == "" {
			skipped++
			continue
		}
		row := fromRecord(code, rec)
		if pos, ok := index[code]; ok {
			rows[pos] = row
			continue
		}
		index[code] = len(rows)
		rows = append(rows, row)
	}
	if skipped > 0 {
		i.logger.Warn("skipped prediction records without employee id", zap.Int("count", skipped))
	}
	if len(rows) == 0 {
		return 0, predictionerrors.ErrEmptyBatch
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := i.repo.WithTx(tx).UpsertBatch(ctx, rows); err != nil {
		i.logger.Error("failed to upsert predictions", zap.Int("rows", len(rows)), zap.Error(err))
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	_ = i.cache.Invalidate(ctx)
	i.logger.Info("predictions upserted", zap.Int("rows", len(rows)))
	return len(rows), nil
}

func (i *ingestor) ReplaceSnapshot(ctx context.Context, snapshot SnapshotRecord) error {
	date := i.now().UTC()
	if snapshot.Date != nil {
		date = snapshot.Date.UTC()
	}

	trend := &AnalyticsTrend{
		Date:                  date,
		TotalEmployees:        snapshot.TotalEmployees,
		AvgAttritionRisk:      snapshot.AvgAttritionRisk,
		AvgEngagement:         snapshot.AvgEngagement,
		HighRiskCount:         snapshot.HighRiskCount,
		MediumRiskCount:       snapshot.MediumRiskCount,
		LowRiskCount:          snapshot.LowRiskCount,
		AvgBurnoutScore:       snapshot.AvgBurnoutScore,
		AvgPromotionReadiness: snapshot.AvgPromotionReadiness,
		TurnoverRate:          snapshot.TurnoverRate,
		AbsenteeismRate:       snapshot.AbsenteeismRate,
		TopTurnoverFactors:    datatypes.JSONSlice[FactorWeight](nonNil(snapshot.TopTurnoverFactors)),
		DepartmentMetrics:     datatypes.JSONMap(snapshot.DepartmentMetrics),
	}
	if trend.DepartmentMetrics == nil {
		trend.DepartmentMetrics = datatypes.JSONMap{}
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := i.repo.WithTx(tx).ReplaceSnapshot(ctx, trend); err != nil {
		i.logger.Error("failed to replace analytics snapshot", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	_ = i.cache.Invalidate(ctx)
	i.logger.Info("analytics snapshot replaced", zap.Time("date", date))
	return nil
}

func fromRecord(code string, rec PredictionRecord) AIPrediction {
	alerts := nonNil(rec.Alerts)
	return AIPrediction{
		EmployeeCode:         code,
		Department:           rec.Department,
		JobTitle:             rec.JobTitle,
		Gender:               rec.Gender,
		AttritionRisk:        rec.AttritionRisk,
		AttritionRiskLevel:   rec.AttritionRiskLevel,
		PromotionScore:       rec.PromotionScore,
		PromotionReadiness:   rec.PromotionReadiness,
		CurrentPerformance:   rec.CurrentPerformance,
		PredictedPerformance: rec.PredictedPerformance,
		BurnoutScore:         rec.BurnoutScore,
		BehavioralRiskLevel:  rec.BehavioralRiskLevel,
		EngagementScore:      rec.EngagementScore,
		AbsenceDays:          rec.AbsenceDays,
		AbsenceRisk:          rec.AbsenceRisk,
		PayEquityGap:         rec.PayEquityGap,
		Salary:               rec.Salary,
		TrainingImpactScore:  rec.TrainingImpactScore,
		TrainingCount:        rec.TrainingCount,
		Recommendations:      datatypes.JSONSlice[string](nonNil(rec.Recommendations)),
		Alerts:               datatypes.JSONSlice[string](alerts),
		AlertCount:           len(alerts),
		TopRiskFactors:       datatypes.JSONSlice[string](nonNil(rec.TopRiskFactors)),
		PredictionDate:       rec.PredictionDate,
	}
}
