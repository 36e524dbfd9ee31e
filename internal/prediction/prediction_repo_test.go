package prediction_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mirak10/PeopleIQ/internal/prediction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "predictions.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&prediction.AIPrediction{}, &prediction.AnalyticsTrend{}))
	return db
}

func strs(v ...string) datatypes.JSONSlice[string] {
	return datatypes.JSONSlice[string](v)
}

func seedPredictions(t *testing.T, repo prediction.Repository) {
	t.Helper()
	rows := []prediction.AIPrediction{
		{
			EmployeeCode: "EMP-1", Department: "Sales", Gender: "Female",
			AttritionRisk: 0.9, AttritionRiskLevel: "High", PromotionReadiness: "Not Ready",
			CurrentPerformance: 3, EngagementScore: 2, BurnoutScore: 0.8,
			AbsenceDays: 12, AbsenceRisk: "High", Salary: 4000, PayEquityGap: -0.1,
			TrainingCount: 0, Recommendations: strs("Stay interview"),
			Alerts: strs("Burnout"), AlertCount: 1, TopRiskFactors: strs("Overtime"),
		},
		{
			EmployeeCode: "EMP-2", Department: "Sales", Gender: "Female",
			AttritionRisk: 0.7, AttritionRiskLevel: "High", PromotionReadiness: "Developing",
			CurrentPerformance: 5, EngagementScore: 4, BurnoutScore: 0.4,
			AbsenceDays: 3, AbsenceRisk: "Low", Salary: 6000, PayEquityGap: 0.1,
			TrainingCount: 2, TrainingImpactScore: 0.5, Recommendations: strs(),
			Alerts: strs(), TopRiskFactors: strs("Overtime", "Low salary"),
		},
		{
			EmployeeCode: "EMP-3", Department: "R&D", Gender: "Male",
			AttritionRisk: 0.4, AttritionRiskLevel: "Medium", PromotionReadiness: "Ready",
			CurrentPerformance: 4, EngagementScore: 3, BurnoutScore: 0.3,
			AbsenceDays: 6, AbsenceRisk: "Medium", Salary: 5000,
			TrainingCount: 1, TrainingImpactScore: 0.2, Recommendations: strs("Mentoring"),
			Alerts: strs(), TopRiskFactors: strs("No significant risk factors"),
		},
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), rows))
}

func TestRepository_Aggregates(t *testing.T) {
	db := openTestDB(t)
	repo := prediction.NewRepository(db)
	ctx := context.Background()
	seedPredictions(t, repo)

	t.Run("totals", func(t *testing.T) {
		got, err := repo.Totals(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, int64(2), got.High)
		assert.Equal(t, int64(1), got.Medium)
		assert.Equal(t, int64(0), got.Low)
		assert.InDelta(t, 2.0, got.RiskSum, 1e-9)
		assert.InDelta(t, 9.0, got.EngageSum, 1e-9)
	})

	t.Run("count by level", func(t *testing.T) {
		got, err := repo.CountBy(ctx, prediction.ColumnAttritionLevel)
		require.NoError(t, err)
		assert.Equal(t, []prediction.LabelCount{{Label: "High", Count: 2}, {Label: "Medium", Count: 1}}, got)
	})

	t.Run("count by rejects unknown column", func(t *testing.T) {
		_, err := repo.CountBy(ctx, "salary; DROP TABLE ai_predictions")
		assert.ErrorIs(t, err, gorm.ErrInvalidField)
	})

	t.Run("department risk", func(t *testing.T) {
		got, err := repo.DepartmentRisk(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "R&D", got[0].Department)
		assert.Equal(t, "Sales", got[1].Department)
		assert.Equal(t, int64(2), got[1].Count)
		assert.Equal(t, int64(2), got[1].HighCount)
		assert.InDelta(t, 1.6, got[1].ValueSum, 1e-9)
	})

	t.Run("department absence", func(t *testing.T) {
		got, err := repo.DepartmentAbsence(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[1].HighCount)
		assert.InDelta(t, 15.0, got[1].ValueSum, 1e-9)
	})

	t.Run("performance values", func(t *testing.T) {
		got, err := repo.PerformanceValues(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 3)

		depts, err := repo.DepartmentPerformance(ctx)
		require.NoError(t, err)
		require.Len(t, depts, 2)
		assert.InDelta(t, 8.0, depts[1].ValueSum, 1e-9)
	})

	t.Run("risk factor lists", func(t *testing.T) {
		got, err := repo.RiskFactorLists(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, [][]string{
			{"Overtime"},
			{"Overtime", "Low salary"},
			{"No significant risk factors"},
		}, got)
	})

	t.Run("pay equity and training", func(t *testing.T) {
		equity, err := repo.PayEquity(ctx)
		require.NoError(t, err)
		require.Len(t, equity, 2)
		assert.Equal(t, "Sales", equity[1].Department)
		assert.Equal(t, int64(2), equity[1].Count)
		assert.InDelta(t, 10000.0, equity[1].SalarySum, 1e-9)

		training, err := repo.Training(ctx)
		require.NoError(t, err)
		require.Len(t, training, 2)
		sales := training[1]
		assert.Equal(t, int64(1), sales.TrainedCount)
		assert.Equal(t, int64(1), sales.UntrainedCount)
		assert.InDelta(t, 0.5, sales.ImpactSum, 1e-9)
		assert.InDelta(t, 4.0, sales.EngTrainedSum, 1e-9)
		assert.InDelta(t, 2.0, sales.EngUntrainedSum, 1e-9)
	})

	t.Run("top lists", func(t *testing.T) {
		risky, err := repo.TopByRisk(ctx, []string{"High", "Medium"}, 2)
		require.NoError(t, err)
		require.Len(t, risky, 2)
		assert.Equal(t, "EMP-1", risky[0].EmployeeCode)
		assert.Equal(t, "EMP-2", risky[1].EmployeeCode)

		top, err := repo.TopByPerformance(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "EMP-2", top[0].EmployeeCode)

		absent, err := repo.TopByAbsence(ctx, 30)
		require.NoError(t, err)
		require.Len(t, absent, 1)
		assert.Equal(t, "EMP-1", absent[0].EmployeeCode)

		alerts, err := repo.WithAlerts(ctx, 100)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, []string{"Burnout"}, []string(alerts[0].Alerts))
	})

	t.Run("list filters and counts", func(t *testing.T) {
		rows, total, err := repo.List(ctx, prediction.ListFilter{Risk: "High", Department: "Sales"}, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "EMP-1", rows[0].EmployeeCode)

		all, total, err := repo.List(ctx, prediction.ListFilter{}, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, all, 2)
		assert.Equal(t, "EMP-2", all[0].EmployeeCode)
		assert.Equal(t, "EMP-3", all[1].EmployeeCode)

		byDept, err := repo.FindByDepartment(ctx, "R&D", 500)
		require.NoError(t, err)
		require.Len(t, byDept, 1)

		_, err = repo.FindByEmployeeCode(ctx, "EMP-404")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_UpsertOverwritesByCode(t *testing.T) {
	db := openTestDB(t)
	repo := prediction.NewRepository(db)
	ctx := context.Background()
	seedPredictions(t, repo)

	require.NoError(t, repo.UpsertBatch(ctx, []prediction.AIPrediction{{
		EmployeeCode: "EMP-3", Department: "R&D", AttritionRisk: 0.95, AttritionRiskLevel: "High",
		Recommendations: strs(), Alerts: strs("Flight risk"), AlertCount: 1, TopRiskFactors: strs(),
	}}))

	var count int64
	require.NoError(t, db.Model(&prediction.AIPrediction{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	got, err := repo.FindByEmployeeCode(ctx, "EMP-3")
	require.NoError(t, err)
	assert.Equal(t, "High", got.AttritionRiskLevel)
	assert.Equal(t, 1, got.AlertCount)
	assert.Equal(t, []string{"Flight risk"}, []string(got.Alerts))
}

func TestRepository_Snapshot(t *testing.T) {
	db := openTestDB(t)
	repo := prediction.NewRepository(db)
	ctx := context.Background()

	_, err := repo.LatestSnapshot(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	first := &prediction.AnalyticsTrend{Date: time.Now().Add(-time.Hour), TotalEmployees: 10, DepartmentMetrics: datatypes.JSONMap{}}
	require.NoError(t, repo.ReplaceSnapshot(ctx, first))

	second := &prediction.AnalyticsTrend{
		Date:               time.Now(),
		TotalEmployees:     12,
		TopTurnoverFactors: datatypes.JSONSlice[prediction.FactorWeight]{{Factor: "Overtime", Weight: 0.4}},
		DepartmentMetrics:  datatypes.JSONMap{"Sales": map[string]any{"count": 12}},
	}
	require.NoError(t, repo.ReplaceSnapshot(ctx, second))

	var count int64
	require.NoError(t, db.Model(&prediction.AnalyticsTrend{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalEmployees)
	require.Len(t, got.TopTurnoverFactors, 1)
	assert.Equal(t, "Overtime", got.TopTurnoverFactors[0].Factor)
	assert.Contains(t, got.DepartmentMetrics, "Sales")
}
