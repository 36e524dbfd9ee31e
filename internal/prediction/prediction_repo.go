package prediction

import (
	"context"
	"database/sql"

	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Grouping columns accepted by CountBy.
const (
	ColumnAttritionLevel     = "attrition_risk_level"
	ColumnPromotionReadiness = "promotion_readiness"
	ColumnAbsenceRisk        = "absence_risk"
)

const upsertBatchSize = 500

//go:generate mockgen -source=prediction_repo.go -destination=mock/prediction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	LatestSnapshot(ctx context.Context) (*AnalyticsTrend, error)
	Totals(ctx context.Context) (Totals, error)
	CountBy(ctx context.Context, column string) ([]LabelCount, error)
	DepartmentRisk(ctx context.Context) ([]DepartmentRiskRow, error)
	DepartmentAbsence(ctx context.Context) ([]DepartmentRiskRow, error)
	DepartmentPerformance(ctx context.Context) ([]DepartmentSumRow, error)
	PerformanceValues(ctx context.Context) ([]ValueCount, error)
	RiskFactorLists(ctx context.Context) ([][]string, error)
	PayEquity(ctx context.Context) ([]PayEquityRow, error)
	Training(ctx context.Context) ([]TrainingRow, error)

	TopByRisk(ctx context.Context, levels []string, limit int) ([]AIPrediction, error)
	TopByPerformance(ctx context.Context, limit int) ([]AIPrediction, error)
	TopByAbsence(ctx context.Context, limit int) ([]AIPrediction, error)
	WithAlerts(ctx context.Context, limit int) ([]AIPrediction, error)
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]AIPrediction, int64, error)
	FindByDepartment(ctx context.Context, department string, limit int) ([]AIPrediction, error)
	FindByEmployeeCode(ctx context.Context, code string) (*AIPrediction, error)

	UpsertBatch(ctx context.Context, rows []AIPrediction) error
	ReplaceSnapshot(ctx context.Context, snapshot *AnalyticsTrend) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) predictions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&AIPrediction{})
}

func (r *repository) LatestSnapshot(ctx context.Context) (*AnalyticsTrend, error) {
	var t AnalyticsTrend
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").First(&t).Error
	return &t, err
}

func (r *repository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.predictions(ctx).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN attrition_risk_level = 'High' THEN 1 ELSE 0 END), 0) AS high,
			COALESCE(SUM(CASE WHEN attrition_risk_level = 'Medium' THEN 1 ELSE 0 END), 0) AS medium,
			COALESCE(SUM(CASE WHEN attrition_risk_level = 'Low' THEN 1 ELSE 0 END), 0) AS low,
			COALESCE(SUM(attrition_risk), 0) AS risk_sum,
			COALESCE(SUM(engagement_score), 0) AS engage_sum,
			COALESCE(SUM(burnout_score), 0) AS burnout_sum`).
		Scan(&t).Error
	return t, err
}

func (r *repository) CountBy(ctx context.Context, column string) ([]LabelCount, error) {
	switch column {
	case ColumnAttritionLevel, ColumnPromotionReadiness, ColumnAbsenceRisk:
	default:
		return nil, gorm.ErrInvalidField
	}

	rows := []LabelCount{}
	err := r.predictions(ctx).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Order(column).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentRisk(ctx context.Context) ([]DepartmentRiskRow, error) {
	return r.departmentLevels(ctx, "attrition_risk", "attrition_risk_level")
}

func (r *repository) DepartmentAbsence(ctx context.Context) ([]DepartmentRiskRow, error) {
	return r.departmentLevels(ctx, "absence_days", "absence_risk")
}

func (r *repository) departmentLevels(ctx context.Context, valueColumn, levelColumn string) ([]DepartmentRiskRow, error) {
	rows := []DepartmentRiskRow{}
	err := r.predictions(ctx).
		Select(`department, COUNT(*) AS count,
			COALESCE(SUM(` + valueColumn + `), 0) AS value_sum,
			COALESCE(SUM(CASE WHEN ` + levelColumn + ` = 'High' THEN 1 ELSE 0 END), 0) AS high_count`).
		Group("department").
		Order("department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentPerformance(ctx context.Context) ([]DepartmentSumRow, error) {
	rows := []DepartmentSumRow{}
	err := r.predictions(ctx).
		Select("department, COUNT(*) AS count, COALESCE(SUM(current_performance), 0) AS value_sum").
		Group("department").
		Order("department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) PerformanceValues(ctx context.Context) ([]ValueCount, error) {
	rows := []ValueCount{}
	err := r.predictions(ctx).
		Select("current_performance AS value, COUNT(*) AS count").
		Group("current_performance").
		Order("current_performance").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RiskFactorLists(ctx context.Context) ([][]string, error) {
	var rows []AIPrediction
	if err := r.predictions(ctx).Select("top_risk_factors").Find(&rows).Error; err != nil {
		return nil, err
	}

	lists := make([][]string, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.TopRiskFactors)
	}
	return lists, nil
}

func (r *repository) PayEquity(ctx context.Context) ([]PayEquityRow, error) {
	rows := []PayEquityRow{}
	err := r.predictions(ctx).
		Select(`department, gender, COUNT(*) AS count,
			COALESCE(SUM(salary), 0) AS salary_sum,
			COALESCE(SUM(pay_equity_gap), 0) AS gap_sum`).
		Group("department, gender").
		Order("department, gender").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Training(ctx context.Context) ([]TrainingRow, error) {
	rows := []TrainingRow{}
	err := r.predictions(ctx).
		Select(`department,
			COALESCE(SUM(CASE WHEN training_count > 0 THEN 1 ELSE 0 END), 0) AS trained_count,
			COALESCE(SUM(CASE WHEN training_count = 0 THEN 1 ELSE 0 END), 0) AS untrained_count,
			COALESCE(SUM(CASE WHEN training_count > 0 THEN training_impact_score ELSE 0 END), 0) AS impact_sum,
			COALESCE(SUM(CASE WHEN training_count > 0 THEN engagement_score ELSE 0 END), 0) AS eng_trained_sum,
			COALESCE(SUM(CASE WHEN training_count = 0 THEN engagement_score ELSE 0 END), 0) AS eng_untrained_sum`).
		Group("department").
		Order("department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopByRisk(ctx context.Context, levels []string, limit int) ([]AIPrediction, error) {
	rows := []AIPrediction{}
	err := r.predictions(ctx).
		Where("attrition_risk_level IN ?", levels).
		Order("attrition_risk DESC, employee_code ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) TopByPerformance(ctx context.Context, limit int) ([]AIPrediction, error) {
	rows := []AIPrediction{}
	err := r.predictions(ctx).
		Order("current_performance DESC, employee_code ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) TopByAbsence(ctx context.Context, limit int) ([]AIPrediction, error) {
	rows := []AIPrediction{}
	err := r.predictions(ctx).
		Where("absence_risk = ?", LevelHigh).
		Order("absence_days DESC, employee_code ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) WithAlerts(ctx context.Context, limit int) ([]AIPrediction, error) {
	rows := []AIPrediction{}
	err := r.predictions(ctx).
		Where("alert_count > 0").
		Order("employee_code ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]AIPrediction, int64, error) {
	q := r.predictions(ctx).Scopes(RiskScope(filter.Risk), DepartmentScope(filter.Department))

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []AIPrediction{}
	err := q.Order("employee_code ASC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByDepartment(ctx context.Context, department string, limit int) ([]AIPrediction, error) {
	rows := []AIPrediction{}
	err := r.predictions(ctx).
		Scopes(DepartmentScope(department)).
		Order("employee_code ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeCode(ctx context.Context, code string) (*AIPrediction, error) {
	var p AIPrediction
	err := r.db.WithContext(ctx).First(&p, "employee_code = ?", code).Error
	return &p, err
}

func (r *repository) UpsertBatch(ctx context.Context, rows []AIPrediction) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"department", "job_title", "gender",
				"attrition_risk", "attrition_risk_level",
				"promotion_score", "promotion_readiness",
				"current_performance", "predicted_performance",
				"burnout_score", "behavioral_risk_level", "engagement_score",
				"absence_days", "absence_risk",
				"pay_equity_gap", "salary",
				"training_impact_score", "training_count",
				"recommendations", "alerts", "alert_count", "top_risk_factors",
				"prediction_date", "updated_at",
			}),
		}).
		CreateInBatches(&rows, upsertBatchSize).Error
}

func (r *repository) ReplaceSnapshot(ctx context.Context, snapshot *AnalyticsTrend) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&AnalyticsTrend{}).Error; err != nil {
		return err
	}
	return db.Create(snapshot).Error
}
