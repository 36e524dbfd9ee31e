package prediction

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"

	noSignificantFactors = "No significant risk factors"
)

type AIPrediction struct {
	ID                   uint64                      `gorm:"primaryKey;autoIncrement"`
	EmployeeCode         string                      `gorm:"column:employee_code;not null;uniqueIndex:idx_ai_predictions_code"`
	Department           string                      `gorm:"column:department;not null;default:''"`
	JobTitle             string                      `gorm:"column:job_title;not null;default:''"`
	Gender               string                      `gorm:"column:gender;not null;default:''"`
	AttritionRisk        float64                     `gorm:"column:attrition_risk;not null;default:0"`
	AttritionRiskLevel   string                      `gorm:"column:attrition_risk_level;not null;default:''"`
	PromotionScore       float64                     `gorm:"column:promotion_score;not null;default:0"`
	PromotionReadiness   string                      `gorm:"column:promotion_readiness;not null;default:''"`
	CurrentPerformance   float64                     `gorm:"column:current_performance;not null;default:0"`
	PredictedPerformance float64                     `gorm:"column:predicted_performance;not null;default:0"`
	BurnoutScore         float64                     `gorm:"column:burnout_score;not null;default:0"`
	BehavioralRiskLevel  string                      `gorm:"column:behavioral_risk_level;not null;default:''"`
	EngagementScore      float64                     `gorm:"column:engagement_score;not null;default:0"`
	AbsenceDays          float64                     `gorm:"column:absence_days;not null;default:0"`
	AbsenceRisk          string                      `gorm:"column:absence_risk;not null;default:''"`
	PayEquityGap         float64                     `gorm:"column:pay_equity_gap;not null;default:0"`
	Salary               float64                     `gorm:"column:salary;not null;default:0"`
	TrainingImpactScore  float64                     `gorm:"column:training_impact_score;not null;default:0"`
	TrainingCount        int                         `gorm:"column:training_count;not null;default:0"`
	Recommendations      datatypes.JSONSlice[string] `gorm:"column:recommendations"`
	Alerts               datatypes.JSONSlice[string] `gorm:"column:alerts"`
	AlertCount           int                         `gorm:"column:alert_count;not null;default:0"`
	TopRiskFactors       datatypes.JSONSlice[string] `gorm:"column:top_risk_factors"`
	PredictionDate       *time.Time                  `gorm:"column:prediction_date"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (AIPrediction) TableName() string {
	return "ai_predictions"
}

type FactorWeight struct {
	Factor string  `json:"factor"`
	Weight float64 `json:"weight"`
}

// AnalyticsTrend is a precomputed rollup replaced wholesale by the feed.
type AnalyticsTrend struct {
	ID                    uint64                            `gorm:"primaryKey;autoIncrement"`
	Date                  time.Time                         `gorm:"column:date;not null"`
	TotalEmployees        int64                             `gorm:"column:total_employees;not null;default:0"`
	AvgAttritionRisk      float64                           `gorm:"column:avg_attrition_risk;not null;default:0"`
	AvgEngagement         float64                           `gorm:"column:avg_engagement;not null;default:0"`
	HighRiskCount         int64                             `gorm:"column:high_risk_count;not null;default:0"`
	MediumRiskCount       int64                             `gorm:"column:medium_risk_count;not null;default:0"`
	LowRiskCount          int64                             `gorm:"column:low_risk_count;not null;default:0"`
	AvgBurnoutScore       float64                           `gorm:"column:avg_burnout_score;not null;default:0"`
	AvgPromotionReadiness float64                           `gorm:"column:avg_promotion_readiness;not null;default:0"`
	TurnoverRate          float64                           `gorm:"column:turnover_rate;not null;default:0"`
	AbsenteeismRate       float64                           `gorm:"column:absenteeism_rate;not null;default:0"`
	TopTurnoverFactors    datatypes.JSONSlice[FactorWeight] `gorm:"column:top_turnover_factors"`
	DepartmentMetrics     datatypes.JSONMap                 `gorm:"column:department_metrics"`
	CreatedAt             time.Time
}

func (AnalyticsTrend) TableName() string {
	return "analytics_trends"
}

// Aggregate rows scanned from grouped queries. Sums are rounded in Go.

type Totals struct {
	Total      int64
	High       int64
	Medium     int64
	Low        int64
	RiskSum    float64
	EngageSum  float64
	BurnoutSum float64
}

type LabelCount struct {
	Label string
	Count int64
}

type ValueCount struct {
	Value float64
	Count int64
}

type DepartmentRiskRow struct {
	Department string
	Count      int64
	ValueSum   float64
	HighCount  int64
}

type DepartmentSumRow struct {
	Department string
	Count      int64
	ValueSum   float64
}

type PayEquityRow struct {
	Department string
	Gender     string
	Count      int64
	SalarySum  float64
	GapSum     float64
}

type TrainingRow struct {
	Department      string
	TrainedCount    int64
	UntrainedCount  int64
	ImpactSum       float64
	EngTrainedSum   float64
	EngUntrainedSum float64
}

type ListFilter struct {
	Risk       string
	Department string
}
