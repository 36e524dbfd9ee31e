package prediction

import "time"

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

type ListQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Risk       string `form:"risk"`
	Department string `form:"department"`
}

type PredictionResponse struct {
	EmployeeCode         string     `json:"employeeCode"`
	Department           string     `json:"department"`
	JobTitle             string     `json:"jobTitle"`
	Gender               string     `json:"gender"`
	AttritionRisk        float64    `json:"attritionRisk"`
	AttritionRiskLevel   string     `json:"attritionRiskLevel"`
	PromotionScore       float64    `json:"promotionScore"`
	PromotionReadiness   string     `json:"promotionReadiness"`
	CurrentPerformance   float64    `json:"currentPerformance"`
	PredictedPerformance float64    `json:"predictedPerformance"`
	BurnoutScore         float64    `json:"burnoutScore"`
	BehavioralRiskLevel  string     `json:"behavioralRiskLevel"`
	EngagementScore      float64    `json:"engagementScore"`
	AbsenceDays          float64    `json:"absenceDays"`
	AbsenceRisk          string     `json:"absenceRisk"`
	PayEquityGap         float64    `json:"payEquityGap"`
	Salary               float64    `json:"salary"`
	TrainingImpactScore  float64    `json:"trainingImpactScore"`
	TrainingCount        int        `json:"trainingCount"`
	Recommendations      []string   `json:"recommendations"`
	Alerts               []string   `json:"alerts"`
	TopRiskFactors       []string   `json:"topRiskFactors"`
	PredictionDate       *time.Time `json:"predictionDate,omitempty"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type SummaryResponse struct {
	Source                string         `json:"source"`
	Date                  *time.Time     `json:"date,omitempty"`
	TotalEmployees        int64          `json:"totalEmployees"`
	HighRiskCount         int64          `json:"highRiskCount"`
	MediumRiskCount       int64          `json:"mediumRiskCount"`
	LowRiskCount          int64          `json:"lowRiskCount"`
	AvgAttritionRisk      float64        `json:"avgAttritionRisk"`
	AvgEngagement         float64        `json:"avgEngagement"`
	AvgBurnoutScore       float64        `json:"avgBurnoutScore"`
	AvgPromotionReadiness float64        `json:"avgPromotionReadiness"`
	TurnoverRate          float64        `json:"turnoverRate"`
	AbsenteeismRate       float64        `json:"absenteeismRate"`
	TopTurnoverFactors    []FactorWeight `json:"topTurnoverFactors"`
	DepartmentMetrics     map[string]any `json:"departmentMetrics"`
}

type AlertItem struct {
	EmployeeCode       string   `json:"employeeCode"`
	Department         string   `json:"department"`
	JobTitle           string   `json:"jobTitle"`
	Alerts             []string `json:"alerts"`
	AttritionRiskLevel string   `json:"attritionRiskLevel"`
}

type DepartmentRisk struct {
	Name          string  `json:"name"`
	Count         int64   `json:"count"`
	AvgRisk       float64 `json:"avgRisk"`
	HighRiskCount int64   `json:"highRiskCount"`
}

type FactorCount struct {
	Factor string `json:"factor"`
	Count  int64  `json:"count"`
}

type HighRiskEmployee struct {
	EmployeeCode       string   `json:"employeeCode"`
	Department         string   `json:"department"`
	JobTitle           string   `json:"jobTitle"`
	AttritionRisk      float64  `json:"attritionRisk"`
	AttritionRiskLevel string   `json:"attritionRiskLevel"`
	TopRiskFactors     []string `json:"topRiskFactors"`
}

type TurnoverResponse struct {
	Distribution      map[string]int64   `json:"distribution"`
	Departments       []DepartmentRisk   `json:"departments"`
	TopFactors        []FactorCount      `json:"topFactors"`
	HighRiskEmployees []HighRiskEmployee `json:"highRiskEmployees"`
	TotalEmployees    int64              `json:"totalEmployees"`
}

type DepartmentPerformance struct {
	Name           string  `json:"name"`
	AvgPerformance float64 `json:"avgPerformance"`
	Count          int64   `json:"count"`
}

type TopPerformer struct {
	EmployeeCode         string  `json:"employeeCode"`
	Department           string  `json:"department"`
	CurrentPerformance   float64 `json:"currentPerformance"`
	PredictedPerformance float64 `json:"predictedPerformance"`
	PromotionReadiness   string  `json:"promotionReadiness"`
}

type PerformanceResponse struct {
	RatingDistribution map[string]int64        `json:"ratingDistribution"`
	PromotionBreakdown map[string]int64        `json:"promotionBreakdown"`
	Departments        []DepartmentPerformance `json:"departments"`
	TopPerformers      []TopPerformer          `json:"topPerformers"`
}

type DepartmentAbsence struct {
	Name           string  `json:"name"`
	Count          int64   `json:"count"`
	AvgAbsenceDays float64 `json:"avgAbsenceDays"`
	HighRiskCount  int64   `json:"highRiskCount"`
}

type HighAbsenceEmployee struct {
	EmployeeCode string  `json:"employeeCode"`
	Department   string  `json:"department"`
	JobTitle     string  `json:"jobTitle"`
	AbsenceDays  float64 `json:"absenceDays"`
	BurnoutScore float64 `json:"burnoutScore"`
	AbsenceRisk  string  `json:"absenceRisk"`
}

type AbsenteeismResponse struct {
	Distribution         map[string]int64      `json:"distribution"`
	Departments          []DepartmentAbsence   `json:"departments"`
	HighAbsenceEmployees []HighAbsenceEmployee `json:"highAbsenceEmployees"`
}

type PayEquity struct {
	Department string  `json:"department"`
	Gender     string  `json:"gender"`
	AvgSalary  float64 `json:"avgSalary"`
	AvgGap     float64 `json:"avgGap"`
	Count      int64   `json:"count"`
}

type TrainingImpact struct {
	Department      string  `json:"department"`
	TrainedCount    int64   `json:"trainedCount"`
	UntrainedCount  int64   `json:"untrainedCount"`
	AvgImpact       float64 `json:"avgImpact"`
	AvgEngTrained   float64 `json:"avgEngTrained"`
	AvgEngUntrained float64 `json:"avgEngUntrained"`
}

type ActionableEmployee struct {
	EmployeeCode       string   `json:"employeeCode"`
	Department         string   `json:"department"`
	JobTitle           string   `json:"jobTitle"`
	AttritionRiskLevel string   `json:"attritionRiskLevel"`
	Recommendations    []string `json:"recommendations"`
}

type RecommendationsResponse struct {
	PayEquity           []PayEquity          `json:"payEquity"`
	Training            []TrainingImpact     `json:"training"`
	ActionableEmployees []ActionableEmployee `json:"actionableEmployees"`
}

// PredictionRecord is one row of the scoring pipeline output.
type PredictionRecord struct {
	EmployeeID           string     `json:"EmployeeID"`
	Department           string     `json:"Department"`
	JobTitle             string     `json:"JobTitle"`
	Gender               string     `json:"Gender"`
	AttritionRisk        float64    `json:"AttritionRisk"`
	AttritionRiskLevel   string     `json:"AttritionRiskLevel"`
	PromotionScore       float64    `json:"PromotionScore"`
	PromotionReadiness   string     `json:"PromotionReadiness"`
	CurrentPerformance   float64    `json:"CurrentPerformance"`
	PredictedPerformance float64    `json:"PredictedPerformance"`
	BurnoutScore         float64    `json:"BurnoutScore"`
	BehavioralRiskLevel  string     `json:"BehavioralRiskLevel"`
	EngagementScore      float64    `json:"EngagementScore"`
	AbsenceDays          float64    `json:"AbsenceDays"`
	AbsenceRisk          string     `json:"AbsenceRisk"`
	PayEquityGap         float64    `json:"PayEquityGap"`
	Salary               float64    `json:"Salary"`
	TrainingImpactScore  float64    `json:"TrainingImpactScore"`
	TrainingCount        int        `json:"TrainingCount"`
	Recommendations      []string   `json:"Recommendations"`
	Alerts               []string   `json:"Alerts"`
	TopRiskFactors       []string   `json:"TopRiskFactors"`
	PredictionDate       *time.Time `json:"PredictionDate,omitempty"`
}

type SnapshotRecord struct {
	Date                  *time.Time     `json:"date,omitempty"`
	TotalEmployees        int64          `json:"totalEmployees"`
	AvgAttritionRisk      float64        `json:"avgAttritionRisk"`
	AvgEngagement         float64        `json:"avgEngagement"`
	HighRiskCount         int64          `json:"highRiskCount"`
	MediumRiskCount       int64          `json:"mediumRiskCount"`
	LowRiskCount          int64          `json:"lowRiskCount"`
	AvgBurnoutScore       float64        `json:"avgBurnoutScore"`
	AvgPromotionReadiness float64        `json:"avgPromotionReadiness"`
	TurnoverRate          float64        `json:"turnoverRate"`
	AbsenteeismRate       float64        `json:"absenteeismRate"`
	TopTurnoverFactors    []FactorWeight `json:"topTurnoverFactors"`
	DepartmentMetrics     map[string]any `json:"departmentMetrics"`
}
