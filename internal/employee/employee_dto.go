package employee

import "time"

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	JobRole    string `json:"jobRole"`
}

type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type EmployeeListItem struct {
	ID                string       `json:"id"`
	EmployeeCode      string       `json:"employeeCode"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Department        string       `json:"department"`
	JobRole           string       `json:"jobRole"`
	JobLevel          int          `json:"jobLevel"`
	Status            string       `json:"status"`
	User              *UserSummary `json:"user"`
	AttritionRisk     float64      `json:"attritionRisk"`
	EngagementScore   float64      `json:"engagementScore"`
	PerformanceRating float64      `json:"performanceRating"`
}

type BehavioralResponse struct {
	EngagementScore  float64 `json:"engagementScore"`
	BurnoutRiskScore float64 `json:"burnoutRiskScore"`
	JobSatisfaction  int     `json:"jobSatisfaction"`
	WorkLifeBalance  int     `json:"workLifeBalance"`
	AbsenceDays6m    int     `json:"absenceDays6m"`
	Overtime         bool    `json:"overtime"`
	DistanceFromHome int     `json:"distanceFromHome"`
	TravelFrequency  string  `json:"travelFrequency"`
}

type PerformanceResponse struct {
	PerformanceRating   float64 `json:"performanceRating"`
	LastOverallScore    float64 `json:"lastOverallScore"`
	Salary              float64 `json:"salary"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	TenureYears         float64 `json:"tenureYears"`
	YearsSincePromotion int     `json:"yearsSincePromotion"`
	TrainingCount       int     `json:"trainingCount"`
	PercentSalaryHike   float64 `json:"percentSalaryHike"`
	StockOptionLevel    int     `json:"stockOptionLevel"`
}

type EmployeeResponse struct {
	ID            string               `json:"id"`
	EmployeeCode  string               `json:"employeeCode"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Gender        string               `json:"gender"`
	Age           *int                 `json:"age"`
	MaritalStatus string               `json:"maritalStatus"`
	Education     string               `json:"education"`
	Department    string               `json:"department"`
	JobRole       string               `json:"jobRole"`
	JobLevel      int                  `json:"jobLevel"`
	Status        string               `json:"status"`
	User          *UserSummary         `json:"user"`
	Behavioral    *BehavioralResponse  `json:"behavioral,omitempty"`
	Performance   *PerformanceResponse `json:"performance,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type CreateEmployeeResponse struct {
	Employee     EmployeeResponse `json:"employee"`
	TempPassword string           `json:"tempPassword"`
}
