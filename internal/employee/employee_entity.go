package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	defaultDepartment = "General"
	defaultJobRole    = "Employee"
	notSpecified      = "Not specified"
	statusActive      = "Active"
	defaultTravel     = "Rarely"
)

type Profile struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeCode  string     `gorm:"column:employee_code;type:text;not null;uniqueIndex:idx_employee_profiles_code"`
	UserID        *uuid.UUID `gorm:"column:user_id;type:uuid;index"`
	Name          string     `gorm:"column:name;type:text;not null"`
	Email         string     `gorm:"column:email;type:text;not null"`
	Gender        string     `gorm:"column:gender;type:text;not null"`
	Age           *int       `gorm:"column:age"`
	MaritalStatus string     `gorm:"column:marital_status;type:text;not null"`
	Education     string     `gorm:"column:education;type:text;not null"`
	Department    string     `gorm:"column:department;type:text;not null;index"`
	JobRole       string     `gorm:"column:job_role;type:text;not null"`
	JobLevel      int        `gorm:"column:job_level;not null"`
	Status        string     `gorm:"column:status;type:text;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "employee_profiles"
}

type Behavioral struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeCode     string    `gorm:"column:employee_code;type:text;not null;uniqueIndex:idx_employee_behaviorals_code"`
	EngagementScore  float64   `gorm:"column:engagement_score;not null"`
	BurnoutRiskScore float64   `gorm:"column:burnout_risk_score;not null"`
	JobSatisfaction  int       `gorm:"column:job_satisfaction;not null"`
	WorkLifeBalance  int       `gorm:"column:work_life_balance;not null"`
	AbsenceDays6m    int       `gorm:"column:absence_days_6m;not null"`
	Overtime         bool      `gorm:"column:overtime;not null"`
	DistanceFromHome int       `gorm:"column:distance_from_home;not null"`
	TravelFrequency  string    `gorm:"column:travel_frequency;type:text;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Behavioral) TableName() string {
	return "employee_behaviorals"
}

type Performance struct {
	ID                  uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeCode        string    `gorm:"column:employee_code;type:text;not null;uniqueIndex:idx_employee_performances_code"`
	PerformanceRating   float64   `gorm:"column:performance_rating;not null"`
	LastOverallScore    float64   `gorm:"column:last_overall_score;not null"`
	Salary              float64   `gorm:"column:salary;not null"`
	MonthlyIncome       float64   `gorm:"column:monthly_income;not null"`
	TenureYears         float64   `gorm:"column:tenure_years;not null"`
	YearsSincePromotion int       `gorm:"column:years_since_promotion;not null"`
	TrainingCount       int       `gorm:"column:training_count;not null"`
	PercentSalaryHike   float64   `gorm:"column:percent_salary_hike;not null"`
	StockOptionLevel    int       `gorm:"column:stock_option_level;not null"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Performance) TableName() string {
	return "employee_performances"
}

// Bundle is the profile together with its paired behavioral and performance rows.
type Bundle struct {
	Profile     Profile
	Behavioral  Behavioral
	Performance Performance
}

// NewBundle builds a freshly onboarded employee with neutral behavioral and zeroed performance data.
func NewBundle(code string, userID *uuid.UUID, name, email, department, jobRole string) Bundle {
	if department == "" {
		department = defaultDepartment
	}
	if jobRole == "" {
		jobRole = defaultJobRole
	}
	return Bundle{
		Profile: Profile{
			ID:            uuid.New(),
			EmployeeCode:  code,
			UserID:        userID,
			Name:          name,
			Email:         email,
			Gender:        notSpecified,
			MaritalStatus: notSpecified,
			Education:     notSpecified,
			Department:    department,
			JobRole:       jobRole,
			JobLevel:      1,
			Status:        statusActive,
		},
		Behavioral: Behavioral{
			EmployeeCode:    code,
			JobSatisfaction: 3,
			WorkLifeBalance: 3,
			TravelFrequency: defaultTravel,
		},
		Performance: Performance{
			EmployeeCode: code,
		},
	}
}

// ListRow is one profile outer-joined with its behavioral, performance and identity rows.
type ListRow struct {
	ID                uuid.UUID `gorm:"column:id"`
	EmployeeCode      string    `gorm:"column:employee_code"`
	Name              string    `gorm:"column:name"`
	Email             string    `gorm:"column:email"`
	Department        string    `gorm:"column:department"`
	JobRole           string    `gorm:"column:job_role"`
	JobLevel          int       `gorm:"column:job_level"`
	Status            string    `gorm:"column:status"`
	BurnoutRiskScore  float64   `gorm:"column:burnout_risk_score"`
	EngagementScore   float64   `gorm:"column:engagement_score"`
	PerformanceRating float64   `gorm:"column:performance_rating"`
	UserName          *string   `gorm:"column:user_name"`
	UserEmail         *string   `gorm:"column:user_email"`
	UserRole          *string   `gorm:"column:user_role"`
}

// Identity is the owning account projected onto an employee.
type Identity struct {
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Role  string `gorm:"column:role"`
}

// Detail is a composed employee: the profile plus whichever related rows exist.
type Detail struct {
	Profile     Profile
	Behavioral  *Behavioral
	Performance *Performance
	User        *Identity
}
