package prediction

import "gorm.io/gorm"

// DepartmentScope restricts a query to one department. Empty matches all.
func DepartmentScope(department string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if department == "" {
			return db
		}
		return db.Where("department = ?", department)
	}
}

// RiskScope restricts a query to one attrition risk level. Empty matches all.
func RiskScope(level string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if level == "" {
			return db
		}
		return db.Where("attrition_risk_level = ?", level)
	}
}
