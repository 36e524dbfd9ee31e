package permission

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Record identifies which employee table a writable field lives on.
type Record string

const (
	RecordProfile     Record = "profile"
	RecordBehavioral  Record = "behavioral"
	RecordPerformance Record = "performance"
)

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// Field maps a payload key to its column.
type Field struct {
	Name     string
	Column   string
	Kind     Kind
	Nullable bool
}

var profileFields = []Field{
	{Name: "name", Column: "name", Kind: KindString},
	{Name: "email", Column: "email", Kind: KindString},
	{Name: "gender", Column: "gender", Kind: KindString},
	{Name: "age", Column: "age", Kind: KindInt, Nullable: true},
	{Name: "maritalStatus", Column: "marital_status", Kind: KindString},
	{Name: "education", Column: "education", Kind: KindString},
	{Name: "department", Column: "department", Kind: KindString},
	{Name: "jobRole", Column: "job_role", Kind: KindString},
	{Name: "jobLevel", Column: "job_level", Kind: KindInt},
	{Name: "status", Column: "status", Kind: KindString},
}

var behavioralFields = []Field{
	{Name: "engagementScore", Column: "engagement_score", Kind: KindFloat},
	{Name: "burnoutRiskScore", Column: "burnout_risk_score", Kind: KindFloat},
	{Name: "jobSatisfaction", Column: "job_satisfaction", Kind: KindInt},
	{Name: "workLifeBalance", Column: "work_life_balance", Kind: KindInt},
	{Name: "absenceDays6m", Column: "absence_days_6m", Kind: KindInt},
	{Name: "overtime", Column: "overtime", Kind: KindBool},
	{Name: "distanceFromHome", Column: "distance_from_home", Kind: KindInt},
	{Name: "travelFrequency", Column: "travel_frequency", Kind: KindString},
}

var performanceFields = []Field{
	{Name: "performanceRating", Column: "performance_rating", Kind: KindFloat},
	{Name: "lastOverallScore", Column: "last_overall_score", Kind: KindFloat},
	{Name: "salary", Column: "salary", Kind: KindFloat},
	{Name: "monthlyIncome", Column: "monthly_income", Kind: KindFloat},
	{Name: "tenureYears", Column: "tenure_years", Kind: KindFloat},
	{Name: "yearsSincePromotion", Column: "years_since_promotion", Kind: KindInt},
	{Name: "trainingCount", Column: "training_count", Kind: KindInt},
	{Name: "percentSalaryHike", Column: "percent_salary_hike", Kind: KindFloat},
	{Name: "stockOptionLevel", Column: "stock_option_level", Kind: KindInt},
}

var schemas = map[Record]map[string]Field{
	RecordProfile:     index(profileFields, byName),
	RecordBehavioral:  index(behavioralFields, byName),
	RecordPerformance: index(performanceFields, byName),
}

var columns = map[Record]map[string]Field{
	RecordProfile:     index(profileFields, byColumn),
	RecordBehavioral:  index(behavioralFields, byColumn),
	RecordPerformance: index(performanceFields, byColumn),
}

func byName(f Field) string   { return f.Name }
func byColumn(f Field) string { return f.Column }

func index(fields []Field, key func(Field) string) map[string]Field {
	out := make(map[string]Field, len(fields))
	for _, f := range fields {
		out[key(f)] = f
	}
	return out
}

// Lookup returns the field declared under name on record.
func Lookup(record Record, name string) (Field, bool) {
	f, ok := schemas[record][name]
	return f, ok
}

// SchemaFields lists the field names declared on record in sorted order.
func SchemaFields(record Record) []string {
	names := make([]string, 0, len(schemas[record]))
	for name := range schemas[record] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Coerce converts a decoded JSON value into the Go type stored in f's column.
func (f Field) Coerce(v any) (any, error) {
	if v == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("%s cannot be null", f.Name)
	}

	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", f.Name)
		}
		return s, nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%s must be a boolean", f.Name)
		}
		return b, nil
	case KindFloat:
		n, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s must be a number", f.Name)
		}
		return n, nil
	case KindInt:
		n, ok := toFloat(v)
		if !ok || n != math.Trunc(n) {
			return nil, fmt.Errorf("%s must be an integer", f.Name)
		}
		return int64(n), nil
	}
	return nil, fmt.Errorf("%s has an unsupported type", f.Name)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
