package rbac

import "github.com/mirak10/PeopleIQ/internal/domain"

const (
	ResourceEmployee   = "employee"
	ResourcePrediction = "prediction"
	ResourceRBAC       = "rbac"
	ResourceField      = "field"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ActionSummary         = "summary"
	ActionAlerts          = "alerts"
	ActionTurnover        = "turnover"
	ActionRecommendations = "recommendations"
	ActionList            = "list"
	ActionPerformance     = "performance"
	ActionAbsenteeism     = "absenteeism"
	ActionDepartment      = "department"
	ActionDetail          = "detail"
)

type Rule struct {
	Resource string
	Action   string
	Roles    []domain.Role
}

var (
	adminHR        = []domain.Role{domain.RoleAdmin, domain.RoleHR}
	adminHRManager = []domain.Role{domain.RoleAdmin, domain.RoleHR, domain.RoleManager}
	everyone       = []domain.Role{domain.RoleAdmin, domain.RoleHR, domain.RoleManager, domain.RoleEmployee}
)

// DefaultRules is the route policy table loaded into the enforcer.
var DefaultRules = []Rule{
	{ResourceEmployee, ActionRead, adminHRManager},
	{ResourceEmployee, ActionCreate, adminHR},
	{ResourceEmployee, ActionUpdate, adminHR},
	{ResourceEmployee, ActionDelete, []domain.Role{domain.RoleAdmin}},

	{ResourcePrediction, ActionSummary, adminHR},
	{ResourcePrediction, ActionAlerts, adminHR},
	{ResourcePrediction, ActionTurnover, adminHR},
	{ResourcePrediction, ActionRecommendations, adminHR},
	{ResourcePrediction, ActionList, adminHR},
	{ResourcePrediction, ActionPerformance, adminHRManager},
	{ResourcePrediction, ActionAbsenteeism, adminHRManager},
	{ResourcePrediction, ActionDepartment, adminHRManager},
	{ResourcePrediction, ActionDetail, everyone},

	{ResourceRBAC, ActionRead, []domain.Role{domain.RoleAdmin}},
	{ResourceField, ActionRead, everyone},
}

func expand(rules []Rule) [][]string {
	var out [][]string
	for _, r := range rules {
		for _, role := range r.Roles {
			out = append(out, []string{role.String(), r.Resource, r.Action})
		}
	}
	return out
}
