package domain

import "strings"

// Role is the access role carried by an identity and its tokens.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

var knownRoles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// Roles returns every known role in privilege order.
func Roles() []Role {
	out := make([]Role, len(knownRoles))
	copy(out, knownRoles)
	return out
}

// ParseRole normalizes a role name regardless of case or surrounding space.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range knownRoles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is already in canonical form.
func (r Role) Valid() bool {
	parsed, ok := ParseRole(string(r))
	return ok && parsed == r
}

func (r Role) String() string {
	return string(r)
}

// Allowed reports whether role is part of the allow-list.
func Allowed(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
