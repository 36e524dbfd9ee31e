package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Admin":      RoleAdmin,
		"admin":      RoleAdmin,
		" HR ":       RoleHR,
		"hr":         RoleHR,
		"MANAGER":    RoleManager,
		"employee":   RoleEmployee,
		"Employee\n": RoleEmployee,
	}
	for in, want := range cases {
		got, ok := ParseRole(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseRole("owner")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(RoleHR, RoleAdmin, RoleHR))
	assert.False(t, Allowed(RoleEmployee, RoleAdmin, RoleHR, RoleManager))
	assert.False(t, Allowed(RoleAdmin))
}
