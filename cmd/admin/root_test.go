package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["status"])
	assert.True(t, names["create-admin"])

	rollback := migrateCmd.Flags().Lookup("rollback")
	require.NotNil(t, rollback)
	assert.Equal(t, "r", rollback.Shorthand)
	assert.Equal(t, "false", rollback.DefValue)
}

func TestCreateAdmin_Defaults(t *testing.T) {
	assert.Equal(t, "Admin User", createAdminCmd.Flags().Lookup("name").DefValue)
	assert.Equal(t, "admin@hranalysis.com", createAdminCmd.Flags().Lookup("email").DefValue)
}

func TestCreateAdmin_RequiresPassword(t *testing.T) {
	t.Setenv(adminPasswordEnv, "")
	adminPassword = ""

	err := runCreateAdmin(createAdminCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), adminPasswordEnv)
}
