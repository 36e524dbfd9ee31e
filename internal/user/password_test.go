package user_test

import (
	"testing"

	"github.com/mirak10/PeopleIQ/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := user.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, user.CheckPassword(hash, "secret123"))
	assert.False(t, user.CheckPassword(hash, "wrong"))
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		pw, err := user.GenerateTempPassword()
		require.NoError(t, err)
		assert.Len(t, pw, 8)
		seen[pw] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
