package token

import (
	"testing"
	"time"

	"github.com/mirak10/PeopleIQ/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-value"

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	raw, err := m.Generate("user-1", domain.RoleManager)
	require.NoError(t, err)

	id, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, domain.RoleManager, id.Role)
}

func TestManager_Parse(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		m := NewManager(testSecret, time.Minute)
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		raw, err := m.Generate("user-1", domain.RoleHR)
		require.NoError(t, err)

		m.now = time.Now
		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := NewManager("another-secret-value", time.Hour).Generate("user-1", domain.RoleHR)
		require.NoError(t, err)

		_, err = NewManager(testSecret, time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewManager(testSecret, time.Hour).Parse("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			UserID: "user-1",
			Role:   "Superuser",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = NewManager(testSecret, time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("lowercase role is normalized", func(t *testing.T) {
		claims := Claims{
			UserID: "user-1",
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		id, err := NewManager(testSecret, time.Hour).Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, id.Role)
	})
}
