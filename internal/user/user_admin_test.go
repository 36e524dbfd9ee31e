package user_test

import (
	"context"
	"testing"

	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/user"
	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin with hashed password", func(t *testing.T) {
		repo := user.NewRepository(openTestDB(t))

		account, created, err := user.EnsureAdmin(ctx, repo, " Admin User ", "Admin@HRAnalysis.com", "admin123")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Admin User", account.Name)
		assert.Equal(t, "admin@hranalysis.com", account.Email)
		assert.Equal(t, domain.RoleAdmin, account.Role)
		assert.True(t, user.CheckPassword(account.Password, "admin123"))

		stored, err := repo.FindByEmail(ctx, "admin@hranalysis.com")
		require.NoError(t, err)
		assert.Equal(t, account.ID, stored.ID)
	})

	t.Run("existing admin is left untouched", func(t *testing.T) {
		repo := user.NewRepository(openTestDB(t))

		first, _, err := user.EnsureAdmin(ctx, repo, "Admin User", "admin@hranalysis.com", "admin123")
		require.NoError(t, err)

		again, created, err := user.EnsureAdmin(ctx, repo, "Someone Else", "admin@hranalysis.com", "other-pass")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
		assert.True(t, user.CheckPassword(again.Password, "admin123"))
	})

	t.Run("email held by another role", func(t *testing.T) {
		repo := user.NewRepository(openTestDB(t))
		require.NoError(t, repo.Create(ctx, &user.User{
			ID: uuid.New(), Name: "Hana", Email: "hana@example.com", Password: "hash", Role: domain.RoleHR,
		}))

		_, _, err := user.EnsureAdmin(ctx, repo, "Hana", "hana@example.com", "admin123")
		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
	})

	t.Run("short password", func(t *testing.T) {
		repo := user.NewRepository(openTestDB(t))

		_, _, err := user.EnsureAdmin(ctx, repo, "Admin User", "admin@hranalysis.com", "abc")
		assert.ErrorIs(t, err, usererrors.ErrPasswordTooShort)
	})
}
