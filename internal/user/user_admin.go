package user

import (
	"context"
	"errors"
	"strings"

	"github.com/mirak10/PeopleIQ/internal/domain"
	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// EnsureAdmin creates an Admin identity for email. An existing Admin with the
// same email is returned untouched with created=false; any other role holding
// the email is a conflict.
func EnsureAdmin(ctx context.Context, repo Repository, name, email, password string) (account *User, created bool, err error) {
	if len(password) < minPasswordLength {
		return nil, false, usererrors.ErrPasswordTooShort
	}

	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			return nil, false, usererrors.ErrEmailAlreadyRegistered
		}
		return existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	account = &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     domain.RoleAdmin,
	}
	if err := repo.Create(ctx, account); err != nil {
		return nil, false, MapRepositoryError(err)
	}
	return account, true, nil
}
