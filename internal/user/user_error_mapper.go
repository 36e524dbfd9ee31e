package user

import (
	"errors"

	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const emailConstraint = "idx_users_email"

// MapRepositoryError translates identity persistence failures into AppErrors.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == emailConstraint {
		return usererrors.ErrEmailAlreadyRegistered
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usererrors.ErrEmailAlreadyRegistered
	}

	return err
}
