package employee

import (
	"errors"

	employeeerrors "github.com/mirak10/PeopleIQ/internal/employee/errors"
	"github.com/mirak10/PeopleIQ/internal/user"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const employeeCodeConstraint = "idx_employee_profiles_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == employeeCodeConstraint {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	return user.MapRepositoryError(err)
}
