package employee

import (
	"errors"
	"strings"

	employeeerrors "go-leave/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_employee_email" {
			return employeeerrors.ErrEmployeeEmailTaken.WithErr(err)
		}
		return err
	}

	// some drivers only surface the message text
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmployeeEmailTaken.WithErr(err)
	}

	return err
}
