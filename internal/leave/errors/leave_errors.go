package leaveerrors

import (
	"net/http"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/apperror"
)

var (
	// ErrEmployeeNotFound is the employee package sentinel, so callers can match either name.
	ErrEmployeeNotFound = employeeerrors.ErrEmployeeNotFound

	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
