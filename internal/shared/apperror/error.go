package apperror

import "fmt"

type AppError struct {
	Code       string // machine readable, e.g. NOT_FOUND
	Message    string // safe to show to API clients
	HTTPStatus int
	Err        error // optional cause, never shown to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same sentinel, so errors.Is keeps matching
// after a sentinel has been copied with WithErr.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithErr returns a copy of the sentinel carrying cause.
func (e *AppError) WithErr(cause error) *AppError {
	cp := *e
	cp.Err = cause
	return &cp
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError around err. A nil err yields nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
