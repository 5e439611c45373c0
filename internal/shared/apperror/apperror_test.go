package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithErr(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "email already taken", http.StatusConflict)
	cause := errors.New("duplicate key value")

	err := sentinel.WithErr(cause)

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "email already taken: duplicate key value", err.Error())
	assert.Nil(t, sentinel.Err)
}

func TestAppError_Wrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "boom", http.StatusInternalServerError))

	err := apperror.Wrap(errors.New("io"), apperror.CodeInternalError, "boom", http.StatusInternalServerError)
	assert.Equal(t, "boom: io", err.Error())
}

func TestToHTTP(t *testing.T) {
	t.Run("app error in chain", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", apperror.ErrNotFound)

		got := apperror.ToHTTP(wrapped)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, apperror.ErrNotFound.Message, got.Message)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	err := apperror.MapValidationError(errors.New("unexpected EOF"))

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
}
