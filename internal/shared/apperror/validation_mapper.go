package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns employee_id into "Employee Id".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts the first binding failure into an AppError.
// Errors that are not validator errors (malformed JSON, wrong types) become ErrInvalidInput.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(err, ErrInvalidInput.Code, ErrInvalidInput.Message, ErrInvalidInput.HTTPStatus)
}
