package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "cricket-scoring/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts a struct validator failure into the typed
// validation error the handlers map to a 400. The first failing field
// carries the message.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	if trimmed := strings.TrimSuffix(field, "id"); trimmed != "" {
		field = trimmed
	}

	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	case "oneof":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is invalid", field))
	}
}
