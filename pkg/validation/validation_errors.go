package validation

import (
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator errors into per-field messages. Other
// errors yield nil.
func FieldErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}
	return details
}

func message(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("must have at least %s items", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("must have at most %s items", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(param), ", "))
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "valid_name":
		return "may only contain letters, spaces and . ' - / & ( ) ,"
	case "no_emoji":
		return "must not contain emoji or symbols"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
