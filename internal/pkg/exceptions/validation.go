package exceptions

import (
	"carebook-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator.v10 field error into a
// client-readable message. Other errors are dropped; one actionable message is enough.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", field, fieldError.Param())
	case "password":
		return fmt.Sprintf("Field '%s' must be at least 8 characters with an uppercase letter and a special character", field)
	case "wallclock":
		return fmt.Sprintf("Field '%s' must be a time in HH:MM format", field)
	default:
		return fmt.Sprintf("Field '%s' is invalid", field)
	}
}
