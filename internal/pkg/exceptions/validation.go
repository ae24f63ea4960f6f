package exceptions

import (
	"annuaire-service/internal/pkg/constvars"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator violation into a
// client-readable message.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	switch fieldError.Tag() {
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s characters", fieldError.Field(), fieldError.Param())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", fieldError.Field(), fieldError.Param())
	case "national_id":
		return fmt.Sprintf("Field '%s' must be a 9 to 11 digit registry number", fieldError.Field())
	default:
		return fmt.Sprintf("Field '%s' is invalid", fieldError.Field())
	}
}
