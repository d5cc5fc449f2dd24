package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ValidationHTTPError converts a validator error into a 400 HTTPError that
// lists every violated field, not just the first.
func ValidationHTTPError(err error) *HTTPError {
	httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_FAILED")

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return httpErr
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return httpErr.WithDetails(details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "email":
		return "invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
