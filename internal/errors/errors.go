package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailNotFound is returned when no account matches the sign-in email.
	ErrEmailNotFound = errors.New("incorrect email ID")
	// ErrIncorrectPassword is returned when the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrRoleMismatch is returned when the declared role differs from the stored one.
	ErrRoleMismatch = errors.New("role does not match account")
	// ErrIncorrectAccessID is returned when a privileged sign-in carries a wrong access id.
	ErrIncorrectAccessID = errors.New("incorrect access id")
	// ErrEmailTaken is returned when the sign-up email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrPhoneTaken is returned when the sign-up phone number is already registered.
	ErrPhoneTaken = errors.New("phone number already exists")
	// ErrUserNotFound is returned when an identity no longer resolves to a record.
	ErrUserNotFound = errors.New("user not found")
	// ErrRFQNotFound is returned when no RFQ matches the given id.
	ErrRFQNotFound = errors.New("RFQ not found")
	// ErrNoValidFields is returned when a profile update carries no updatable field.
	ErrNoValidFields = errors.New("no valid fields to update")
	// ErrInvalidStatus is returned when an RFQ status update names an unknown status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrTokenRevoked is returned when a signed-out token is presented again.
	ErrTokenRevoked = errors.New("token has been revoked")
)

// FieldError describes a single violated constraint on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// WithDetails attaches per-field details to the error.
func (e *HTTPError) WithDetails(details []FieldError) *HTTPError {
	e.Details = details
	return e
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailNotFound:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "EMAIL_NOT_FOUND")
	case ErrIncorrectPassword:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_PASSWORD")
	case ErrRoleMismatch:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ROLE_MISMATCH")
	case ErrIncorrectAccessID:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_ACCESS_ID")
	case ErrTokenRevoked:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_REVOKED")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrPhoneTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "PHONE_TAKEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrRFQNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RFQ_NOT_FOUND")
	case ErrNoValidFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_VALID_FIELDS")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
