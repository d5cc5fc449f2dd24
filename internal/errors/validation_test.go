package errors

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupFields struct {
	FirstName string `validate:"required,min=3"`
	LastName  string `validate:"required,min=3"`
	PhoneNo   string `validate:"required,len=10,numeric"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	Role      string `validate:"required,oneof=admin employee client"`
}

func TestValidationHTTPError_ListsEveryField(t *testing.T) {
	v := validator.New()
	err := v.Struct(signupFields{
		FirstName: "Jo",        // too short
		LastName:  "",          // missing
		PhoneNo:   "12345",     // wrong length
		Email:     "not-an-email",
		Password:  "12345",     // too short
		Role:      "superuser", // not in the set
	})
	require.Error(t, err)

	httpErr := ValidationHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", httpErr.Code)

	fields := make(map[string]string, len(httpErr.Details))
	for _, fe := range httpErr.Details {
		fields[fe.Field] = fe.Message
	}
	assert.Len(t, fields, 6)
	assert.Contains(t, fields, "FirstName")
	assert.Contains(t, fields, "LastName")
	assert.Contains(t, fields, "PhoneNo")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
	assert.Contains(t, fields, "Role")
}

func TestValidationHTTPError_ValidInputHasNoDetails(t *testing.T) {
	v := validator.New()
	err := v.Struct(signupFields{
		FirstName: "Jane",
		LastName:  "Carter",
		PhoneNo:   "5551234567",
		Email:     "jane@acme.com",
		Password:  "password123",
		Role:      "client",
	})
	assert.NoError(t, err)
}
