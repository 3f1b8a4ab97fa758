package users

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// bindRegister runs gin's JSON binding against a raw body and returns the
// binding error, if any.
func bindRegister(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/users", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req RegisterRequest
	return c.ShouldBindJSON(&req)
}

func TestRegisterBindingValid(t *testing.T) {
	err := bindRegister(t, `{"email":"a@x.com","password":"secret","firstName":"A"}`)
	require.NoError(t, err)
}

func TestBindingErrorMessageNamesFields(t *testing.T) {
	err := bindRegister(t, `{"email":"not-an-email","firstName":"A"}`)
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	require.Contains(t, msg, "email must be a valid email address")
	require.Contains(t, msg, "password is required")
}

func TestBindingErrorMessageMinLength(t *testing.T) {
	err := bindRegister(t, `{"email":"a@x.com","password":"abc","firstName":"A"}`)
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	require.Contains(t, msg, "password must be at least 6 characters")
}

func TestBindingErrorMessageMalformedJSON(t *testing.T) {
	err := bindRegister(t, `{"email":`)
	require.Error(t, err)
	require.Equal(t, "Invalid request format", BindingErrorMessage(err))
}

func TestBindingErrorMessageNonValidatorError(t *testing.T) {
	require.Equal(t, "Invalid request format", BindingErrorMessage(errors.New("boom")))
}
