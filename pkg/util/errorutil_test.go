package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		field  string
		code   string
		status int
	}{
		{NewValidation("email", "signup.error.email"), "email", "signup.error.email", http.StatusBadRequest},
		{NewNotFound("email", "signup.error.email.repeated"), "email", "signup.error.email.repeated", http.StatusNotFound},
		{NewUnauthorized("password", "login.error.password.incorrect"), "password", "login.error.password.incorrect", http.StatusUnauthorized},
		{NewForbidden("role", "auth.error.role.teacherRequired"), "role", "auth.error.role.teacherRequired", http.StatusForbidden},
	}

	for _, tc := range cases {
		var domainErr *DomainError
		require.True(t, errors.As(tc.err, &domainErr))
		assert.Equal(t, tc.field, domainErr.Field)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := NewInternalError(cause)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, FieldInternal, domainErr.Field)
	assert.Equal(t, CodeInternal, domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.ErrorIs(t, err, cause)
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	passed := NewNotFound("email", "login.error.email.notExist")
	assert.Same(t, passed, ToDomainError(passed))

	wrapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus)
}
