package errors

import (
	"net/http"
	"testing"

	"storm/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidToken.WithDetails("token expired")

	assert.True(t, errors.Is(detailed, ErrInvalidToken))
	assert.False(t, errors.Is(detailed, ErrInvalidCredentials))
	assert.Equal(t, "token expired", detailed.Details())
	assert.Empty(t, ErrInvalidToken.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrDuplicateIdentity.WrapMessage("create user")

	assert.True(t, errors.Is(err, ErrDuplicateIdentity))

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_IDENTITY", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert users")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "Internal server error", err.Message())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewErrorResponse_OmitsDetails(t *testing.T) {
	resp := NewErrorResponse(NewDatabaseExecuteError(errors.New("pq: password authentication failed"), "select users"))

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal server error", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
		name string
	}{
		{ErrDuplicateIdentity, http.StatusBadRequest, "DUPLICATE_IDENTITY"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
		{ErrValidationFailed, http.StatusBadRequest, "VALIDATION_FAILED"},
		{ErrInternalError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.Equal(t, tt.name, tt.err.ErrorCode())
			assert.NotEmpty(t, tt.err.Message())
		})
	}
}
