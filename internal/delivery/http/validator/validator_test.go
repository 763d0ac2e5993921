package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestCustomValidator_Valid(t *testing.T) {
	err := New().Validate(&signupRequest{Email: "a@x.com", Username: "alice", Password: "pw1"})
	assert.NoError(t, err)
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&signupRequest{Email: "not-an-email", Username: "al"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []string{
		"email must be a valid email address",
		"username must be at least 3 characters",
		"password is required",
	}, validationErr.Fields)
}

func TestCustomValidator_MaxLength(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	err := New().Validate(&signupRequest{Email: "a@x.com", Username: "alice", Password: string(long)})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"password must be at most 72 bytes"}, validationErr.Fields)
}

func TestCustomValidator_MaxBytesCountsEncodedLength(t *testing.T) {
	// 25 three-byte runes: 25 characters, 75 bytes.
	password := ""
	for range 25 {
		password += "密"
	}

	err := New().Validate(&signupRequest{Email: "a@x.com", Username: "alice", Password: password})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"password must be at most 72 bytes"}, validationErr.Fields)
}

type preferencesRequest struct {
	Theme     *string  `json:"theme" validate:"omitnil,oneof=light dark"`
	Threshold *float64 `json:"threshold" validate:"omitnil,gte=0"`
}

func TestCustomValidator_OptionalPointerFields(t *testing.T) {
	v := New()
	dark := "dark"
	empty := ""
	negative := -1.0

	assert.NoError(t, v.Validate(&preferencesRequest{}))
	assert.NoError(t, v.Validate(&preferencesRequest{Theme: &dark}))

	err := v.Validate(&preferencesRequest{Theme: &empty, Threshold: &negative})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []string{
		"theme must be one of: light dark",
		"threshold must be at least 0",
	}, validationErr.Fields)
}
