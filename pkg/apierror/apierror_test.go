package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode_KnownCodes(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{139, ErrAuthenticationFailed},
		{196, ErrAuthenticationFailed},
		{117, ErrInsufficientFunds},
		{1002, ErrInsufficientFunds},
		{285, ErrAuthorizationFailed},
		{4005, ErrAuthorizationFailed},
		{320, ErrNotFound},
		{5001, ErrNotFound},
		{346, ErrDomainTaken},
		{375, ErrInvalidDomainName},
		{500, ErrInternalServerError},
		{4004, ErrMaintenance},
		{10001, ErrRateLimited},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("code %d", tc.code), func(t *testing.T) {
			assert.ErrorIs(t, FromCode(tc.code), tc.want)
		})
	}
}

func TestFromCode_Ranges(t *testing.T) {
	for _, code := range []int{1, 50, 99} {
		assert.ErrorIs(t, FromCode(code), ErrBadRequest, "code %d", code)
	}
	for _, code := range []int{700, 750, 799} {
		assert.ErrorIs(t, FromCode(code), ErrValidation, "code %d", code)
	}
}

func TestFromCode_Totality(t *testing.T) {
	// Every code maps to something; unknown codes fall back to the generic kind.
	for _, code := range []int{-1, 0, 100, 347, 2000, 123456} {
		kind := FromCode(code)
		require.NotNil(t, kind, "code %d", code)
		assert.ErrorIs(t, kind, ErrAPI, "code %d", code)
	}
}

func TestError_Message(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		err := New(346, "Domain not available", "example.com")
		assert.Equal(t, "Domain not available (346) example.com", err.Error())
	})

	t.Run("empty data keeps trailing space", func(t *testing.T) {
		err := New(346, "Domain not available", "")
		assert.Equal(t, "Domain not available (346) ", err.Error())
	})
}

func TestError_Unwrap(t *testing.T) {
	err := New(346, "Domain not available", "example.com")

	assert.ErrorIs(t, err, ErrDomainTaken)
	assert.ErrorIs(t, err, ErrAPI)
	assert.NotErrorIs(t, err, ErrNotFound)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 346, apiErr.Code)
	assert.Equal(t, "Domain not available", apiErr.Desc)
	assert.Equal(t, "example.com", apiErr.Data)
	assert.ErrorIs(t, apiErr.Kind(), ErrDomainTaken)
}

func TestError_WrappedFurther(t *testing.T) {
	err := fmt.Errorf("checking domain: %w", New(139, "Authentication failed", ""))

	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 139, apiErr.Code)
}

func TestLibraryConditions_Distinct(t *testing.T) {
	// Transport and parsing failures are separate conditions, not API kinds.
	assert.NotErrorIs(t, ErrServiceUnavailable, ErrAPI)
	assert.NotErrorIs(t, ErrMalformedResponse, ErrAPI)
	assert.NotErrorIs(t, ErrConfiguration, ErrAPI)
}
