package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(ExternalAPIError, "geocoding request failed", cause)
			},
			expected: "EXTERNAL_API_ERROR: geocoding request failed (caused by: connection refused)",
		},
		{
			name: "ProviderErrorUsesProviderText",
			setup: func() *AppError {
				return NewProviderError(401, "Invalid API key")
			},
			expected: "API Error: Invalid API key (Code: 401)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(ExternalAPIError, "API call failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, New(NotFoundError, "resource not found").Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestNewProviderError(t *testing.T) {
	t.Run("CarriesStatusCode", func(t *testing.T) {
		err := NewProviderError(404, "city not found")

		assert.Equal(t, ProviderError, err.Type)
		assert.Equal(t, 404, err.StatusCode)
		assert.Contains(t, err.Message, "city not found")
		assert.Contains(t, err.Message, "404")
	})

	t.Run("EmptyMessageDefaults", func(t *testing.T) {
		err := NewProviderError(500, "")

		assert.Equal(t, "API Error: Unknown error (Code: 500)", err.Message)
	})
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeProvider, "PROVIDER_ERROR"},
		{ErrorTypeExternalAPI, "EXTERNAL_API_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

func TestIsHelpers(t *testing.T) {
	plain := fmt.Errorf("plain")

	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.True(t, IsProviderError(NewProviderError(401, "nope")))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("down", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad config", nil)))

	assert.False(t, IsProviderError(NewValidationError("bad")))
	assert.False(t, IsValidationError(plain))
	assert.False(t, IsConfigurationError(plain))
}
