package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "card"}
		assert.Equal(t, "card not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "card"}
		err2 := &NotFoundError{Entity: "card"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrCardNotFound, ErrQuoteNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get card: %w", ErrCardNotFound)
		assert.True(t, errors.Is(wrapped, ErrCardNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrStockNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
		assert.False(t, IsNotFound(nil))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this username", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "webhook"}
		assert.Equal(t, "webhook already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrPendingMembershipRequestExists))
		assert.False(t, IsAlreadyExists(ErrCardNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "plaka", Message: "is required"}
		assert.Equal(t, "validation error: plaka - is required", err.Error())
		assert.Equal(t, []FieldError{{Field: "plaka", Message: "is required"}}, err.Details())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
		assert.Nil(t, err.Details())
	})

	t.Run("Error message with several fields", func(t *testing.T) {
		err := NewFieldsValidationError([]FieldError{
			{Field: "plaka", Message: "is required"},
			{Field: "km", Message: "is required"},
		})
		assert.Equal(t, "validation error: plaka: is required; km: is required", err.Error())

		ve, ok := AsValidation(err)
		require.True(t, ok)
		assert.Len(t, ve.Details(), 2)
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("url", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidStockOperation))
		assert.False(t, IsValidation(ErrCardNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.True(t, IsAuthentication(fmt.Errorf("login: %w", ErrInvalidCredentials)))
	assert.False(t, IsAuthentication(ErrAccountInactive))

	assert.True(t, IsAuthorization(ErrAccountInactive))
	assert.True(t, IsAuthorization(ErrMembershipExpired))
	assert.False(t, IsAuthorization(ErrMissingToken))
}

func TestConfigurationError(t *testing.T) {
	err := NewMissingConfigError([]string{"DB_HOST", "JWT_SECRET"})
	assert.True(t, IsConfiguration(err))
	assert.Equal(t, "missing required configuration: DB_HOST, JWT_SECRET", err.Error())

	plain := NewConfigurationError("bad value")
	assert.Equal(t, "bad value", plain.Error())
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthenticationError and NewAuthorizationError", func(t *testing.T) {
		assert.True(t, IsAuthentication(NewAuthenticationError("nope")))
		assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	})
}
