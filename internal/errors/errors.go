package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found.
// A row owned by another tenant is reported exactly like a missing one.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldError names a single offending input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return fmt.Sprintf("validation error: %s", strings.Join(parts, "; "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Details returns the field level violations, including the single Field form.
func (e *ValidationError) Details() []FieldError {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		return []FieldError{{Field: e.Field, Message: e.Message}}
	}
	return nil
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCardNotFound              = &NotFoundError{Entity: "card"}
	ErrQuoteNotFound             = &NotFoundError{Entity: "quote"}
	ErrWorkItemNotFound          = &NotFoundError{Entity: "work item"}
	ErrStockNotFound             = &NotFoundError{Entity: "stock item"}
	ErrSuggestionNotFound        = &NotFoundError{Entity: "suggestion"}
	ErrNotificationNotFound      = &NotFoundError{Entity: "notification"}
	ErrWebhookNotFound           = &NotFoundError{Entity: "webhook"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrMembershipRequestNotFound = &NotFoundError{Entity: "membership request"}
)

// Already Exists Errors
var (
	ErrUserExists                     = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrPendingMembershipRequestExists = &AlreadyExistsError{Entity: "membership request", Context: "pending for this user"}
)

// Business Logic Errors
var (
	ErrTenantAllocationFailed       = errors.New("could not allocate a unique tenant id")
	ErrMembershipRequestNotPending  = &ValidationError{Field: "status", Message: "membership request is not pending"}
	ErrWorkItemOwnerAmbiguous       = &ValidationError{Field: "card_id", Message: "a work item belongs to either a card or a quote, not both"}
	ErrInvalidStockOperation        = &ValidationError{Field: "operation", Message: "must be increment or decrement"}
	ErrStockReferenceRequired       = &ValidationError{Field: "stockId", Message: "required when isFromStock is true"}
	ErrBackupDocumentUnsupported    = &ValidationError{Field: "version", Message: "unsupported backup version"}
	ErrWebhookEventRequired         = &ValidationError{Field: "event", Message: "event name is required"}
	ErrCurrentPasswordMismatch      = &ValidationError{Field: "oldPassword", Message: "current password is incorrect"}
	ErrMembershipCustomDateInvalid  = &ValidationError{Field: "customDate", Message: "must be a date (YYYY-MM-DD or RFC3339)"}
	ErrArchiveDaysInvalid           = &ValidationError{Field: "daysOld", Message: "must be a positive number of days"}
	ErrRestoreDocumentEmpty         = &ValidationError{Message: "backup document is empty"}
	ErrNotificationRecipientMissing = &ValidationError{Field: "username", Message: "recipient is required"}
)

// Authentication Errors
var (
	ErrMissingToken       = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
)

// Authorization Errors
var (
	ErrAccountInactive   = &AuthorizationError{Message: "account is inactive"}
	ErrMembershipExpired = &AuthorizationError{Message: "membership has expired"}
	ErrAdminRequired     = &AuthorizationError{Message: "admin role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsValidation extracts a ValidationError from an error chain
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldsValidationError creates a ValidationError carrying several field violations
func NewFieldsValidationError(fields []FieldError) error {
	return &ValidationError{Message: "request failed validation", Fields: fields}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewMissingConfigError reports every required configuration key that is absent
func NewMissingConfigError(keys []string) error {
	return &ConfigurationError{Message: "missing required configuration", Missing: keys}
}
