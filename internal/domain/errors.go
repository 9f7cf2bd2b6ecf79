package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidFieldConfig = errors.New("invalid field config")
	ErrCategoryMismatch   = errors.New("category belongs to another directory")
	ErrFieldLocked        = errors.New("field is locked")
	ErrDirectoryLocked    = errors.New("directory is locked")
	ErrImmutableField     = errors.New("field key is immutable")
	ErrSystemManaged      = errors.New("entity is system-managed")
	ErrDirectoryNotEmpty  = errors.New("directory is not empty")
	ErrCategoryNotEmpty   = errors.New("category is not empty")
	ErrDepthExceeded      = errors.New("category depth exceeded")
	ErrInvalidURN         = errors.New("invalid urn")
	ErrEdgeExists         = errors.New("edge already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConfigError describes why a type-specific field configuration was rejected.
// It always unwraps to ErrInvalidFieldConfig.
type ConfigError struct {
	FieldType FieldType
	Key       string
	Message   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field config (%s): %s: %s", e.FieldType, e.Key, e.Message)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidFieldConfig }

// NewConfigError creates a ConfigError for a single config key.
func NewConfigError(ft FieldType, key, message string) *ConfigError {
	return &ConfigError{FieldType: ft, Key: key, Message: message}
}
