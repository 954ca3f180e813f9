package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrStorageFailure is returned when a query fails at the storage layer
	ErrStorageFailure = errors.New("storage failure")

	// ErrMonumentNotFound is returned when a monument is not found
	ErrMonumentNotFound = errors.New("monument not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError represents a failed storage operation with context.
// Storage errors propagate to the caller with no retry.
type StorageError struct {
	Op  string // the operation that failed, e.g. "monuments_by_name"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation '%s' failed: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// MonumentNotFoundError represents a monument not found error with context
type MonumentNotFoundError struct {
	ID int64
}

func (e *MonumentNotFoundError) Error() string {
	return fmt.Sprintf("monument with ID %d not found", e.ID)
}

func (e *MonumentNotFoundError) Is(target error) bool {
	return target == ErrMonumentNotFound
}

// NewMonumentNotFoundError creates a new MonumentNotFoundError
func NewMonumentNotFoundError(id int64) *MonumentNotFoundError {
	return &MonumentNotFoundError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
