package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the kind of every malformed-input error.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is the kind of every error caused by the current state.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is the kind of every missing scooter or rental log error.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports malformed input rejected before any mutation.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// OutOfRangeError is a validation error for a value outside [Min, Max].
type OutOfRangeError struct {
	Field string
	Value string
	Min   string
	Max   string
}

func NewOutOfRangeError(field string, value, lo, hi any) *OutOfRangeError {
	return &OutOfRangeError{
		Field: field,
		Value: fmt.Sprint(value),
		Min:   fmt.Sprint(lo),
		Max:   fmt.Sprint(hi),
	}
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s is out of range [%s, %s]", e.Field, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports an operation that violates the current state.
type ConflictError struct {
	Message string
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFoundError reports a missing scooter or rental log entry.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
