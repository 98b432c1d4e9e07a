package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Storage errors. The wrapped cause is for logs only and never reaches a client.
	ErrPersistence = errors.New("persistence failure")
)

// Course errors
var (
	ErrCourseNotFound = fmt.Errorf("course not found: %w", ErrResourceNotFound)
)

// FieldError describes one violated constraint on one input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of a payload
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make([]FieldError, 0)}
}

// Add records a violation for field
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasField reports whether field already has a violation
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Merge adds the violations of other on fields e does not report yet.
// other may be nil or any error; only a *ValidationError contributes.
func (e *ValidationError) Merge(other error) *ValidationError {
	var verr *ValidationError
	if !errors.As(other, &verr) {
		return e
	}
	for _, f := range verr.Fields {
		if !e.HasField(f.Field) {
			e.Fields = append(e.Fields, f)
		}
	}
	return e
}

// HasErrors reports whether any field was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// PersistenceError wraps a storage failure for one operation
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError wraps err as a failure of op
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// Error implements error interface
func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + ErrPersistence.Error()
	}
	return e.Op + ": " + ErrPersistence.Error() + ": " + e.Err.Error()
}

// Is lets errors.Is match ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Unwrap exposes the storage cause
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
