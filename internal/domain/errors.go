package domain

import (
	"errors"
	"strings"
)

// Sentinels shared by every layer. Adapters wrap them and transports map
// them to status codes with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrUnknownCategory is returned for a category name missing from the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrStoreUnavailable marks a lost or unreachable database. A generation
	// job stops on it; a single bad batch does not.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field problem found in one input. It
// matches ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports a single bad field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// Checker accumulates field errors so Validate methods can report all
// problems at once. The zero value is ready to use.
type Checker struct {
	errs []FieldError
}

// Check records message against field when ok is false.
func (c *Checker) Check(ok bool, field, message string) {
	if !ok {
		c.errs = append(c.errs, FieldError{Field: field, Message: message})
	}
}

// Err returns a *ValidationError, or nil when every check passed.
func (c *Checker) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: c.errs}
}
