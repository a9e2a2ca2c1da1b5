package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func required(field string) error {
	return invalid(field, "is required")
}
