package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers scoped lookup misses. A product owned by another
	// shop surfaces the same way as one that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique key (registration email).
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized marks a failed credential or identity check.
	ErrUnauthorized = errors.New("invalid credentials")
)

// ValidationError rejects malformed or missing input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
