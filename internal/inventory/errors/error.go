// Package errors provides custom error types for inventory operations.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when no product exists with the requested ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrSupplierNotFound is returned when no supplier exists with the requested ID.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSupplierHasProducts is returned when a supplier cannot be removed
	// because products still reference it.
	ErrSupplierHasProducts = errors.New("supplier has associated products")

	// ErrDuplicateID is returned when an entity with the same ID is already present.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrValidation is the sentinel all validation failures wrap.
	// Match with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes a single invalid field. It wraps ErrValidation
// so callers can branch on the whole class without inspecting the field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
