package settings

import (
	"fmt"

	oerrors "github.com/bistrokit/cli/internal/errors"
)

// ValidationError reports a required answer that is missing or empty.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " required"
}

// Unwrap lets callers match the error with errors.Is(err, errors.ErrValidation).
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}

// CatalogLookupError reports a key pair missing from a catalog table.
type CatalogLookupError struct {
	Table  string
	Key    string
	Subkey string
}

// Error implements the error interface.
func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("no %s template for %q/%q", e.Table, e.Key, e.Subkey)
}

// Unwrap lets callers match the error with errors.Is(err, errors.ErrNotFound).
func (e *CatalogLookupError) Unwrap() error {
	return oerrors.ErrNotFound
}
