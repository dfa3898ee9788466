package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates missing or illegal user input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, catalog entry, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates the filesystem refused a write.
	ErrPermission = errors.New("permission denied")

	// ErrCommand indicates an external command exited with a non-zero status.
	ErrCommand = errors.New("command failed")
)
