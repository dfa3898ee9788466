package errors

import "errors"

// Exit codes returned by the bistro binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates required answers were missing or illegal.
	ExitValidationError = 2

	// ExitPermissionDenied indicates the filesystem refused a write.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template or catalog entry was not found.
	ExitNotFound = 5

	// ExitCommandFailed indicates a package-manager command failed.
	ExitCommandFailed = 7
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed is true once the command layer has already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrCommand):
		return ExitCommandFailed
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitCommandFailed:
		return "Command Failed"
	default:
		return "Unknown"
	}
}
