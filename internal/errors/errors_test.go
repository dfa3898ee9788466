//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrCommand)
	assert.NotEqual(t, ErrNotFound, ErrCommand)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "project-name required",
		Location: "answers.yaml",
		Field:    "project-name",
		Context:  map[string]string{"Framework": "react", "Acronym": "v6y"},
		Hint:     "Provide a project name",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: answers.yaml")
	assert.Contains(t, out, "Field: project-name")
	assert.Contains(t, out, "Framework: react")
	assert.Contains(t, out, "project-name required")
	assert.Contains(t, out, "Hint: Provide a project name")
	assert.Less(t, strings.Index(out, "Acronym"), strings.Index(out, "Framework"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "answers.yaml", "frontend-framework", "Use react or angular")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "answers.yaml", detail.Location)
	assert.Equal(t, "frontend-framework", detail.Field)
	assert.Equal(t, "Use react or angular", detail.Hint)
}

func TestNewNotFoundAndPermissionErrors(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("missing", "templates", ""), ErrNotFound))
	assert.True(t, errors.Is(NewPermissionError("denied", "/root", ""), ErrPermission))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "answers"), ExitValidationError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"permission error", ErrPermission, ExitPermissionDenied},
		{"command error", fmt.Errorf("install: %w", ErrCommand), ExitCommandFailed},
		{"detail error", NewNotFoundError("x", "", ""), ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("boom"), 42), 42},
		{"unknown error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Command Failed", ExitCodeName(ExitCommandFailed))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestExitError(t *testing.T) {
	inner := errors.New("inner")
	exitErr := NewExitError(inner, ExitNotFound)

	assert.Equal(t, "inner", exitErr.Error())
	assert.True(t, errors.Is(exitErr, inner))
	assert.Equal(t, "Not Found", (&ExitError{Code: ExitNotFound}).Error())
}
