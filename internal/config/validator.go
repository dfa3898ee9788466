package config

import (
	"fmt"
	"slices"
	"strings"

	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/shell"
)

// StorybookBuilders lists the accepted Storybook builders.
var StorybookBuilders = []string{"vite", "webpack5"}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap makes ValidationErrors match oerrors.ErrValidation.
func (e ValidationErrors) Unwrap() error { return oerrors.ErrValidation }

// Validate checks the values of a loaded config file.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.RootPath != "" && strings.TrimSpace(cfg.RootPath) == "" {
		errs = append(errs, ValidationError{Field: KeyRootPath, Message: "must not be whitespace only"})
	}
	if cfg.TemplateRoot != "" && strings.TrimSpace(cfg.TemplateRoot) == "" {
		errs = append(errs, ValidationError{Field: KeyTemplateRoot, Message: "must not be whitespace only"})
	}
	errs = append(errs, checkEnums(cfg.PackageManager, cfg.StorybookBuilder)...)
	if cfg.CommandTimeout < 0 {
		errs = append(errs, ValidationError{Field: KeyCommandTimeout, Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateResolved checks resolved values, whatever their source.
func ValidateResolved(r *ResolvedConfig) error {
	errs := checkEnums(r.PackageManager.Value, r.StorybookBuilder.Value)
	if r.Timeout < 0 {
		errs = append(errs, ValidationError{Field: KeyCommandTimeout, Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkEnums(packageManager, builder string) ValidationErrors {
	var errs ValidationErrors
	if packageManager != "" && !slices.Contains(shell.PackageManagers, packageManager) {
		errs = append(errs, ValidationError{
			Field:   KeyPackageManager,
			Message: fmt.Sprintf("must be one of %s", strings.Join(shell.PackageManagers, ", ")),
		})
	}
	if builder != "" && !slices.Contains(StorybookBuilders, builder) {
		errs = append(errs, ValidationError{
			Field:   KeyStorybookBuilder,
			Message: fmt.Sprintf("must be one of %s", strings.Join(StorybookBuilders, ", ")),
		})
	}
	return errs
}
