// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd to avoid import cycles between
// internal/cmd and internal/cmdutil.
package cmdtypes

import (
	"github.com/bistrokit/cli/internal/config"
	oerrors "github.com/bistrokit/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file, nil when none was read.
	Config *config.Config

	// Resolved holds every value after flag, env, config and default
	// precedence.
	Resolved *config.ResolvedConfig

	Verbose bool
}

// ConfigPath returns the resolved config file path.
func (g *GlobalConfig) ConfigPath() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.ConfigPath.Value
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
	ExitCommandFailed    = oerrors.ExitCommandFailed
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
