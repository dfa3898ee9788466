package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/bistrokit/cli/internal/answers"
	"github.com/bistrokit/cli/internal/config"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/shell"
)

// PrintError prints a command error in a user-friendly format and returns it
// wrapped in an ExitError marked as printed.
func PrintError(msg string, err error) error {
	var (
		fieldErrs  answers.FieldErrors
		configErrs config.ValidationErrors
		detail     *oerrors.DetailError
		cmdErr     *shell.CommandError
	)

	switch {
	case errors.As(err, &fieldErrs):
		output.Error(msg + ": invalid answers")
		for _, e := range fieldErrs {
			output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
	case errors.As(err, &configErrs):
		output.Error(msg + ": invalid configuration")
		for _, e := range configErrs {
			output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
	case errors.As(err, &detail):
		output.Error(msg)
		output.Println(strings.TrimRight(detail.Error(), "\n"))
	case errors.As(err, &cmdErr):
		output.Error(msg, "command", cmdErr.Command.String(), "exit", cmdErr.ExitCode)
		if cmdErr.Stderr != "" {
			output.Println(cmdErr.Stderr)
		}
	default:
		output.Error(msg, "error", err)
	}

	return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
}

// DryRunTarget returns a filesystem that reads through to disk and keeps
// every write in memory.
func DryRunTarget() afero.Fs {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
}
