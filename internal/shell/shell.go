// Package shell runs package-manager commands for generated projects.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	oerrors "github.com/bistrokit/cli/internal/errors"
)

// Command is a single external invocation.
type Command struct {
	// Name is the executable, looked up in PATH.
	Name string

	// Args are passed verbatim, without shell interpretation.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands. Implementations must return a *CommandError for
// a non-zero exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// CommandError reports a command that exited with a non-zero status or could
// not be started.
type CommandError struct {
	Command  Command
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Command)
	if e.ExitCode > 0 {
		fmt.Fprintf(&b, " failed with exit code %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, ": %s", s)
	}
	return b.String()
}

// Unwrap returns both the cause and errors.ErrCommand so callers can match
// either.
func (e *CommandError) Unwrap() []error {
	if e.Err != nil {
		return []error{oerrors.ErrCommand, e.Err}
	}
	return []error{oerrors.ErrCommand}
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout receives command output. If nil, os.Stdout is used.
	Stdout io.Writer

	// Stderr receives command errors in addition to the captured tail
	// reported in CommandError. If nil, os.Stderr is used.
	Stderr io.Writer

	// Timeout bounds each command. Zero means no bound.
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner writing to the process streams.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Timeout: timeout,
	}
}

// Run executes cmd and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = r.stdout()

	var stderr bytes.Buffer
	c.Stderr = io.MultiWriter(r.stderr(), &stderr)

	if err := c.Run(); err != nil {
		cerr := &CommandError{Command: cmd, Stderr: tail(stderr.String(), 20)}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			cerr.Err = ctxErr
		} else if cerr.ExitCode <= 0 {
			cerr.Err = err
		}
		return cerr
	}

	return nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
