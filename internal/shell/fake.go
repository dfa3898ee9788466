package shell

import (
	"context"
	"sync"
)

// RecordingRunner records commands instead of executing them. FailOn makes
// the matching command fail with the given exit code.
type RecordingRunner struct {
	mu       sync.Mutex
	Commands []Command
	FailOn   map[string]int
}

// Run records cmd and returns a *CommandError when cmd matches FailOn.
func (r *RecordingRunner) Run(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return &CommandError{Command: cmd, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = append(r.Commands, cmd)
	if code, ok := r.FailOn[cmd.String()]; ok {
		return &CommandError{Command: cmd, ExitCode: code}
	}
	return nil
}

// Lines returns the recorded command lines.
func (r *RecordingRunner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.String()
	}
	return out
}
