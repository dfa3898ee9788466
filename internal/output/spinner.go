package output

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	timeout time.Duration
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithTimeout bounds the action. Zero means no bound.
func WithTimeout(timeout time.Duration) SpinnerOption {
	return func(c *spinnerConfig) {
		c.timeout = timeout
	}
}

// RunWithSpinner runs action while a spinner is shown. Without a terminal
// the action runs directly. The action receives a context that is cancelled
// on timeout.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	actionCtx := ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		actionCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if !IsTTY() {
		return action(actionCtx)
	}

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action(actionCtx)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(actionCtx).
		Action(func() { <-done }).
		Run()

	<-done
	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil && actionCtx.Err() == nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return actionCtx.Err()
}
