// Package main is the entry point for the bistro CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bistrokit/cli/internal/cmd"
	oerrors "github.com/bistrokit/cli/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rootCmd := cmd.NewRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Check if the error contains an ExitError with a specific code
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		// Only print if the command layer hasn't already printed it
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(oerrors.ExitCodeFromError(err))
}
