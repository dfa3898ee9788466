package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show bistro CLI version information.

Displays:
  - bistro version, commit, and build date
  - CUE SDK version used to validate answers files`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.Get().String())
	return nil
}
