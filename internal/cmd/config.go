package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/cmdutil"
	"github.com/bistrokit/cli/internal/config"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
)

const configHeader = `# bistro configuration.
#
# Every value can be overridden by a BISTRO_* environment variable or a
# command flag. Run 'bistro config show' to see where each value comes from.
`

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the bistro CLI.`,
	}

	c.AddCommand(newConfigInitCmd(gc))
	c.AddCommand(newConfigShowCmd(gc))

	return c
}

func newConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default bistro configuration to ~/.bistro/config.yaml, or to the
path given by --config or BISTRO_CONFIG.

Examples:
  bistro config init
  bistro config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath())
	if err != nil || path == "" {
		return cmdutil.PrintError("config init failed",
			oerrors.Wrap(oerrors.ErrNotFound, "could not determine the config file path"))
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.PrintError("config init failed", oerrors.NewPermissionError(err.Error(), path, ""))
	}
	if exists && !force {
		return cmdutil.PrintError("config init failed", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.PrintError("config init failed",
			oerrors.NewPermissionError("could not create the config directory", filepath.Dir(path), ""))
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return cmdutil.PrintError("config init failed",
			oerrors.NewPermissionError("could not write the config file", path, ""))
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration written to "+path))
	fmt.Fprintln(out, "Inspect with: bistro config show")
	return nil
}

func newConfigShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration values and their sources",
		Long: `Show every configuration value after flag, environment, config file and
default precedence, along with the values it shadows.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			styles := output.NoColorStyles()
			if output.IsTTY() {
				styles = output.GetStyles()
			}

			for _, v := range gc.Resolved.Values() {
				value := v.Value
				if value == "" {
					value = "(unset)"
				}
				fmt.Fprintf(out, "%-18s %-40s %s\n", v.Key, value, styles.Muted.Render(string(v.Source)))

				sources := make([]string, 0, len(v.Shadowed))
				for s := range v.Shadowed {
					sources = append(sources, string(s))
				}
				sort.Strings(sources)
				for _, s := range sources {
					fmt.Fprintf(out, "  %s %s\n", styles.Muted.Render("shadows "+s+":"), v.Shadowed[config.ConfigSource(s)])
				}
			}
			return nil
		},
	}
}
