// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/config"
	"github.com/bistrokit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool
)

// NewRootCmd creates the root command for the bistro CLI.
func NewRootCmd() *cobra.Command {
	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "bistro",
		Short: "Frontend project scaffolding",
		Long: `bistro creates frontend projects from templates.

It interviews you about the project (or reads an answers file), derives the
layout of a standalone app or a pnpm monorepo with shared modules, copies the
matching React or Angular templates and runs the package manager steps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BISTRO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd(gc))
	rootCmd.AddCommand(NewPlanCmd(gc))
	rootCmd.AddCommand(NewCatalogCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads configuration, resolves every value and sets up
// logging. Command flags that override configuration are read from the
// executing command when it defines them.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	resolved, err := config.ResolveAll(config.Flags{
		Config:           configFlag,
		RootPath:         stringFlag(cmd, "root"),
		TemplateRoot:     stringFlag(cmd, "templates"),
		PackageManager:   stringFlag(cmd, "package-manager"),
		StorybookBuilder: stringFlag(cmd, "storybook-builder"),
		CommandTimeout:   stringFlag(cmd, "command-timeout"),
	}, cfg)
	if err != nil {
		return err
	}

	gc.Config = cfg
	gc.Resolved = resolved
	gc.Verbose = verboseFlag

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: config.ResolveTimestamps(cmd.Flags().Changed("timestamps"), timestampsFlag, cfg),
	})

	if verboseFlag {
		config.LogResolvedValues(resolved.Values())
	}

	return nil
}

func stringFlag(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}
