// Package cmdutil provides shared command utilities: flag groups, answer
// sourcing, the scaffold pipeline and error printing.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// AnswerFlags holds flags for commands that take an answer set
// (create, plan).
type AnswerFlags struct {
	Answers      string
	RootPath     string
	TemplateRoot string
}

// AddTo registers the answer flags on the given cobra command.
func (f *AnswerFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Answers, "answers", "a", "",
		"YAML or JSON answers file (skips the interview)")
	cmd.Flags().StringVar(&f.RootPath, "root", "",
		"Directory to create the project in (default: from config)")
	cmd.Flags().StringVar(&f.TemplateRoot, "templates", "",
		"Template directory on disk (default: embedded templates)")
}

// ApplyFlags holds flags for commands that write a project (create).
type ApplyFlags struct {
	Force            bool
	SkipInstall      bool
	DryRun           bool
	PackageManager   string
	StorybookBuilder string
	CommandTimeout   string
}

// AddTo registers the apply flags on the given cobra command.
func (f *ApplyFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Force, "force", false,
		"Write into a non-empty project directory")
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Do not run package manager commands")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show what would be created without writing or running anything")
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		"Package manager: pnpm, npm or yarn (default: from config)")
	cmd.Flags().StringVar(&f.StorybookBuilder, "storybook-builder", "",
		"Storybook builder: vite or webpack5 (default: per framework)")
	cmd.Flags().StringVar(&f.CommandTimeout, "command-timeout", "",
		"Time limit for each package manager command, e.g. 5m (default: none)")
}

// ProjectNameArg returns the optional project name argument.
func ProjectNameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
