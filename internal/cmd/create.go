package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/cmdutil"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/shell"
	"github.com/bistrokit/cli/internal/wizard"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		answerFlags cmdutil.AnswerFlags
		applyFlags  cmdutil.ApplyFlags
	)

	c := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new frontend project",
		Long: `Create a new frontend project.

Without --answers, bistro asks about the project interactively. The project
is created under the root path (default: current directory) as a standalone
app, or as a pnpm monorepo with optional shared utils, UI and Storybook
modules. Package manager steps run after the files are written.

Examples:
  # Interactive interview
  bistro create

  # Non-interactive, from an answers file
  bistro create --answers answers.yaml

  # Override the project name and preview without writing
  bistro create my-app -a answers.yaml --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, gc, &answerFlags, &applyFlags)
		},
	}

	answerFlags.AddTo(c)
	applyFlags.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, af *cmdutil.AnswerFlags, pf *cmdutil.ApplyFlags) error {
	ctx := c.Context()
	out := c.OutOrStdout()

	answers, err := cmdutil.LoadAnswers(ctx, cmdutil.AnswerSource{
		File:        af.Answers,
		ProjectName: cmdutil.ProjectNameArg(args),
		Interactive: wizard.CanPrompt(),
	})
	if errors.Is(err, wizard.ErrCancelled) {
		fmt.Fprintln(out, "Cancelled.")
		exitErr := oerrors.NewExitError(err, oerrors.ExitGeneralError)
		exitErr.Printed = true
		return exitErr
	}
	if err != nil {
		return cmdutil.PrintError("reading answers", err)
	}

	opts := cmdutil.ScaffoldOptions{
		Answers:          answers,
		RootPath:         gc.Resolved.RootPath.Value,
		TemplateRoot:     gc.Resolved.TemplateRoot.Value,
		CommandTimeout:   gc.Resolved.Timeout,
		PackageManager:   gc.Resolved.PackageManager.Value,
		StorybookBuilder: gc.Resolved.StorybookBuilder.Value,
		Force:            pf.Force,
		SkipInstall:      pf.SkipInstall,
		Log:              output.WriterLogger(out),
		Format:           output.NewFormatter(output.IsTTY()),
	}

	var recorder *shell.RecordingRunner
	if pf.DryRun {
		recorder = &shell.RecordingRunner{}
		opts.Target = cmdutil.DryRunTarget()
		opts.Runner = recorder
	}

	res, err := cmdutil.Scaffold(ctx, opts)
	if err != nil {
		return cmdutil.PrintError("create failed", err)
	}

	cfg := res.Config
	if pf.DryRun {
		fmt.Fprintf(out, "\nDry run: project %q would be created in %s\n\n", cfg.ProjectName, cfg.ProjectPath)
	} else {
		fmt.Fprintf(out, "\n%s\n\n", output.FormatCheckmark(fmt.Sprintf("Created project %q in %s", cfg.ProjectName, cfg.ProjectPath)))
	}
	fmt.Fprint(out, output.RenderFileTree(cfg.ProjectName, res.Structure.Modules))
	fmt.Fprintln(out)

	status := output.StatusCreated
	if pf.DryRun {
		status = output.StatusSkipped
	}
	for _, name := range moduleNames(res.Structure.Modules) {
		fmt.Fprintln(out, output.FormatStep("module", name, status))
	}

	if recorder != nil {
		printCommands(out, recorder.Lines())
	}
	return nil
}

func printCommands(out io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(out, "\nCommands that would run:")
	for _, l := range lines {
		fmt.Fprintf(out, "  $ %s\n", l)
	}
}

// moduleNames returns the distinct module names of a file-to-module map.
func moduleNames(modules map[string]string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range modules {
		if !seen[m] {
			seen[m] = true
			names = append(names, m)
		}
	}
	sort.Strings(names)
	return names
}
