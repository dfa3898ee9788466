package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/cmdutil"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/structure"
	"github.com/bistrokit/cli/internal/templates"
	"github.com/bistrokit/cli/internal/wizard"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		answerFlags cmdutil.AnswerFlags
		outputFlag  string
		diffFlag    bool
	)

	c := &cobra.Command{
		Use:   "plan [project-name]",
		Short: "Show the resolved project configuration",
		Long: `Resolve an answer set and print the project configuration without
writing anything.

With --diff, every package descriptor is shown as it would be rewritten from
its template.

Examples:
  bistro plan -a answers.yaml
  bistro plan -a answers.yaml -o json
  bistro plan -a answers.yaml --diff`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c, args, gc, &answerFlags, outputFlag, diffFlag)
		},
	}

	answerFlags.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
	c.Flags().BoolVar(&diffFlag, "diff", false, "Show the package descriptor rewrites")

	return c
}

func runPlan(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, af *cmdutil.AnswerFlags, outputFlag string, diff bool) error {
	format := output.ParseOutputFormat(outputFlag)
	if !format.IsValid() {
		return cmdutil.PrintError("plan failed", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", outputFlag), "", "output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", ")))
	}

	answers, err := cmdutil.LoadAnswers(c.Context(), cmdutil.AnswerSource{
		File:        af.Answers,
		ProjectName: cmdutil.ProjectNameArg(args),
		Interactive: wizard.CanPrompt(),
	})
	if err != nil {
		return cmdutil.PrintError("reading answers", err)
	}

	cfg, err := cmdutil.Resolve(answers, gc.Resolved.RootPath.Value)
	if err != nil {
		return cmdutil.PrintError("plan failed", err)
	}

	out := c.OutOrStdout()
	if err := writeConfiguration(out, cfg, format); err != nil {
		return err
	}

	if !diff {
		return nil
	}

	src, root := templates.Source(gc.Resolved.TemplateRoot.Value)
	m := structure.New(structure.Options{Source: src, TemplateRoot: root})
	descs, err := m.Descriptors(cfg)
	if err != nil {
		return cmdutil.PrintError("plan failed", err)
	}

	color := output.IsTTY()
	diffs := make([]output.FileDiff, 0, len(descs))
	for _, d := range descs {
		rendered, err := output.RenderYAMLDiff(d.Before, d.After, color)
		if err != nil {
			return cmdutil.PrintError("plan failed", fmt.Errorf("diffing %s: %w", d.Target, err))
		}
		diffs = append(diffs, output.FileDiff{Path: d.Target, Diff: rendered})
	}

	styles := output.NoColorStyles()
	if color {
		styles = output.GetStyles()
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.RenderFileDiffs(diffs, styles))
	return nil
}

func writeConfiguration(w io.Writer, cfg *settings.ProjectConfiguration, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(cfg.Settings())
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		writeSummary(w, cfg)
	}
	return nil
}

func writeSummary(w io.Writer, cfg *settings.ProjectConfiguration) {
	layout := "standalone"
	if cfg.IsMonorepoProject {
		layout = "monorepo"
	}

	fmt.Fprintf(w, "Project:    %s (%s)\n", cfg.ProjectName, layout)
	fmt.Fprintf(w, "Path:       %s\n", cfg.ProjectPath)
	fmt.Fprintf(w, "Framework:  %s, %s\n", cfg.FrontendFramework, cfg.FrontendRenderingType)
	fmt.Fprintln(w, "Modules:")
	fmt.Fprintf(w, "  %-12s %-22s %s\n", cfg.FrontendProjectName, cfg.FrontendPackageName(), cfg.FrontendProjectPath)
	for _, kind := range cfg.EnabledModules() {
		mod := cfg.SharedModule(kind)
		fmt.Fprintf(w, "  %-12s %-22s %s\n", mod.ProjectName, settings.PackageName(cfg.ProjectAcronym, mod.ProjectName), mod.ProjectPath)
	}

	tooling := []struct{ label, value string }{
		{"Styling", cfg.FrontendStylingFramework},
		{"State", cfg.FrontendStateManagementFramework},
		{"Schema", cfg.FrontendSchemaValidationFramework},
		{"E2E", cfg.FrontendE2EFramework},
	}
	for _, t := range tooling {
		if t.value == "" {
			continue
		}
		fmt.Fprintf(w, "%-11s %s\n", t.label+":", t.value)
	}
}
