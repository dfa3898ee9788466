package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/cmdutil"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/templates"
)

// catalogRow is one line of the catalog listing.
type catalogRow struct {
	Framework   string `json:"framework,omitempty" yaml:"framework,omitempty"`
	Kind        string `json:"kind" yaml:"kind"`
	Variant     string `json:"variant" yaml:"variant"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Present     *bool  `json:"present,omitempty" yaml:"present,omitempty"`
	Files       int    `json:"files,omitempty" yaml:"files,omitempty"`
}

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		outputFlag string
		check      bool
	)

	c := &cobra.Command{
		Use:   "catalog",
		Short: "List the project templates",
		Long: `List every template directory bistro can copy, per framework, and the UI
kits with their theme files.

With --check, each directory is looked up in the template source and the
command fails when one is missing. Use it to validate a custom --templates
directory.

Examples:
  bistro catalog
  bistro catalog --templates ./my-templates --check
  bistro catalog -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCatalog(c, gc, outputFlag, check)
		},
	}

	c.Flags().String("templates", "",
		"Template directory on disk (default: embedded templates)")
	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
	c.Flags().BoolVar(&check, "check", false, "Verify that every template directory exists")

	return c
}

func runCatalog(c *cobra.Command, gc *cmdtypes.GlobalConfig, outputFlag string, check bool) error {
	format := output.ParseOutputFormat(outputFlag)
	if !format.IsValid() {
		return cmdutil.PrintError("catalog failed", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", outputFlag), "", "output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", ")))
	}

	src, root := templates.Source(gc.Resolved.TemplateRoot.Value)
	rows := catalogRows(settings.NewCatalog(root))

	var missing []string
	if check {
		for i := range rows {
			ok, err := afero.DirExists(src, rows[i].Path)
			if err != nil {
				return cmdutil.PrintError("catalog failed", fmt.Errorf("checking %s: %w", rows[i].Path, err))
			}
			rows[i].Present = &ok
			if !ok {
				missing = append(missing, rows[i].Path)
				continue
			}
			files, err := templates.ListFiles(src, rows[i].Path)
			if err != nil {
				return cmdutil.PrintError("catalog failed", err)
			}
			rows[i].Files = len(files)
		}
	}

	if err := writeCatalog(c.OutOrStdout(), rows, format); err != nil {
		return err
	}

	if len(missing) > 0 {
		return cmdutil.PrintError("catalog check failed", oerrors.NewNotFoundError(
			fmt.Sprintf("%d template directories missing", len(missing)),
			strings.Join(missing, ", "),
			"Point --templates at a directory laid out like the embedded templates."))
	}
	return nil
}

func catalogRows(cat *settings.Catalog) []catalogRow {
	var rows []catalogRow
	for _, e := range cat.Entries() {
		rows = append(rows, catalogRow{
			Framework:   string(e.Framework),
			Kind:        e.Kind,
			Variant:     e.Variant,
			Path:        e.Path,
			Description: templates.Describe(e.Kind, e.Variant),
		})
	}

	for _, name := range settings.UILibraries {
		for _, rt := range []settings.RenderingType{settings.RenderingCSR, settings.RenderingSSR} {
			lib, err := cat.UILibrary(name, rt)
			if err != nil {
				continue
			}
			rows = append(rows, catalogRow{
				Kind:        "ui",
				Variant:     name + "/" + string(rt),
				Path:        lib.TemplateFilesPath,
				Description: templates.Describe("ui", name),
			})
		}
	}
	return rows
}

func writeCatalog(w io.Writer, rows []catalogRow, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case output.FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	}

	styles := output.NoColorStyles()
	if output.IsTTY() {
		styles = output.GetStyles()
	}

	group := ""
	for _, r := range rows {
		heading := r.Framework
		if heading == "" {
			heading = "ui kits"
		}
		if heading != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, styles.Heading.Render(heading))
			group = heading
		}

		status := ""
		if r.Present != nil {
			if *r.Present {
				status = styles.Success.Render(fmt.Sprintf("ok (%d files)", r.Files))
			} else {
				status = styles.Error.Render("missing")
			}
		}
		fmt.Fprintf(w, "  %-9s %-16s %-48s %s\n", r.Kind, r.Variant, r.Path, status)
	}
	return nil
}
