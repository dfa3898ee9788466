package cmdutil

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"github.com/bistrokit/cli/internal/apply"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/shell"
	"github.com/bistrokit/cli/internal/structure"
	"github.com/bistrokit/cli/internal/templates"
)

// ScaffoldOptions configures one project creation.
type ScaffoldOptions struct {
	Answers settings.Answers

	// RootPath is the directory the project is created under.
	RootPath string

	// TemplateRoot is a template directory on disk. Empty uses the embedded
	// templates.
	TemplateRoot string

	// Target receives the project. Defaults to the OS filesystem.
	Target afero.Fs

	// Runner executes package-manager commands. Defaults to an ExecRunner
	// bounded by CommandTimeout.
	Runner         shell.Runner
	CommandTimeout time.Duration

	PackageManager   string
	StorybookBuilder string
	Force            bool
	SkipInstall      bool

	// Log receives progress lines from the framework steps.
	Log    output.LineLogger
	Format output.Formatter
}

// ScaffoldResult describes a created project.
type ScaffoldResult struct {
	Config    *settings.ProjectConfiguration
	Structure *structure.Result
}

// Resolve turns an answer set into a project configuration rooted at
// rootPath.
func Resolve(answers settings.Answers, rootPath string) (*settings.ProjectConfiguration, error) {
	return settings.NewResolver(settings.ResolverOptions{RootPath: rootPath}).Resolve(answers)
}

// Scaffold resolves the answers, writes the project structure and runs the
// framework steps.
func Scaffold(ctx context.Context, opts ScaffoldOptions) (*ScaffoldResult, error) {
	cfg, err := Resolve(opts.Answers, opts.RootPath)
	if err != nil {
		return nil, err
	}

	applier, err := apply.For(cfg.FrontendFramework)
	if err != nil {
		return nil, err
	}

	src, root := templates.Source(opts.TemplateRoot)
	m := structure.New(structure.Options{
		Source:       src,
		TemplateRoot: root,
		Target:       opts.Target,
		Force:        opts.Force,
	})

	output.Debug("writing project structure",
		"project", cfg.ProjectName,
		"path", cfg.ProjectPath,
		"monorepo", cfg.IsMonorepoProject,
		"templates", root,
	)

	var res *structure.Result
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var err error
		res, err = m.Materialize(ctx, cfg)
		return err
	}, output.WithTitle("Creating project structure..."))
	if err != nil {
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = shell.NewExecRunner(opts.CommandTimeout)
	}

	env := apply.Env{
		Runner:           runner,
		Log:              opts.Log,
		Format:           opts.Format,
		Files:            m.Ops(),
		Catalog:          m.Catalog(),
		PackageManager:   opts.PackageManager,
		StorybookBuilder: opts.StorybookBuilder,
		SkipInstall:      opts.SkipInstall,
	}
	if err := applier.Apply(ctx, cfg, env); err != nil {
		return &ScaffoldResult{Config: cfg, Structure: res}, err
	}

	return &ScaffoldResult{Config: cfg, Structure: res}, nil
}
