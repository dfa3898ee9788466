// Package apply runs the framework-specific steps that follow structure
// creation: UI kit setup, Storybook initialization and dependency install.
package apply

import (
	"context"

	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/shell"
	"github.com/bistrokit/cli/internal/structure"
)

// Env carries the collaborators an Applier needs. Appliers make no layout
// decisions; everything they touch comes from the ProjectConfiguration.
type Env struct {
	// Runner executes package-manager commands.
	Runner shell.Runner

	// Log writes one progress line.
	Log output.LineLogger

	// Format styles progress lines.
	Format output.Formatter

	// Files reads templates and writes into the project.
	Files structure.FileOps

	// Catalog locates UI kit templates.
	Catalog *settings.Catalog

	// PackageManager is pnpm, npm or yarn. Defaults to pnpm.
	PackageManager string

	// StorybookBuilder overrides the framework's default builder.
	StorybookBuilder string

	// SkipInstall skips every package-manager command.
	SkipInstall bool
}

func (e Env) pm() string {
	if e.PackageManager == "" {
		return shell.PNPM
	}
	return e.PackageManager
}

func (e Env) log(msg string) {
	if e.Log == nil {
		output.InfoLogger()(msg)
		return
	}
	e.Log(msg)
}

func (e Env) formatter() output.Formatter {
	if e.Format == nil {
		return output.NewFormatter(false)
	}
	return e.Format
}

// run logs and executes cmd. Any failure is fatal for the caller.
func (e Env) run(ctx context.Context, cmd shell.Command) error {
	f := e.formatter()
	e.log(f.Command(cmd.String()))
	if e.SkipInstall {
		e.log(f.Info("skipped"))
		return nil
	}
	if err := e.Runner.Run(ctx, cmd); err != nil {
		e.log(f.Failure(err.Error()))
		return err
	}
	return nil
}

// Applier performs the post-structure steps for one framework.
type Applier interface {
	// Framework returns the framework the applier handles.
	Framework() settings.Framework

	// Apply runs the steps in order and stops at the first failure.
	Apply(ctx context.Context, cfg *settings.ProjectConfiguration, env Env) error
}

// For returns the applier for a framework.
func For(framework settings.Framework) (Applier, error) {
	switch framework {
	case settings.FrameworkReact:
		return React{}, nil
	case settings.FrameworkAngular:
		return Angular{}, nil
	default:
		return nil, &settings.CatalogLookupError{Table: "framework applier", Key: string(framework)}
	}
}

// InstallTargets returns the directories to run an install in. A pnpm
// monorepo installs once at the workspace root; otherwise every module is
// installed on its own.
func InstallTargets(cfg *settings.ProjectConfiguration, packageManager string) []string {
	if cfg.IsMonorepoProject && (packageManager == "" || packageManager == shell.PNPM) {
		return []string{cfg.ProjectPath}
	}

	targets := []string{cfg.FrontendProjectPath}
	for _, kind := range cfg.EnabledModules() {
		targets = append(targets, cfg.SharedModule(kind).ProjectPath)
	}
	return targets
}

func install(ctx context.Context, cfg *settings.ProjectConfiguration, env Env) error {
	f := env.formatter()
	env.log(f.Info("Installing dependencies..."))
	for _, dir := range InstallTargets(cfg, env.pm()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := env.run(ctx, shell.Install(env.pm(), dir)); err != nil {
			return err
		}
	}
	env.log(f.Success("Dependencies installed"))
	return nil
}
