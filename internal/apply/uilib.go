package apply

import (
	"context"

	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/shell"
)

// configureUILib installs the UI kit chosen as styling framework: theme
// files are copied into the frontend (and the shared UI module when
// present), then each dependency is added to the same modules. Styling
// choices that are not UI kits are left alone.
func configureUILib(ctx context.Context, cfg *settings.ProjectConfiguration, env Env) error {
	if !settings.IsUILibrary(cfg.FrontendStylingFramework) {
		return nil
	}

	ui, err := env.Catalog.UILibrary(cfg.FrontendStylingFramework, cfg.FrontendRenderingType)
	if err != nil {
		return err
	}

	f := env.formatter()
	env.log(f.Info("Initializing UI library " + ui.Name + "..."))

	targets := []struct {
		module string
		theme  string
	}{{cfg.FrontendProjectPath, ui.FrontendThemeDestinationPath}}
	if m := cfg.SharedModule(settings.LibUI); m != nil {
		targets = append(targets, struct {
			module string
			theme  string
		}{m.ProjectPath, ui.SharedUIThemeDestinationPath})
	}

	for _, t := range targets {
		dst := settings.JoinPath(t.module, t.theme)
		if _, err := env.Files.Copy(dst, ui.TemplateFilesPath); err != nil {
			return err
		}
		if err := env.Files.DeleteIfExists(settings.JoinPath(dst, ".gitkeep")); err != nil {
			return err
		}
	}

	for _, dep := range ui.Dependencies {
		for _, t := range targets {
			if err := env.run(ctx, shell.AddDependency(env.pm(), t.module, dep)); err != nil {
				env.log(f.Failure("An error occurred while initializing UI library"))
				return err
			}
		}
	}

	env.log(f.Success("End of UI library initialization"))
	return nil
}
