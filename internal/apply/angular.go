package apply

import (
	"context"

	"github.com/bistrokit/cli/internal/settings"
)

// Angular applies the Angular steps: Storybook (webpack5 builder), install.
// The UI kits in the catalog are React libraries and are not applied.
type Angular struct{}

// Framework implements Applier.
func (Angular) Framework() settings.Framework { return settings.FrameworkAngular }

// Apply implements Applier.
func (Angular) Apply(ctx context.Context, cfg *settings.ProjectConfiguration, env Env) error {
	if settings.IsUILibrary(cfg.FrontendStylingFramework) {
		env.log(env.formatter().Info(cfg.FrontendStylingFramework + " targets React, skipping UI library setup"))
	}
	if err := configureStorybook(ctx, cfg, env, "webpack5"); err != nil {
		return err
	}
	return install(ctx, cfg, env)
}
