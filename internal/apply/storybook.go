package apply

import (
	"context"

	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/shell"
)

// configureStorybook initializes Storybook inside the shared Storybook
// module. It does nothing when the module is disabled.
func configureStorybook(ctx context.Context, cfg *settings.ProjectConfiguration, env Env, defaultBuilder string) error {
	mod := cfg.SharedModule(settings.LibStorybook)
	if mod == nil {
		return nil
	}

	builder := env.StorybookBuilder
	if builder == "" {
		builder = defaultBuilder
	}

	f := env.formatter()
	env.log(f.Info("Initializing Storybook project..."))
	cmd := shell.StorybookInit(env.pm(), mod.ProjectPath, string(cfg.FrontendFramework), builder)
	if err := env.run(ctx, cmd); err != nil {
		env.log(f.Failure("An error occurred while initializing Storybook project"))
		return err
	}
	env.log(f.Success("End of Storybook project initialization"))
	return nil
}
