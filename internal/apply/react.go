package apply

import (
	"context"

	"github.com/bistrokit/cli/internal/settings"
)

// React applies the React steps: UI kit, Storybook (vite builder), install.
type React struct{}

// Framework implements Applier.
func (React) Framework() settings.Framework { return settings.FrameworkReact }

// Apply implements Applier.
func (React) Apply(ctx context.Context, cfg *settings.ProjectConfiguration, env Env) error {
	if err := configureUILib(ctx, cfg, env); err != nil {
		return err
	}
	if err := configureStorybook(ctx, cfg, env, "vite"); err != nil {
		return err
	}
	return install(ctx, cfg, env)
}
