// Package config provides configuration loading and management.
package config

import "time"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the bistro CLI configuration.
// Loaded from ~/.bistro/config.yaml.
type Config struct {
	// RootPath is the directory projects are created under.
	// Env: BISTRO_ROOT_PATH, Default: "."
	RootPath string `json:"rootPath,omitempty" yaml:"rootPath,omitempty"`

	// TemplateRoot is a template directory on disk. Empty uses the templates
	// embedded in the binary.
	// Env: BISTRO_TEMPLATE_ROOT
	TemplateRoot string `json:"templateRoot,omitempty" yaml:"templateRoot,omitempty"`

	// PackageManager runs installs and dependency additions.
	// Env: BISTRO_PACKAGE_MANAGER, Default: "pnpm"
	PackageManager string `json:"packageManager,omitempty" yaml:"packageManager,omitempty"`

	// StorybookBuilder overrides the per-framework Storybook builder.
	// Env: BISTRO_STORYBOOK_BUILDER
	StorybookBuilder string `json:"storybookBuilder,omitempty" yaml:"storybookBuilder,omitempty"`

	// CommandTimeout bounds each package-manager command. Zero means no limit.
	// Env: BISTRO_COMMAND_TIMEOUT
	CommandTimeout time.Duration `json:"commandTimeout,omitempty" yaml:"commandTimeout,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// Defaults.
const (
	DefaultRootPath       = "."
	DefaultPackageManager = "pnpm"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `bistro config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		RootPath:       DefaultRootPath,
		PackageManager: DefaultPackageManager,
	}
}
