package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bistrokit/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Config keys, as written in the config file.
const (
	KeyConfig           = "config"
	KeyRootPath         = "rootPath"
	KeyTemplateRoot     = "templateRoot"
	KeyPackageManager   = "packageManager"
	KeyStorybookBuilder = "storybookBuilder"
	KeyCommandTimeout   = "commandTimeout"
	KeyLogTimestamps    = "log.timestamps"
)

// EnvVars maps config keys to their environment variables.
var EnvVars = map[string]string{
	KeyConfig:           "BISTRO_CONFIG",
	KeyRootPath:         "BISTRO_ROOT_PATH",
	KeyTemplateRoot:     "BISTRO_TEMPLATE_ROOT",
	KeyPackageManager:   "BISTRO_PACKAGE_MANAGER",
	KeyStorybookBuilder: "BISTRO_STORYBOOK_BUILDER",
	KeyCommandTimeout:   "BISTRO_COMMAND_TIMEOUT",
	KeyLogTimestamps:    "BISTRO_LOG_TIMESTAMPS",
}

// ResolvedValue is a configuration value with its source.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidate values for one key.
type ResolveOptions struct {
	Key     string
	Flag    string
	Config  string
	Default string
}

// Resolve picks a value using precedence flag > env > config > default.
// Empty candidates are ignored.
func Resolve(opts ResolveOptions) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.Flag},
		{SourceEnv, os.Getenv(EnvVars[opts.Key])},
		{SourceConfig, opts.Config},
		{SourceDefault, opts.Default},
	}

	result := ResolvedValue{Key: opts.Key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// Flags holds the raw command-line values that override configuration.
type Flags struct {
	Config           string
	RootPath         string
	TemplateRoot     string
	PackageManager   string
	StorybookBuilder string
	CommandTimeout   string
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	ConfigPath       ResolvedValue
	RootPath         ResolvedValue
	TemplateRoot     ResolvedValue
	PackageManager   ResolvedValue
	StorybookBuilder ResolvedValue
	CommandTimeout   ResolvedValue

	// Timeout is CommandTimeout parsed.
	Timeout time.Duration
}

// Values returns the resolved values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{
		r.ConfigPath,
		r.RootPath,
		r.TemplateRoot,
		r.PackageManager,
		r.StorybookBuilder,
		r.CommandTimeout,
	}
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BISTRO_CONFIG env, (3) ~/.bistro/config.yaml default
func ResolveConfigPath(flag string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return Resolve(ResolveOptions{Key: KeyConfig, Flag: flag, Default: paths.ConfigFile}), nil
}

// ResolveAll resolves every value from flags, environment, the loaded config
// (nil when no file was read) and defaults, then validates the result.
func ResolveAll(flags Flags, cfg *Config) (*ResolvedConfig, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	configPath, err := ResolveConfigPath(flags.Config)
	if err != nil {
		return nil, err
	}

	var timeout string
	if cfg.CommandTimeout != 0 {
		timeout = cfg.CommandTimeout.String()
	}

	r := &ResolvedConfig{
		ConfigPath:       configPath,
		RootPath:         Resolve(ResolveOptions{Key: KeyRootPath, Flag: flags.RootPath, Config: cfg.RootPath, Default: DefaultRootPath}),
		TemplateRoot:     Resolve(ResolveOptions{Key: KeyTemplateRoot, Flag: flags.TemplateRoot, Config: cfg.TemplateRoot}),
		PackageManager:   Resolve(ResolveOptions{Key: KeyPackageManager, Flag: flags.PackageManager, Config: cfg.PackageManager, Default: DefaultPackageManager}),
		StorybookBuilder: Resolve(ResolveOptions{Key: KeyStorybookBuilder, Flag: flags.StorybookBuilder, Config: cfg.StorybookBuilder}),
		CommandTimeout:   Resolve(ResolveOptions{Key: KeyCommandTimeout, Flag: flags.CommandTimeout, Config: timeout}),
	}

	if r.CommandTimeout.Value != "" {
		d, err := time.ParseDuration(r.CommandTimeout.Value)
		if err != nil {
			return nil, ValidationErrors{{Field: KeyCommandTimeout, Message: fmt.Sprintf("invalid duration %q", r.CommandTimeout.Value)}}
		}
		r.Timeout = d
	}

	if err := ValidateResolved(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ResolveTimestamps resolves log timestamps: the flag when explicitly set,
// then BISTRO_LOG_TIMESTAMPS, then the config file. Nil means the logger
// default.
func ResolveTimestamps(flagSet, flagValue bool, cfg *Config) *bool {
	if flagSet {
		return output.BoolPtr(flagValue)
	}
	if env := os.Getenv(EnvVars[KeyLogTimestamps]); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			return output.BoolPtr(b)
		}
	}
	if cfg != nil {
		return cfg.Log.Timestamps
	}
	return nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
