package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
rootPath: /work/projects
templateRoot: /work/templates
packageManager: npm
storybookBuilder: webpack5
commandTimeout: 90s
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/work/projects", cfg.RootPath)
		assert.Equal(t, "/work/templates", cfg.TemplateRoot)
		assert.Equal(t, "npm", cfg.PackageManager)
		assert.Equal(t, "webpack5", cfg.StorybookBuilder)
		assert.Equal(t, 90*time.Second, cfg.CommandTimeout)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.RootPath)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("rootPath: [oops\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})

	t.Run("uses BISTRO_CONFIG when no path is given", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("packageManager: yarn\n"), 0o644))
		t.Setenv("BISTRO_CONFIG", configFile)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "yarn", cfg.PackageManager)
	})
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))

	ok, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfigFileExists(filepath.Join(dir, "other.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"~", home},
		{"~/.bistro/config.yaml", filepath.Join(home, ".bistro/config.yaml")},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, ".bistro", filepath.Base(paths.HomeDir))
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}
