package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for bistro.
type Paths struct {
	// ConfigFile is the path to the config file (~/.bistro/config.yaml).
	ConfigFile string

	// HomeDir is the bistro home directory (~/.bistro).
	HomeDir string
}

// DefaultPaths returns the default paths for bistro.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	bistroHome := filepath.Join(homeDir, ".bistro")

	return &Paths{
		ConfigFile: filepath.Join(bistroHome, "config.yaml"),
		HomeDir:    bistroHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If BISTRO_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("BISTRO_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
