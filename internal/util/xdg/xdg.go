// Package xdg resolves madder's directories per the XDG base directory
// specification.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath is the environment variable that overrides the
// configuration directory wholesale.
const EnvConfigPath = "MADDER_CONFIG_PATH"

const appDir = "madder"

// ConfigDir returns madder's configuration directory: MADDER_CONFIG_PATH
// when set, otherwise $XDG_CONFIG_HOME/madder (~/.config/madder).
func ConfigDir() (string, error) {
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return custom, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// ConfigFile returns the path of the main configuration file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// TemplateDir returns the base directory for per-target template
// overrides.
func TemplateDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates"), nil
}

// StateDir returns madder's state directory, $XDG_STATE_HOME/madder
// (~/.local/state/madder). The state base has no stdlib resolver.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, appDir), nil
}

// CacheDir returns madder's cache directory, $XDG_CACHE_HOME/madder
// (~/.cache/madder).
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}
