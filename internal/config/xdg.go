// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "termkit"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultEnvPath returns the .env file kept next to the config file.
func DefaultEnvPath() string {
	return filepath.Join(XDGConfigHome(), appDir, ".env")
}
