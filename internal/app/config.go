package app

import (
	"colorpick/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath replaces the layered config lookup with a single file.
	ConfigPath string

	// StatePath overrides the state file from config.
	StatePath string

	Version string

	// Settings is filled in by NewApplication.
	Settings config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath, statePath, version string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		StatePath:  statePath,
		Version:    version,
	}
}
