package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"colorpick/internal/colornames"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/colorpick"
	projectConfigDir = ".colorpick"
	configFileName   = "config.yaml"
)

// LoadConfig layers the defaults, the user file, the project file and the
// environment.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return Config{}, err
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return Config{}, err
	}

	return finish(config)
}

// LoadConfigFromPath uses only the defaults, the given file and the
// environment. The file must exist.
func LoadConfigFromPath(path string) (Config, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return finish(mergeConfigs(GetDefaultConfig(), overlay))
}

func finish(config Config) (Config, error) {
	config, err := applyEnv(config)
	if err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func overlayFile(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug("Config", "Applied config layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base
	if overlay.DefaultFormat != "" {
		merged.DefaultFormat = overlay.DefaultFormat
	}
	if overlay.AutoCopy != nil {
		v := *overlay.AutoCopy
		merged.AutoCopy = &v
	}
	if overlay.StatePath != "" {
		merged.StatePath = overlay.StatePath
	}
	if overlay.Names != "" {
		merged.Names = overlay.Names
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.SampleRadius != 0 {
		merged.SampleRadius = overlay.SampleRadius
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, ok := colormath.ParseFormat(c.DefaultFormat); !ok {
		return fmt.Errorf("invalid defaultFormat %q", c.DefaultFormat)
	}
	if _, err := colornames.ByName(c.Names); err != nil {
		return fmt.Errorf("invalid names: %w", err)
	}
	switch strings.ToLower(c.Theme) {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q, want auto, dark or light", c.Theme)
	}
	if c.SampleRadius < 0 {
		return fmt.Errorf("sampleRadius must not be negative, got %d", c.SampleRadius)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
