package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"colorpick/pkg/logging"

	"github.com/joho/godotenv"
)

// Environment overrides. Values from the process environment win over a
// .env file in the working directory.
const (
	EnvFormat       = "COLORPICK_FORMAT"
	EnvState        = "COLORPICK_STATE"
	EnvNames        = "COLORPICK_NAMES"
	EnvAutoCopy     = "COLORPICK_AUTOCOPY"
	EnvTheme        = "COLORPICK_THEME"
	EnvSampleRadius = "COLORPICK_SAMPLE_RADIUS"
	EnvLogLevel     = "COLORPICK_LOG_LEVEL"
)

var getDotenvPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, ".env"), nil
}

func readDotenv() map[string]string {
	path, err := getDotenvPath()
	if err != nil {
		return nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn("Config", "Ignoring unreadable %s: %v", path, err)
		}
		return nil
	}
	logging.Debug("Config", "Loaded %d values from %s", len(values), path)
	return values
}

func applyEnv(config Config) (Config, error) {
	dotenv := readDotenv()
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvFormat); ok {
		config.DefaultFormat = v
	}
	if v, ok := lookup(EnvState); ok {
		config.StatePath = v
	}
	if v, ok := lookup(EnvNames); ok {
		config.Names = v
	}
	if v, ok := lookup(EnvTheme); ok {
		config.Theme = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := lookup(EnvAutoCopy); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvAutoCopy, v, err)
		}
		config.AutoCopy = &b
	}
	if v, ok := lookup(EnvSampleRadius); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSampleRadius, v, err)
		}
		config.SampleRadius = n
	}
	return config, nil
}
