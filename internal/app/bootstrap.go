package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"colorpick/internal/config"
	"colorpick/internal/sampler"
	"colorpick/internal/session"
	"colorpick/internal/store"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned by Copy when the system has no
// clipboard utility.
var ErrClipboardUnavailable = errors.New("clipboard is not available")

// For mocking in tests
var writeClipboard = clipboard.WriteAll
var clipboardUnsupported = func() bool { return clipboard.Unsupported }
var logOutput io.Writer = os.Stderr

// Application is the main application structure that bootstraps and runs colorpick
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(logLevel(cfg.Debug, ""), logOutput)

	var settings config.Config
	var err error
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.Settings = settings

	// the configured level only applies once the config is known
	logging.InitForCLI(logLevel(cfg.Debug, settings.LogLevel), logOutput)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	initialFormat := store.DefaultFormat
	if f, ok := colormath.ParseFormat(settings.DefaultFormat); ok {
		initialFormat = string(f)
	}
	if _, err := services.Store.InitializeWithFormat(initialFormat); err != nil {
		logging.Warn("Bootstrap", "Could not initialize state file: %v", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func logLevel(debug bool, configured string) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	if configured == "" {
		return logging.LevelInfo
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Services returns the shared collaborators.
func (a *Application) Services() *Services {
	return a.services
}

// LoadState reads the persisted session. Until a format has been saved the
// configured default format is used.
func (a *Application) LoadState() (*session.State, error) {
	snap, err := a.services.Store.Load()
	if err != nil {
		return nil, err
	}
	state := session.FromSnapshot(snap)
	if snap.LastFormat == "" {
		if f, ok := colormath.ParseFormat(a.config.Settings.DefaultFormat); ok {
			state.SetFormat(f)
		}
	}
	return state, nil
}

// SaveState persists state.
func (a *Application) SaveState(state *session.State) error {
	if err := a.services.Store.Save(state.Snapshot()); err != nil {
		logging.Error("Store", err, "Failed to save state")
		return err
	}
	return nil
}

// Copy writes text to the system clipboard.
func (a *Application) Copy(text string) error {
	if clipboardUnsupported() {
		return ErrClipboardUnavailable
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// NewSampler builds a sampler for spec using the configured sample radius.
func (a *Application) NewSampler(spec string) (sampler.Sampler, error) {
	return sampler.FromSpec(spec, a.config.Settings.SampleRadius)
}
