package app

import (
	"fmt"

	"colorpick/internal/colornames"
	"colorpick/internal/config"
	"colorpick/internal/store"
	"colorpick/pkg/logging"
)

// Services holds the collaborators shared by every command.
type Services struct {
	Store *store.FileStore
	Names *colornames.Finder
}

// InitializeServices builds the state store and the name finder from the
// loaded settings. The --state flag wins over the configured path.
func InitializeServices(cfg *Config) (*Services, error) {
	statePath := cfg.StatePath
	if statePath == "" {
		statePath = cfg.Settings.StatePath
	}
	if statePath != "" {
		expanded, err := config.ExpandPath(statePath)
		if err != nil {
			return nil, fmt.Errorf("failed to expand state path %s: %w", statePath, err)
		}
		statePath = expanded
	}

	fileStore, err := store.NewFileStore(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create state store: %w", err)
	}
	logging.Debug("Bootstrap", "Using state file %s", fileStore.Path())

	catalog, err := colornames.ByName(cfg.Settings.Names)
	if err != nil {
		return nil, err
	}
	names := colornames.NewFinder(catalog)
	logging.Debug("Bootstrap", "Loaded %d color names (%s)", names.Len(), cfg.Settings.Names)

	return &Services{
		Store: fileStore,
		Names: names,
	}, nil
}
