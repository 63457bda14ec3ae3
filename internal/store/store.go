package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"colorpick/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	stateDir      = ".config/colorpick"
	stateFileName = "state.yaml"

	// DefaultFormat is written on first install.
	DefaultFormat = "hex"
)

// For testing
var osUserHomeDir = os.UserHomeDir

// Palette is the persisted form of a named color set.
type Palette struct {
	ID     string   `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	Colors []string `yaml:"colors" json:"colors"`
}

// Snapshot is the whole persisted document.
type Snapshot struct {
	History       []string  `yaml:"history" json:"history"`
	Palettes      []Palette `yaml:"palettes,omitempty" json:"palettes"`
	ActivePalette string    `yaml:"activePalette,omitempty" json:"activePalette,omitempty"`
	LastFormat    string    `yaml:"lastFormat,omitempty" json:"lastFormat,omitempty"`
}

// DefaultPath returns ~/.config/colorpick/state.yaml.
func DefaultPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, stateDir, stateFileName), nil
}

// FileStore keeps a Snapshot in a single YAML file.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a store backed by path. An empty path selects
// DefaultPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (fs *FileStore) Load() (Snapshot, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var snap Snapshot
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Store", "No state file at %s, starting empty", fs.path)
			return snap, nil
		}
		return snap, fmt.Errorf("failed to read state file %s: %w", fs.path, err)
	}

	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse state file %s: %w", fs.path, err)
	}
	logging.Debug("Store", "Loaded state: %d history entries, %d palettes", len(snap.History), len(snap.Palettes))
	return snap, nil
}

// Save replaces the stored snapshot.
func (fs *FileStore) Save(snap Snapshot) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.write(snap)
}

// Initialize writes the first-install defaults when no state file exists yet.
// It reports whether anything was written.
func (fs *FileStore) Initialize() (bool, error) {
	return fs.InitializeWithFormat(DefaultFormat)
}

// InitializeWithFormat is Initialize with a caller-chosen lastFormat. An
// empty format falls back to DefaultFormat.
func (fs *FileStore) InitializeWithFormat(format string) (bool, error) {
	if format == "" {
		format = DefaultFormat
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := os.Stat(fs.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat state file %s: %w", fs.path, err)
	}

	if err := fs.write(Snapshot{History: []string{}, LastFormat: format}); err != nil {
		return false, err
	}
	logging.Info("Store", "Initialized state file at %s", fs.path)
	return true, nil
}

func (fs *FileStore) write(snap Snapshot) error {
	if snap.History == nil {
		snap.History = []string{}
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Write atomically
	tempFile := fs.path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tempFile, fs.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
