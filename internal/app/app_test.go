package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colorpick/internal/config"
	"colorpick/internal/sampler"
	"colorpick/internal/store"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvFormat, config.EnvState, config.EnvNames, config.EnvAutoCopy,
		config.EnvTheme, config.EnvSampleRadius, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

// newTestApp writes configYAML to a temp dir and bootstraps against it.
// "STATE" in configYAML is replaced by a state path inside the same dir.
func newTestApp(t *testing.T, configYAML string, mutate func(*Config)) (*Application, string) {
	t.Helper()
	clearEnv(t)

	originalOutput := logOutput
	logOutput = io.Discard
	t.Cleanup(func() {
		logOutput = originalOutput
		logging.InitForCLI(logging.LevelInfo, os.Stderr)
	})

	dir := t.TempDir()
	statePath := filepath.Join(dir, "state", "state.yaml")
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(strings.ReplaceAll(configYAML, "STATE", statePath))
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	cfg := NewConfig(false, configPath, "", "v0.0.1-test")
	if mutate != nil {
		mutate(cfg)
	}
	a, err := NewApplication(cfg)
	require.NoError(t, err)
	return a, statePath
}

func TestNewApplication(t *testing.T) {
	a, statePath := newTestApp(t, "names: css\ndefaultFormat: RGB\nstatePath: STATE\n", nil)

	assert.Equal(t, "css", a.Config().Settings.Names)
	assert.Equal(t, statePath, a.Services().Store.Path())
	assert.Positive(t, a.Services().Names.Len())

	_, err := os.Stat(statePath)
	require.NoError(t, err, "state file written on first run")

	state, err := a.LoadState()
	require.NoError(t, err)
	assert.Equal(t, colormath.FormatRGB, state.Format, "first install uses the configured format")
	assert.Empty(t, state.History)
}

func TestNewApplication_StateFlagWins(t *testing.T) {
	override := filepath.Join(t.TempDir(), "flag.yaml")
	a, _ := newTestApp(t, "statePath: STATE\n", func(c *Config) {
		c.StatePath = override
	})
	assert.Equal(t, override, a.Services().Store.Path())
}

func TestNewApplication_Errors(t *testing.T) {
	clearEnv(t)
	logOutput = io.Discard
	defer func() { logOutput = os.Stderr }()

	_, err := NewApplication(NewConfig(false, filepath.Join(t.TempDir(), "missing.yaml"), "", "dev"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("theme: sepia\n"), 0644))
	_, err = NewApplication(NewConfig(false, bad, "", "dev"))
	assert.Error(t, err)
}

func TestLoadState_KeepsSavedFormat(t *testing.T) {
	a, statePath := newTestApp(t, "defaultFormat: hsl\nstatePath: STATE\n", nil)

	fs, err := store.NewFileStore(statePath)
	require.NoError(t, err)
	require.NoError(t, fs.Save(store.Snapshot{History: []string{"#abcdef"}, LastFormat: "hex8"}))

	state, err := a.LoadState()
	require.NoError(t, err)
	assert.Equal(t, colormath.FormatHex8, state.Format)
	assert.Equal(t, "#ABCDEF", state.Current)

	require.NoError(t, fs.Save(store.Snapshot{History: []string{"#abcdef"}}))
	state, err = a.LoadState()
	require.NoError(t, err)
	assert.Equal(t, colormath.FormatHSL, state.Format, "default applies without a saved format")
}

func TestSaveState(t *testing.T) {
	a, _ := newTestApp(t, "statePath: STATE\n", nil)

	state, err := a.LoadState()
	require.NoError(t, err)
	state.Pick("#123456")
	require.NoError(t, a.SaveState(state))

	reloaded, err := a.LoadState()
	require.NoError(t, err)
	assert.Equal(t, []string{"#123456"}, reloaded.History)
}

func TestCopy(t *testing.T) {
	a, _ := newTestApp(t, "statePath: STATE\n", nil)

	originalWrite, originalUnsupported := writeClipboard, clipboardUnsupported
	defer func() {
		writeClipboard, clipboardUnsupported = originalWrite, originalUnsupported
	}()

	var got string
	writeClipboard = func(text string) error {
		got = text
		return nil
	}
	clipboardUnsupported = func() bool { return false }
	require.NoError(t, a.Copy("#FF0000"))
	assert.Equal(t, "#FF0000", got)

	writeClipboard = func(string) error { return errors.New("xclip missing") }
	assert.ErrorContains(t, a.Copy("#FF0000"), "xclip missing")

	clipboardUnsupported = func() bool { return true }
	assert.ErrorIs(t, a.Copy("#FF0000"), ErrClipboardUnavailable)
}

func TestNewSampler(t *testing.T) {
	a, _ := newTestApp(t, "statePath: STATE\nsampleRadius: 2\n", nil)

	s, err := a.NewSampler("shot.png@4,5")
	require.NoError(t, err)
	assert.Equal(t, sampler.ImageSampler{Path: "shot.png", X: 4, Y: 5, Radius: 2}, s)

	s, err = a.NewSampler("shot.png@4,5,0")
	require.NoError(t, err)
	assert.Equal(t, 0, s.(sampler.ImageSampler).Radius)

	_, err = a.NewSampler("nope")
	assert.ErrorIs(t, err, sampler.ErrInvalidSpec)
}

func TestInitializeServices_UnknownNames(t *testing.T) {
	cfg := NewConfig(false, "", filepath.Join(t.TempDir(), "s.yaml"), "dev")
	cfg.Settings.Names = "pantone"
	_, err := InitializeServices(cfg)
	assert.Error(t, err)
}

func TestDarkTheme(t *testing.T) {
	original := hasDarkBackground
	defer func() { hasDarkBackground = original }()
	hasDarkBackground = func() bool { return false }

	tests := []struct {
		theme string
		want  bool
	}{
		{config.ThemeDark, true},
		{"DARK", true},
		{config.ThemeLight, false},
		{config.ThemeAuto, false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			assert.Equal(t, tt.want, darkTheme(tt.theme))
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		configured string
		want       logging.LogLevel
	}{
		{"debug flag wins", true, "error", logging.LevelDebug},
		{"configured", false, "warn", logging.LevelWarn},
		{"empty", false, "", logging.LevelInfo},
		{"garbage", false, "loud", logging.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(tt.debug, tt.configured))
		})
	}
}

func TestNewMCPServer(t *testing.T) {
	a, _ := newTestApp(t, "statePath: STATE\n", nil)
	assert.NotNil(t, a.NewMCPServer())
}
