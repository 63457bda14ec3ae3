package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup into dir and clears the COLORPICK_* variables.
func isolate(t *testing.T, dir string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	originalDotenv := getDotenvPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
		getDotenvPath = originalDotenv
	})

	getUserConfigPath = func() (string, error) { return filepath.Join(dir, "user.yaml"), nil }
	getProjectConfigPath = func() (string, error) { return filepath.Join(dir, "project.yaml"), nil }
	getDotenvPath = func() (string, error) { return filepath.Join(dir, ".env"), nil }

	for _, key := range []string{EnvFormat, EnvState, EnvNames, EnvAutoCopy, EnvTheme, EnvSampleRadius, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.True(t, cfg.CopyOnPick())
}

func TestLoadConfig_Layers(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "user.yaml"), "defaultFormat: rgb\nnames: css\nsampleRadius: 3\n")
	writeFile(t, filepath.Join(dir, "project.yaml"), "defaultFormat: hsl\nautoCopy: false\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "hsl", cfg.DefaultFormat, "project overrides user")
	assert.Equal(t, "css", cfg.Names, "user overrides default")
	assert.Equal(t, 3, cfg.SampleRadius)
	assert.False(t, cfg.CopyOnPick())
	assert.Equal(t, ThemeAuto, cfg.Theme)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "user.yaml"), "defaultFormat: rgb\n")
	writeFile(t, filepath.Join(dir, ".env"), "COLORPICK_FORMAT=hex8\nCOLORPICK_THEME=light\n")
	t.Setenv(EnvFormat, "cssvar")
	t.Setenv(EnvAutoCopy, "false")
	t.Setenv(EnvState, "/tmp/state.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cssvar", cfg.DefaultFormat, "process env beats .env")
	assert.Equal(t, ThemeLight, cfg.Theme, ".env beats files")
	assert.Equal(t, "/tmp/state.yaml", cfg.StatePath)
	assert.False(t, cfg.CopyOnPick())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad yaml", "defaultFormat: [", nil},
		{"bad format", "defaultFormat: cmyk\n", nil},
		{"bad names", "names: pantone\n", nil},
		{"bad theme", "theme: sepia\n", nil},
		{"negative radius", "sampleRadius: -1\n", nil},
		{"bad autocopy env", "", map[string]string{EnvAutoCopy: "sometimes"}},
		{"bad radius env", "", map[string]string{EnvSampleRadius: "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			isolate(t, dir)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, "project.yaml"), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_PathErrorsAreSoft(t *testing.T) {
	isolate(t, t.TempDir())
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }
	getProjectConfigPath = func() (string, error) { return "", errors.New("no cwd") }

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "hex", cfg.DefaultFormat)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "user.yaml"), "names: css\n")
	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "defaultFormat: rgba\n")

	cfg, err := LoadConfigFromPath(explicit)
	require.NoError(t, err)
	assert.Equal(t, "rgba", cfg.DefaultFormat)
	assert.Equal(t, "tailwind", cfg.Names, "user layer is skipped")

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	no := false
	base := GetDefaultConfig()
	merged := mergeConfigs(base, Config{AutoCopy: &no, Theme: ThemeDark})

	assert.False(t, merged.CopyOnPick())
	assert.True(t, base.CopyOnPick(), "base is not aliased")
	assert.Equal(t, ThemeDark, merged.Theme)
	assert.Equal(t, base.DefaultFormat, merged.DefaultFormat)
}

func TestExpandPath(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	got, err := ExpandPath("~/colors/state.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/home/test/colors/state.yaml", got)

	got, err = ExpandPath("/abs/state.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/state.yaml", got)

	got, err = ExpandPath("~other/state.yaml")
	require.NoError(t, err)
	assert.Equal(t, "~other/state.yaml", got)
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/test", ".config", "colorpick"), dir)
}
