package config

// Config is the top-level configuration structure for colorpick.
type Config struct {
	// DefaultFormat is used until the user picks a format; the persisted
	// lastFormat wins once it exists.
	DefaultFormat string `yaml:"defaultFormat,omitempty"`
	AutoCopy      *bool  `yaml:"autoCopy,omitempty"`
	// StatePath overrides ~/.config/colorpick/state.yaml.
	StatePath    string `yaml:"statePath,omitempty"`
	Names        string `yaml:"names,omitempty"` // "tailwind" or "css"
	Theme        string `yaml:"theme,omitempty"` // "dark", "light" or "auto"
	SampleRadius int    `yaml:"sampleRadius,omitempty"`
	LogLevel     string `yaml:"logLevel,omitempty"`
}

// CopyOnPick reports whether picks are copied to the clipboard.
func (c Config) CopyOnPick() bool {
	return c.AutoCopy == nil || *c.AutoCopy
}

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	autoCopy := true
	return Config{
		DefaultFormat: "hex",
		AutoCopy:      &autoCopy,
		Names:         "tailwind",
		Theme:         ThemeAuto,
		SampleRadius:  0,
		LogLevel:      "info",
	}
}
