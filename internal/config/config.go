package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all stork configuration.
type Config struct {
	// Color controls styled output: auto, always, never
	Color string `yaml:"color"`

	// Theme selects the palette: auto, light, dark
	Theme string `yaml:"theme"`

	// Clipboard enables the copy-to-clipboard prompt after display
	Clipboard bool `yaml:"clipboard"`

	// CatalogFile is an optional YAML file with extra template categories
	CatalogFile string `yaml:"catalog_file,omitempty"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	validColors    = []string{ColorAuto, ColorAlways, ColorNever}
	validThemes    = []string{ThemeAuto, ThemeLight, ThemeDark}
	validLogLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Color:     ColorAuto,
		Theme:     ThemeAuto,
		Clipboard: true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/stork/config.yaml, falling back to
// the working directory when no user config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stork.yaml"
	}
	return filepath.Join(dir, "stork", "config.yaml")
}

// DefaultLogDir returns the directory debug logs go to when none is set.
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "stork", "logs")
	}
	return filepath.Join(dir, "stork", "logs")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// https://no-color.org: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		c.Color = ColorNever
	}
	if theme := os.Getenv("STORK_THEME"); theme != "" {
		c.Theme = theme
	}
	if path := os.Getenv("STORK_CATALOG"); path != "" {
		c.CatalogFile = path
	}
	if os.Getenv("STORK_NO_CLIPBOARD") != "" {
		c.Clipboard = false
	}
	if v := os.Getenv("STORK_DEBUG"); v != "" && v != "0" {
		c.Logging.DebugMode = true
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(validColors, c.Color) {
		return fmt.Errorf("invalid color mode: %s (valid: %v)", c.Color, validColors)
	}
	if !contains(validThemes, c.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, validThemes)
	}
	if c.Logging.Level != "" && !contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, validLogLevels)
	}
	return nil
}

// ColorEnabled reports whether styled output should be produced.
func (c *Config) ColorEnabled() bool {
	return c.Color != ColorNever
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
