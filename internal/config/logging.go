package config

import "stork/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // json, console
	Dir        string          `yaml:"dir,omitempty"`        // defaults to the user cache dir
	DebugMode  bool            `yaml:"debug_mode"`           // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// Options converts the config into logging options, filling the default
// log directory.
func (c *LoggingConfig) Options() logging.Options {
	dir := c.Dir
	if dir == "" {
		dir = DefaultLogDir()
	}
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Format:     c.Format,
		Dir:        dir,
		Categories: c.Categories,
	}
}
