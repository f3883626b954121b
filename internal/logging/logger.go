// Package logging provides config-driven categorized file logging for stork.
// Logs go to a per-day file under the configured directory, one named zap
// logger per category. When debug mode is off every logger is a no-op and
// nothing touches the disk.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryConfig  Category = "config"  // Config file load/save
	CategoryCatalog Category = "catalog" // Template catalog loading and merging
	CategoryBuilder Category = "builder" // Interactive builder answers
	CategoryBrowser Category = "browser" // Template browser selections
	CategoryDisplay Category = "display" // Rendering and clipboard
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // json, console
	Dir        string
	Categories map[string]bool
}

var (
	mu        sync.RWMutex
	opts      Options
	base      = zap.NewNop()
	loggers   = make(map[Category]*zap.SugaredLogger)
	sessionID string
	logPath   string
)

// Initialize sets up the shared logger. Should be called once at startup.
// With debug mode off it only records the options and stays silent.
func Initialize(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	opts = o
	loggers = make(map[Category]*zap.SugaredLogger)
	sessionID = uuid.NewString()
	base = zap.NewNop()
	logPath = ""

	if !o.DebugMode {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("log directory required in debug mode")
	}
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	level, err := zapcore.ParseLevel(levelOrDefault(o.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.Level, err)
	}

	// Date prefix keeps one file per day
	path := filepath.Join(o.Dir, fmt.Sprintf("%s_stork.log", time.Now().Format("2006-01-02")))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = encodingOrDefault(o.Format)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	logger, err := cfg.Build(zap.Fields(zap.String("session", sessionID)))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	base = logger
	logPath = path

	base.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("dir", o.Dir),
		zap.String("level", level.String()),
		zap.Int("categories", len(o.Categories)),
	)
	return nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	if level == "warning" {
		return "warn"
	}
	return level
}

func encodingOrDefault(format string) string {
	switch format {
	case "console", "text":
		return "console"
	default:
		return "json"
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if !opts.DebugMode {
		return false
	}
	if opts.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// SessionID identifies this process in every log line.
func SessionID() string {
	mu.RLock()
	defer mu.RUnlock()
	return sessionID
}

// Path returns the active log file, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if !categoryEnabled(category) {
		mu.RUnlock()
		return zap.NewNop().Sugar()
	}
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category)).Sugar()
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

// BootDebug logs debug to the boot category
func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debugf(format, args...)
}

// Config logs to the config category
func Config(format string, args ...interface{}) {
	Get(CategoryConfig).Infof(format, args...)
}

// Catalog logs to the catalog category
func Catalog(format string, args ...interface{}) {
	Get(CategoryCatalog).Infof(format, args...)
}

// BuilderDebug logs debug to the builder category
func BuilderDebug(format string, args ...interface{}) {
	Get(CategoryBuilder).Debugf(format, args...)
}

// Browser logs to the browser category
func Browser(format string, args ...interface{}) {
	Get(CategoryBrowser).Infof(format, args...)
}

// DisplayWarn logs a warning to the display category
func DisplayWarn(format string, args ...interface{}) {
	Get(CategoryDisplay).Warnf(format, args...)
}
