package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable applyEnvOverrides reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NO_COLOR", "STORK_THEME", "STORK_CATALOG", "STORK_NO_CLIPBOARD", "STORK_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Color != ColorAuto {
		t.Errorf("expected Color=auto, got %s", cfg.Color)
	}
	if !cfg.Clipboard {
		t.Error("expected clipboard enabled by default")
	}
	if cfg.Logging.DebugMode {
		t.Error("expected debug mode off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = ThemeDark
	cfg.CatalogFile = "/tmp/extra.yaml"
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"browser": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Theme != ThemeDark {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.CatalogFile != "/tmp/extra.yaml" {
		t.Errorf("expected CatalogFile to round trip, got %s", loaded.CatalogFile)
	}
	opts := loaded.Logging.Options()
	if !opts.DebugMode {
		t.Error("expected debug mode to round trip")
	}
	if enabled, ok := opts.Categories["browser"]; !ok || enabled {
		t.Errorf("expected browser category disabled, got %v", opts.Categories)
	}
	if opts.Dir == "" {
		t.Error("expected Options to fill the default log dir")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Color != ColorAuto || cfg.Theme != ThemeAuto {
		t.Errorf("expected defaults, got color=%s theme=%s", cfg.Color, cfg.Theme)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("color: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	wrong := filepath.Join(dir, "wrong.yaml")
	if err := os.WriteFile(wrong, []byte("color: sometimes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(wrong); err == nil {
		t.Error("expected validation error for unknown color mode")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid theme")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log level")
	}

	cfg.Logging.Level = "warning"
	if err := cfg.Validate(); err != nil {
		t.Errorf("warning should be accepted: %v", err)
	}
}

func TestLoggingOptions(t *testing.T) {
	lc := LoggingConfig{DebugMode: true, Level: "debug"}
	opts := lc.Options()
	if opts.Dir == "" {
		t.Error("expected default log dir to be filled")
	}
	if !opts.DebugMode || opts.Level != "debug" {
		t.Errorf("options not carried over: %+v", opts)
	}

	lc.Dir = "/var/log/stork"
	if got := lc.Options().Dir; got != "/var/log/stork" {
		t.Errorf("expected explicit dir, got %s", got)
	}
}
