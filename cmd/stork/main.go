package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"stork/cmd/stork/ui"
	"stork/internal/catalog"
	"stork/internal/config"
	"stork/internal/interactive"
	"stork/internal/logging"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	noColor     bool
	noClipboard bool
	verbose     bool

	// Resolved configuration, set by loadConfig
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stork",
	Short: "Stork - interactive Google dork generator",
	Long: `Stork assembles Google dorks from a categorized template catalog or
from answers to a guided prompt sequence covering the advanced search
operators (site:, filetype:, intitle:, inurl:, daterange: and friends).

Run without arguments to start the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/stork/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML template file merged into the built-in catalog")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "Never offer to copy dorks to the clipboard")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to the log directory")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(templatesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves config file, environment and flags, then starts
// logging. Flags win over the environment, which wins over the file.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if noColor {
		c.Color = config.ColorNever
	}
	if noClipboard {
		c.Clipboard = false
	}
	if catalogPath != "" {
		c.CatalogFile = catalogPath
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
	cfg = c

	if err := logging.Initialize(c.Logging.Options()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if c.Color == config.ColorAlways {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	logging.Boot("command %q started", cmd.Name())
	logging.BootDebug("session %s, log file %s", logging.SessionID(), logging.Path())
	logging.Config("loaded %s (color=%s theme=%s clipboard=%t catalog=%q)",
		path, c.Color, c.Theme, c.Clipboard, c.CatalogFile)
	return nil
}

// currentConfig returns the resolved config, or the defaults when no
// pre-run happened.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loadCatalog returns the built-in catalog merged with the configured file.
func loadCatalog(c *config.Config) (*catalog.Catalog, error) {
	cat := catalog.Builtin()
	if c.CatalogFile == "" {
		return cat, nil
	}
	extra, err := catalog.LoadFile(c.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logging.Catalog("merged %d categories from %s", len(extra), c.CatalogFile)
	return cat.Merge(extra), nil
}

func newStyles(c *config.Config) ui.Styles {
	return ui.NewStyles(ui.ThemeByName(c.Theme))
}

func newPainter(c *config.Config) interactive.Painter {
	if !c.ColorEnabled() {
		return interactive.PlainPainter{}
	}
	return ui.NewPainter(newStyles(c))
}

func newBanner(c *config.Config) string {
	if !c.ColorEnabled() {
		return ui.PlainBanner()
	}
	return ui.Banner(newStyles(c))
}

// newClipboard returns the system clipboard, or nil when copying is
// turned off.
func newClipboard(c *config.Config) interactive.Clipboard {
	if !c.Clipboard {
		return nil
	}
	return ui.SystemClipboard{}
}

// newSession loads the catalog and builds an interactive session on the
// command's streams.
func newSession(cmd *cobra.Command) (*interactive.Session, error) {
	c := currentConfig()
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}
	return newSessionWith(cmd, c, cat), nil
}

func newSessionWith(cmd *cobra.Command, c *config.Config, cat *catalog.Catalog) *interactive.Session {
	opts := []interactive.Option{
		interactive.WithPainter(newPainter(c)),
		interactive.WithBanner(newBanner(c)),
	}
	if clip := newClipboard(c); clip != nil {
		opts = append(opts, interactive.WithClipboard(clip))
	}
	return interactive.New(cmd.InOrStdin(), cmd.OutOrStdout(), cat, opts...)
}

// runMenu runs the main menu loop until exit or end of input.
func runMenu(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.Run()
}

// ignoreEOF treats running out of input as a cancelled prompt.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
