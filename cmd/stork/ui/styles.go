// Package ui provides the visual styling for the stork interactive CLI.
// Uses a small brand palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#1b2430")
	LightPrimary    = lipgloss.Color("#0b5394") // Deep blue
	LightAccent     = lipgloss.Color("#8e24aa") // Magenta
	LightMuted      = lipgloss.Color("#6b7280")
	LightQuery      = lipgloss.Color("#00838f") // Teal

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#ffd54f") // Amber
	DarkAccent     = lipgloss.Color("#ce93d8") // Light magenta
	DarkMuted      = lipgloss.Color("#9aa5b1")
	DarkQuery      = lipgloss.Color("#4dd0e1") // Cyan

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#43a047") // Green
	Warning     = lipgloss.Color("#ffb300") // Yellow
	Info        = lipgloss.Color("#1e88e5") // Blue
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Query      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Query:      LightQuery,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Query:      DarkQuery,
		IsDark:     true,
	}
}

// ThemeByName resolves "light", "dark" or "auto".
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal or returns dark mode
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 7 and 9-15 are the light ANSI backgrounds
			if bgIdx == 7 || (bgIdx >= 9 && bgIdx <= 15) {
				return LightTheme()
			}
			return DarkTheme()
		}
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Text
	Title  lipgloss.Style
	Label  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Query  lipgloss.Style
	Prompt lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Dork tokens
	Operator lipgloss.Style
	Quoted   lipgloss.Style
	Group    lipgloss.Style
	Boolean  lipgloss.Style
	Wildcard lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Query).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Query: lipgloss.NewStyle().
			Foreground(theme.Query),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Operator: lipgloss.NewStyle().
			Foreground(Info).
			Bold(true),

		Quoted: lipgloss.NewStyle().
			Foreground(Success),

		Group: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Boolean: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Wildcard: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Query),
	}
}

const banner = `
    ╔══════════════════════════════════════════════════════════╗
    ║     Stork - Advanced Deep Dork Generator                 ║
    ║     • Categorized Templates • 20+ Search Operators       ║
    ║     • OSINT & Security Focused • Color Output            ║
    ╚══════════════════════════════════════════════════════════╝
`

// Banner returns the startup banner, styled
func Banner(s Styles) string {
	return s.Title.Render(banner)
}

// PlainBanner returns the startup banner without styling
func PlainBanner() string {
	return banner
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("=", width))
}
