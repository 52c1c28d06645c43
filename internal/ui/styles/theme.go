// Package styles holds the storefront color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Emerald - producer names, prices, active track
	Secondary lipgloss.Color // Lighter emerald - gradient end, hover states

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Progress bar
	ProgressFilled lipgloss.Color
	ProgressEmpty  lipgloss.Color

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Producer lipgloss.Style // Producer name under a title
	Price    lipgloss.Style
	Playing  lipgloss.Style // Row of the bound track
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#34d399"), // emerald-400
	Secondary: lipgloss.Color("#6ee7b7"), // emerald-300

	FgBase:   lipgloss.Color("#e5e5e5"),
	FgMuted:  lipgloss.Color("#a3a3a3"),
	FgSubtle: lipgloss.Color("#525252"),

	BgBase:   lipgloss.Color("#0a0a0a"),
	BgCursor: lipgloss.Color("#262626"),

	Border:      lipgloss.Color("#404040"),
	BorderFocus: lipgloss.Color("#10b981"), // emerald-500

	ProgressFilled: lipgloss.Color("#10b981"),
	ProgressEmpty:  lipgloss.Color("#404040"),

	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#fbbf24"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Producer: lipgloss.NewStyle().Foreground(t.Primary),
		Price:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
