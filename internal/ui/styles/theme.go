package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Indigo - focused items, active states
	Secondary lipgloss.Color // Amber - live badges, secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Panel backgrounds
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color // Green - completed, enrolled
	Error   lipgloss.Color // Red - errors, wrong answers
	Warning lipgloss.Color // Amber - in progress, deadlines

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Active    lipgloss.Style // Currently playing lecture
	Cursor    lipgloss.Style // Cursor background highlight
	Completed lipgloss.Style // Finished lectures, correct answers
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	// Indigo accent
	Primary:   lipgloss.Color("#818cf8"),
	Secondary: lipgloss.Color("#fbbf24"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:   lipgloss.Color("#16161e"),
	BgCursor: lipgloss.Color("#2e2e3a"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#818cf8"),

	// Status
	Success: lipgloss.Color("#4ade80"),
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
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Completed: lipgloss.NewStyle().Foreground(t.Success),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
