// Package miniplayer renders the docked bar for a minimized video session.
package miniplayer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

// Height is the total height of the bar including its border.
const Height = 3

var barStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// State holds everything needed to render the bar.
type State struct {
	Title    string
	Playing  bool
	Loading  bool
	Errored  bool
	Position time.Duration
	Duration time.Duration
}

// Render returns the bar for the given terminal width.
func Render(s State, width int) string {
	innerWidth := width - 2 // border columns
	if innerWidth < 10 {
		return ""
	}

	status := "⏸"
	switch {
	case s.Errored:
		status = styles.T().S().Error.Render("!")
	case s.Loading:
		status = "…"
	case s.Playing:
		status = "▶"
	}

	hint := styles.T().S().Subtle.Render("v expand · x close")
	right := RenderProgress(s, innerWidth/3) + "  " + hint
	titleWidth := innerWidth - lipgloss.Width(status) - lipgloss.Width(right) - 4
	title := styles.T().S().Active.Render(render.TruncateEllipsis(render.Sanitize(s.Title), max(titleWidth, 4)))

	line := render.Row(status+"  "+title, right, innerWidth)
	return barStyle.Width(innerWidth).Render(line)
}

// RenderProgress renders the position readout: a block strip between
// the clocks when width allows, plain "pos / dur" otherwise.
func RenderProgress(s State, width int) string {
	posStr := formatDuration(s.Position)
	durStr := formatDuration(s.Duration)

	barWidth := width - lipgloss.Width(posStr) - lipgloss.Width(durStr) - 4
	if barWidth < 3 {
		return posStr + " / " + durStr
	}

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	return posStr + "  " +
		strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled) +
		"  " + durStr
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
