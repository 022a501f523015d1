package surface

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	chromeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	chromeDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	timelineFilled   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	timelineEmpty    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	scrubHandleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	menuStyle        = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// View renders the fullscreen transport chrome. The caller supplies the
// video title and the terminal dimensions.
func (t *Transport) View(title string, width, height int) string {
	if width < 20 {
		width = 20
	}

	switch t.state {
	case Loading:
		return t.centered("Loading…", title, width, height)
	case Errored:
		body := errorStyle.Render(t.faultMsg) + "\n\n" +
			chromeDimStyle.Render("r retry · esc close")
		return t.centered(body, title, width, height)
	}

	if !t.controlsVisible {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}

	var b strings.Builder
	b.WriteString(chromeTitleStyle.Render(truncate(title, width-4)))
	b.WriteString("\n\n")
	b.WriteString(t.renderTimeline(width - 4))
	b.WriteString("\n")
	b.WriteString(t.renderTransportRow(width - 4))

	if t.menu != MenuClosed {
		b.WriteString("\n\n")
		b.WriteString(t.renderMenu())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Bottom,
		lipgloss.NewStyle().Padding(1, 2).Render(b.String()))
}

// renderTimeline draws the seek bar with the scrub handle when the user
// is dragging. An unknown duration renders as "--:--".
func (t *Transport) renderTimeline(width int) string {
	pos := t.Position()
	posStr := formatClock(pos)
	durStr := "--:--"
	if t.duration > 0 {
		durStr = formatClock(t.duration)
	}

	barWidth := width - lipgloss.Width(posStr) - lipgloss.Width(durStr) - 4
	if barWidth < 5 {
		return posStr + " / " + durStr
	}

	var ratio float64
	if t.duration > 0 {
		ratio = float64(pos) / float64(t.duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	var bar strings.Builder
	bar.WriteString(timelineFilled.Render(strings.Repeat("━", filled)))
	if t.scrubbing && filled < barWidth {
		bar.WriteString(scrubHandleStyle.Render("●"))
		if barWidth-filled-1 > 0 {
			bar.WriteString(timelineEmpty.Render(strings.Repeat("─", barWidth-filled-1)))
		}
	} else {
		bar.WriteString(timelineEmpty.Render(strings.Repeat("─", barWidth-filled)))
	}

	return posStr + "  " + bar.String() + "  " + durStr
}

func (t *Transport) renderTransportRow(width int) string {
	status := "▶"
	if t.state == Playing {
		status = "⏸"
	}
	if t.state == Ended {
		status = "↻"
	}

	var skip string
	switch {
	case t.skipDir > 0:
		skip = "  +10s ⟳"
	case t.skipDir < 0:
		skip = "  ⟲ -10s"
	}

	vol := fmt.Sprintf("vol %d%%", int(t.volume*100))
	if t.muted {
		vol = "muted"
	}
	rate := fmt.Sprintf("%gx", t.rate)
	quality := t.quality

	left := status + skip
	right := chromeDimStyle.Render(vol + "  ·  " + rate + "  ·  " + quality)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (t *Transport) renderMenu() string {
	var lines []string
	switch t.menu {
	case MenuMain:
		lines = []string{
			"Playback speed   " + chromeDimStyle.Render(fmt.Sprintf("%gx ›", t.rate)),
			"Quality          " + chromeDimStyle.Render(t.quality+" ›"),
		}
	case MenuSpeed:
		for _, s := range Speeds {
			label := fmt.Sprintf("%gx", s)
			if s == t.rate {
				label = menuSelectedStyle.Render("● " + label)
			} else {
				label = "  " + label
			}
			lines = append(lines, label)
		}
	case MenuQuality:
		for _, q := range Qualities {
			label := q
			if q == t.quality {
				label = menuSelectedStyle.Render("● " + label)
			} else {
				label = "  " + label
			}
			lines = append(lines, label)
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func (t *Transport) centered(body, title string, width, height int) string {
	content := chromeTitleStyle.Render(truncate(title, width-4)) + "\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func truncate(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	return string(runes[:maxWidth-1]) + "…"
}
