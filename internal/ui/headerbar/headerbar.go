// Package headerbar renders the single-line application header.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

var (
	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	crumbSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	accountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Render returns the header bar string for the given width.
// crumbs is the navigation trail, most general first (e.g. batch, subject,
// chapter). account is the signed-in email, empty when signed out.
func Render(crumbs []string, account string, width int) string {
	if width < 20 {
		return ""
	}

	left := styles.Wordmark("studium")
	sep := crumbSepStyle.Render(" › ")
	for _, c := range crumbs {
		if c == "" {
			continue
		}
		left += sep + crumbStyle.Render(c)
	}

	right := ""
	if account != "" {
		right = accountStyle.Render(account)
	}

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if leftWidth+rightWidth+1 > width {
		// Drop the account before truncating the trail
		right = ""
		rightWidth = 0
		if leftWidth > width {
			return render.TruncateEllipsis(left, width)
		}
	}

	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}
