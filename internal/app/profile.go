package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

func (m Model) handleProfileKey(_ tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	switch action {
	case keymap.ActionBack:
		m.router.Back()
		return m, nil
	case keymap.ActionQuit:
		return m, tea.Quit
	}

	// "s" signs out; deliberate, so it is not on a shared binding.
	return m, nil
}

// handleProfileRawKey handles keys outside the binding table.
func (m Model) handleProfileRawKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "s" {
		token := m.accessToken
		m.clearSession()
		return m, signOutCmd(m.provider, token)
	}
	return m, nil
}

func (m Model) viewProfile() string {
	s := styles.T().S()

	var lines []string
	lines = append(lines, s.Title.Render("Profile"), render.Separator(min(m.width, 60)))

	if m.identity == nil {
		lines = append(lines, s.Muted.Render("Not signed in"))
		return strings.Join(lines, "\n")
	}

	name := m.identity.Name
	if name == "" {
		name = m.identity.Email
	}
	lines = append(lines, s.Base.Render(name), s.Muted.Render(m.identity.Email))

	if !m.identity.ExpiresAt.IsZero() {
		lines = append(lines, s.Subtle.Render(
			fmt.Sprintf("session expires %s", humanize.Time(m.identity.ExpiresAt))))
	}

	lines = append(lines, "", s.Subtle.Render("s sign out · esc back"))
	return strings.Join(lines, "\n")
}
