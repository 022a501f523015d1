package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alakhsir/studium/internal/ui/styles"
)

// loginPhase tracks the two-step OTP flow.
type loginPhase int

const (
	phaseEmail loginPhase = iota // waiting for an email address
	phaseCode                    // waiting for the emailed code
)

type loginModel struct {
	phase      loginPhase
	email      string
	emailInput textinput.Model
	codeInput  textinput.Model
	submitting bool
	status     string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	code := textinput.New()
	code.Placeholder = "6-digit code"
	code.CharLimit = 6
	code.Width = 12

	return loginModel{
		emailInput: email,
		codeInput:  code,
	}
}

// handleLoginKey processes a key on the login page. Navigation keys are
// handled by the caller; everything else feeds the focused input.
func (m Model) handleLoginKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	l := &m.login

	switch msg.String() {
	case "enter":
		switch l.phase {
		case phaseEmail:
			email := strings.TrimSpace(l.emailInput.Value())
			if email == "" || !strings.Contains(email, "@") {
				l.status = "Enter a valid email address"
				return m, nil
			}
			l.submitting = true
			l.status = "Sending code…"
			return m, requestOTPCmd(m.provider, email)

		case phaseCode:
			code := strings.TrimSpace(l.codeInput.Value())
			if code == "" {
				l.status = "Enter the emailed code"
				return m, nil
			}
			l.submitting = true
			l.status = "Verifying…"
			return m, verifyOTPCmd(m.provider, l.email, code)
		}
		return m, nil

	case "esc":
		if l.phase == phaseCode {
			// Step back to the email prompt.
			l.phase = phaseEmail
			l.status = ""
			l.codeInput.Reset()
			l.codeInput.Blur()
			l.emailInput.Focus()
			return m, textinput.Blink
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if l.phase == phaseEmail {
		l.emailInput, cmd = l.emailInput.Update(msg)
	} else {
		l.codeInput, cmd = l.codeInput.Update(msg)
	}
	return m, cmd
}

// advanceToCode flips the login flow to the code prompt after the backend
// accepted the OTP request.
func (m *Model) advanceToCode(email string) tea.Cmd {
	l := &m.login
	l.phase = phaseCode
	l.email = email
	l.submitting = false
	l.status = "Code sent to " + email
	l.emailInput.Blur()
	l.codeInput.Reset()
	l.codeInput.Focus()
	return textinput.Blink
}

func (m Model) viewLogin() string {
	l := m.login
	s := styles.T().S()

	title := styles.Wordmark("studium")
	sub := s.Muted.Render("Sign in with your email")

	var prompt, input string
	if l.phase == phaseEmail {
		prompt = s.Base.Render("Email")
		input = l.emailInput.View()
	} else {
		prompt = s.Base.Render("Code")
		input = l.codeInput.View()
	}

	status := ""
	if l.status != "" {
		status = s.Warning.Render(l.status)
	}
	if m.errorMsg != "" {
		status = s.Error.Render(m.errorMsg)
	}

	hint := s.Subtle.Render("enter submit · esc back · ctrl+c quit")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title, "", sub, "", prompt, input, "", status, "", hint)
	card := styles.PanelStyle(true).Padding(1, 3).Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
