package app

import (
	"strings"

	"github.com/alakhsir/studium/internal/session"
	"github.com/alakhsir/studium/internal/ui/headerbar"
	"github.com/alakhsir/studium/internal/ui/miniplayer"
	"github.com/alakhsir/studium/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// A fullscreen session owns the whole terminal.
	if m.controller.Mode() == session.Fullscreen {
		return m.viewPlayer()
	}

	if m.page() == PageLogin {
		return m.viewLogin()
	}

	header := headerbar.Render(m.crumbs(), m.accountLabel(), m.width)

	var body string
	switch m.page() {
	case PageBatches:
		body = m.viewBatches()
	case PageBatchDetail:
		body = m.viewDetail()
	case PageChapters:
		body = m.viewChapters()
	case PageContents:
		body = m.viewContents()
	case PageQuiz:
		body = m.viewQuiz()
	case PageProfile:
		body = m.viewProfile()
	}

	view := header + "\n" + body

	if m.errorMsg != "" {
		view += "\n" + styles.T().S().Error.Render(m.errorMsg)
	}

	// The docked mini-player shows while a session is minimized, unless a
	// platform PiP surface already floats the video.
	if m.controller.Mode() == session.Minimized && !m.controller.PipActive() {
		view = enforceHeight(view, m.height-miniplayer.Height)
		view += "\n" + miniplayer.Render(m.miniPlayerState(), m.width)
		return view
	}

	return enforceHeight(view, m.height)
}

// crumbs builds the header navigation trail for the current page.
func (m Model) crumbs() []string {
	switch m.page() {
	case PageBatchDetail:
		return []string{m.detail.batch.Name}
	case PageChapters:
		return []string{m.detail.batch.Name, m.chapters.subject.Name}
	case PageContents:
		return []string{m.detail.batch.Name, m.chapters.subject.Name, m.contents.chapter.Name}
	case PageQuiz:
		return []string{"Quiz"}
	case PageProfile:
		return []string{"Profile"}
	default:
		return nil
	}
}

func (m Model) accountLabel() string {
	if m.identity == nil {
		return ""
	}
	return m.identity.Email
}

// contentHeight is the vertical space available to the page body.
func (m Model) contentHeight() int {
	h := m.height - headerbar.Height - 1
	if m.controller.Mode() == session.Minimized && !m.controller.PipActive() {
		h -= miniplayer.Height
	}
	return max(h, 0)
}

// resizeLists propagates the page body size to the list components so
// cursor scrolling matches what the views render.
func (m *Model) resizeLists() {
	h := m.contentHeight()
	m.batches.list.SetSize(m.width, h)
	m.detail.subjects.SetSize(m.width, h)
	m.chapters.list.SetSize(m.width, h)
	m.contents.list.SetSize(m.width, h)
}

// enforceHeight pads or truncates the view to exactly the given height.
func enforceHeight(view string, height int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		return strings.Join(lines[:height], "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
