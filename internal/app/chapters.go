package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/ui"
	"github.com/alakhsir/studium/internal/ui/list"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

type chaptersModel struct {
	subject catalog.Subject
	list    list.Model[catalog.Chapter]
	loaded  bool
}

func newChaptersModel() chaptersModel {
	l := list.New[catalog.Chapter](ui.ScrollMargin)
	l.SetFocused(true)
	return chaptersModel{list: l}
}

func (c *chaptersModel) set(msg chaptersLoadedMsg) {
	c.subject = msg.subject
	c.list.SetItems(msg.chapters)
	c.loaded = true
}

func (m Model) handleChaptersKey(msg tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	c := &m.chapters

	if action == keymap.ActionSelect {
		if chapter, ok := c.list.Selected(); ok {
			m.router.Push(PageContents)
			m.saveNavigation()
			return m, m.loadContentsCmd(chapter)
		}
		return m, nil
	}

	c.list.Update(msg)
	m.saveNavigation()
	return m, nil
}

func (m Model) viewChapters() string {
	c := m.chapters
	s := styles.T().S()

	if !c.loaded {
		return s.Muted.Render("Loading chapters…")
	}

	var lines []string
	lines = append(lines,
		s.Title.Render(render.Sanitize(c.subject.Name)),
		render.Separator(min(m.width, 60)))

	if c.list.Len() == 0 {
		lines = append(lines, s.Muted.Render("No chapters yet"))
	}

	start, end := c.list.VisibleRange(ui.PanelOverhead)
	items := c.list.Items()
	for i := start; i < end; i++ {
		line := render.TruncateEllipsis(render.Sanitize(items[i].Name), m.width-6)
		if i == c.list.SelectedIndex() {
			line = s.Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", s.Subtle.Render("enter open · esc back"))
	return strings.Join(lines, "\n")
}
