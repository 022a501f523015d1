package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/progress"
	"github.com/alakhsir/studium/internal/ui"
	"github.com/alakhsir/studium/internal/ui/list"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

type contentsModel struct {
	chapter  catalog.Chapter
	list     list.Model[catalog.ContentItem]
	all      []catalog.ContentItem
	statuses map[string]progress.Status

	filtering bool
	filter    string

	loaded bool
}

func newContentsModel() contentsModel {
	l := list.New[catalog.ContentItem](ui.ScrollMargin)
	l.SetFocused(true)
	return contentsModel{
		list:     l,
		statuses: map[string]progress.Status{},
	}
}

func (c *contentsModel) set(msg contentsLoadedMsg) {
	c.chapter = msg.chapter
	c.all = msg.contents
	c.statuses = msg.statuses
	c.loaded = true
	c.applyFilter()
}

func (c *contentsModel) applyFilter() {
	c.list.SetItems(catalog.FilterContents(c.all, c.filter))
}

func (m Model) handleContentsKey(msg tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	c := &m.contents

	if c.filtering {
		switch msg.String() {
		case "enter":
			c.filtering = false
		case "esc":
			c.filtering = false
			c.filter = ""
			c.applyFilter()
		case "backspace":
			if c.filter != "" {
				c.filter = c.filter[:len(c.filter)-1]
				c.applyFilter()
			}
		default:
			if len(msg.String()) == 1 {
				c.filter += msg.String()
				c.applyFilter()
			}
		}
		return m, nil
	}

	if action == keymap.ActionSearch {
		c.filtering = true
		return m, nil
	}

	if action == keymap.ActionSelect {
		item, ok := c.list.Selected()
		if !ok {
			return m, nil
		}
		switch {
		case item.Type.Playable():
			return m, m.resolvePlaybackCmd(item, m.detail.batch.ID)
		case item.Type == catalog.ContentQuiz:
			m.router.Push(PageQuiz)
			return m, m.loadQuizCmd(item)
		default:
			m.errorMsg = "Notes open in your PDF viewer: " + item.URL
			return m, nil
		}
	}

	c.list.Update(msg)
	m.saveNavigation()
	return m, nil
}

func contentIcon(t catalog.ContentType) string {
	switch t {
	case catalog.ContentVideo, catalog.ContentDPPVideo:
		return "▶"
	case catalog.ContentNote, catalog.ContentDPPNote:
		return "🗎"
	case catalog.ContentQuiz:
		return "?"
	default:
		return "·"
	}
}

func statusBadge(st progress.Status) string {
	s := styles.T().S()
	switch st {
	case progress.StatusCompleted:
		return s.Completed.Render("done")
	case progress.StatusInProgress:
		return s.Warning.Render("watching")
	default:
		return ""
	}
}

func (m Model) viewContents() string {
	c := m.contents
	s := styles.T().S()

	if !c.loaded {
		return s.Muted.Render("Loading contents…")
	}

	header := s.Title.Render(render.Sanitize(c.chapter.Name))
	if c.filtering || c.filter != "" {
		header += s.Muted.Render("  /" + c.filter)
		if c.filtering {
			header += s.Base.Render("█")
		}
	}

	var lines []string
	lines = append(lines, header, render.Separator(min(m.width, 60)))

	if c.list.Len() == 0 {
		if c.filter != "" {
			lines = append(lines, s.Muted.Render("No contents match"))
		} else {
			lines = append(lines, s.Muted.Render("Nothing published yet"))
		}
	}

	start, end := c.list.VisibleRange(ui.PanelOverhead)
	items := c.list.Items()
	for i := start; i < end; i++ {
		item := items[i]

		dur := ""
		if item.Duration > 0 {
			dur = s.Subtle.Render(fmt.Sprintf(" %d min", int(item.Duration.Minutes())))
		}

		badge := statusBadge(c.statuses[item.ID])
		if badge != "" {
			badge = "  " + badge
		}

		// Mark the lecture currently held by the session controller.
		playing := ""
		if cur := m.controller.Current(); cur != nil && cur.SourceURL == item.URL && m.controller.Mode().IsActive() {
			playing = s.Active.Render(" ●")
		}

		line := contentIcon(item.Type) + " " +
			render.TruncateEllipsis(render.Sanitize(item.Title), m.width-24) +
			dur + badge + playing

		if i == c.list.SelectedIndex() {
			line = s.Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", s.Subtle.Render("enter play · esc back"))
	return strings.Join(lines, "\n")
}
