package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/progress"
	"github.com/alakhsir/studium/internal/ui"
	"github.com/alakhsir/studium/internal/ui/list"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

// detailTab selects which pane of the batch page is active.
type detailTab int

const (
	tabSubjects detailTab = iota
	tabAnnouncements
)

type detailModel struct {
	batch         catalog.Batch
	subjects      list.Model[catalog.Subject]
	announcements []catalog.Announcement
	annCursor     int
	tab           detailTab
	enrolled      bool
	summary       progress.BatchSummary
	loaded        bool
}

func newDetailModel() detailModel {
	l := list.New[catalog.Subject](ui.ScrollMargin)
	l.SetFocused(true)
	return detailModel{subjects: l}
}

func (d *detailModel) set(msg batchDetailLoadedMsg) {
	d.batch = msg.batch
	d.subjects.SetItems(msg.subjects)
	d.announcements = msg.announcements
	d.annCursor = 0
	d.enrolled = msg.enrolled
	d.summary = msg.summary
	d.loaded = true
}

func (m Model) handleDetailKey(msg tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	d := &m.detail

	switch action {
	case keymap.ActionMoveLeft:
		d.tab = tabSubjects
		return m, nil
	case keymap.ActionMoveRight:
		d.tab = tabAnnouncements
		return m, nil
	case keymap.ActionEnroll:
		if d.loaded && !d.enrolled {
			return m, m.enrollCmd(d.batch.ID)
		}
		return m, nil
	case keymap.ActionSelect:
		if d.tab == tabSubjects {
			if !d.enrolled {
				m.errorMsg = "Enroll to open subjects"
				return m, nil
			}
			if subject, ok := d.subjects.Selected(); ok {
				m.router.Push(PageChapters)
				m.saveNavigation()
				return m, m.loadChaptersCmd(subject)
			}
		}
		return m, nil
	}

	if d.tab == tabAnnouncements {
		switch msg.String() {
		case "j", "down":
			if d.annCursor < len(d.announcements)-1 {
				d.annCursor++
			}
		case "k", "up":
			if d.annCursor > 0 {
				d.annCursor--
			}
		}
		return m, nil
	}

	d.subjects.Update(msg)
	m.saveNavigation()
	return m, nil
}

func (m Model) viewDetail() string {
	d := m.detail
	s := styles.T().S()
	width := m.width

	if !d.loaded {
		return s.Muted.Render("Loading batch…")
	}

	var lines []string

	title := s.Title.Render(render.TruncateEllipsis(render.Sanitize(d.batch.Name), width-20))
	if d.enrolled {
		title += s.Completed.Render("  ✓ enrolled")
	} else {
		title += s.Warning.Render("  " + formatPrice(d.batch.PriceCents))
	}
	lines = append(lines, title)

	meta := fmt.Sprintf("%s · %s – %s",
		d.batch.Language,
		d.batch.StartDate.Format("2 Jan 2006"),
		d.batch.EndDate.Format("2 Jan 2006"))
	if d.summary.Started > 0 || d.summary.Completed > 0 {
		meta += fmt.Sprintf(" · %d watched, %d completed", d.summary.Started, d.summary.Completed)
	}
	lines = append(lines, s.Muted.Render(meta))

	tabs := renderTabs([]string{"Subjects", "Announcements"}, int(d.tab))
	lines = append(lines, "", tabs, render.Separator(min(width, 60)))

	if d.tab == tabSubjects {
		if d.subjects.Len() == 0 {
			lines = append(lines, s.Muted.Render("No subjects yet"))
		}
		for i, subject := range d.subjects.Items() {
			line := render.Sanitize(subject.Name)
			if i == d.subjects.SelectedIndex() {
				line = s.Cursor.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
	} else {
		if len(d.announcements) == 0 {
			lines = append(lines, s.Muted.Render("No announcements"))
		}
		for i, a := range d.announcements {
			marker := "  "
			if i == d.annCursor {
				marker = s.Active.Render("▸ ")
			}
			when := s.Subtle.Render(humanize.Time(a.CreatedAt))
			text := render.TruncateEllipsis(render.Sanitize(a.Text), width-20)
			lines = append(lines, marker+text+"  "+when)
			if a.AttachmentURL != "" {
				lines = append(lines, "    "+s.Subtle.Render("📎 "+a.AttachmentURL))
			}
		}
	}

	lines = append(lines, "", s.Subtle.Render("h/l switch tab · enter open · e enroll · esc back"))
	return strings.Join(lines, "\n")
}

func renderTabs(names []string, active int) string {
	s := styles.T().S()
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, s.Active.Render(name))
		} else {
			parts = append(parts, s.Muted.Render(name))
		}
	}
	return strings.Join(parts, s.Subtle.Render(" │ "))
}

func formatPrice(cents int64) string {
	if cents == 0 {
		return "free"
	}
	return fmt.Sprintf("₹%s", humanize.Comma(cents/100))
}
