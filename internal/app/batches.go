package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/ui"
	"github.com/alakhsir/studium/internal/ui/list"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

type batchesModel struct {
	list     list.Model[catalog.Batch]
	all      []catalog.Batch
	enrolled map[string]bool

	filtering bool
	filter    string

	loaded bool
}

func newBatchesModel() batchesModel {
	l := list.New[catalog.Batch](ui.ScrollMargin)
	l.SetFocused(true)
	return batchesModel{
		list:     l,
		enrolled: map[string]bool{},
	}
}

func (b *batchesModel) setBatches(batches []catalog.Batch, enrolled map[string]bool) {
	b.all = batches
	b.enrolled = enrolled
	b.loaded = true
	b.applyFilter()
}

func (b *batchesModel) applyFilter() {
	b.list.SetItems(catalog.FilterBatches(b.all, b.filter))
}

func (m Model) handleBatchesKey(msg tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	b := &m.batches

	// Filter entry mode captures every key until confirmed or cancelled.
	if b.filtering {
		switch msg.String() {
		case "enter":
			b.filtering = false
		case "esc":
			b.filtering = false
			b.filter = ""
			b.applyFilter()
		case "backspace":
			if b.filter != "" {
				b.filter = b.filter[:len(b.filter)-1]
				b.applyFilter()
			}
		default:
			if len(msg.String()) == 1 {
				b.filter += msg.String()
				b.applyFilter()
			}
		}
		return m, nil
	}

	switch action {
	case keymap.ActionSearch:
		b.filtering = true
		return m, nil

	case keymap.ActionEnroll:
		if batch, ok := b.list.Selected(); ok && !b.enrolled[batch.ID] {
			return m, m.enrollCmd(batch.ID)
		}
		return m, nil

	case keymap.ActionProfile:
		m.router.Push(PageProfile)
		return m, nil

	case keymap.ActionSelect:
		if batch, ok := b.list.Selected(); ok {
			m.router.Push(PageBatchDetail)
			m.saveNavigation()
			return m, m.loadBatchDetailCmd(batch.ID)
		}
		return m, nil
	}

	b.list.Update(msg)
	m.saveNavigation()
	return m, nil
}

func (m Model) viewBatches() string {
	b := m.batches
	s := styles.T().S()
	width := m.width

	var lines []string

	header := s.Title.Render("Batches")
	if b.filtering || b.filter != "" {
		header += s.Muted.Render("  /" + b.filter)
		if b.filtering {
			header += s.Base.Render("█")
		}
	}
	lines = append(lines, header, render.Separator(min(width, 60)))

	if !b.loaded {
		lines = append(lines, s.Muted.Render("Loading batches…"))
		return strings.Join(lines, "\n")
	}
	if b.list.Len() == 0 {
		lines = append(lines, s.Muted.Render("No batches match"))
		return strings.Join(lines, "\n")
	}

	start, end := b.list.VisibleRange(ui.PanelOverhead)
	items := b.list.Items()
	for i := start; i < end; i++ {
		batch := items[i]

		badge := ""
		if b.enrolled[batch.ID] {
			badge = s.Completed.Render(" ✓ enrolled")
		} else if batch.PriceCents == 0 {
			badge = s.Warning.Render(" free")
		}

		meta := fmt.Sprintf("%s · starts %s", batch.Language, humanize.Time(batch.StartDate))
		line := render.TruncateEllipsis(render.Sanitize(batch.Name), width-30) +
			badge + "  " + s.Subtle.Render(meta)

		if i == b.list.SelectedIndex() {
			line = s.Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", s.Subtle.Render("enter open · e enroll · / filter · p profile · q quit"))
	return strings.Join(lines, "\n")
}
