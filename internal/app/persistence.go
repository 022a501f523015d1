package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/state"
)

// saveNavigation persists where the user is so the next launch can return
// there. Writes are debounced by the state manager.
func (m *Model) saveNavigation() {
	nav := state.NavigationState{Page: m.page().String()}

	switch m.page() {
	case PageBatches:
		if b, ok := m.batches.list.Selected(); ok {
			nav.SelectedID = b.ID
		}
	case PageBatchDetail:
		nav.BatchID = m.detail.batch.ID
		if s, ok := m.detail.subjects.Selected(); ok {
			nav.SelectedID = s.ID
		}
	case PageChapters:
		nav.BatchID = m.detail.batch.ID
		nav.SubjectID = m.chapters.subject.ID
		if c, ok := m.chapters.list.Selected(); ok {
			nav.SelectedID = c.ID
		}
	case PageContents:
		nav.BatchID = m.detail.batch.ID
		nav.SubjectID = m.chapters.subject.ID
		nav.ChapterID = m.contents.chapter.ID
		if c, ok := m.contents.list.Selected(); ok {
			nav.SelectedID = c.ID
		}
	}

	m.states.SaveNavigation(nav)
}

// restoreNavigation reopens the last visited batch on top of the batches
// page. Deeper positions are not replayed: subject and chapter restores
// would chain loads against pages that may have changed server-side, so the
// batch page is the deepest safe return point.
func (m *Model) restoreNavigation() tea.Cmd {
	nav, err := m.states.GetNavigation()
	if err != nil || nav == nil || nav.BatchID == "" {
		return nil
	}
	m.router.Push(PageBatchDetail)
	return m.loadBatchDetailCmd(nav.BatchID)
}
