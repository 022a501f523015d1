package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/notify"
	"github.com/alakhsir/studium/internal/session"
	"github.com/alakhsir/studium/internal/surface"
	"github.com/alakhsir/studium/internal/ui/miniplayer"
)

// playerModel remembers which catalog item the active session plays, for
// progress attribution. Presentation state lives in the session controller
// and the transport, never here.
type playerModel struct {
	content catalog.ContentItem
	batchID string
}

// startPlayback adopts a resolved lecture: the transport loads the source
// and the controller presents it fullscreen, planting the navigation marker.
func (m Model) startPlayback(msg playbackReadyMsg) (Model, tea.Cmd) {
	m.player = playerModel{content: msg.content, batchID: msg.batchID}
	m.errorMsg = ""

	loadCmd := m.transport.SetSource(msg.content.URL, msg.resume)
	m.controller.StartPlayback(session.Session{
		SourceURL:    msg.content.URL,
		Title:        msg.content.Title,
		ThumbnailURL: msg.content.ThumbnailURL,
		StartOffset:  msg.resume,
	})

	return m, tea.Batch(loadCmd, ProgressSaveTickCmd())
}

// handlePlayerKey processes a key while the session is fullscreen.
func (m Model) handlePlayerKey(msg tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	t := m.transport

	switch action {
	case keymap.ActionQuit:
		m.saveWatchProgress()
		return m, tea.Quit

	case keymap.ActionBack:
		// The back step consumes the navigation marker; the controller
		// reinterprets it as a demotion to the mini-player.
		m.router.Back()
		return m, t.Activity()

	case keymap.ActionMinimize:
		m.controller.Minimize()
		return m, nil

	case keymap.ActionCloseSession:
		return m, m.closeSession()

	case keymap.ActionPlayPause:
		return m, t.TogglePlay()

	case keymap.ActionFullscreen:
		t.ToggleFullscreen()
		return m, t.Activity()

	case keymap.ActionMute:
		t.ToggleMute()
		return m, t.Activity()

	case keymap.ActionSkipForward:
		return m, t.Skip(surface.SkipStep)

	case keymap.ActionSkipBack:
		return m, t.Skip(-surface.SkipStep)

	case keymap.ActionVolumeUp:
		t.AdjustVolume(surface.VolumeStep)
		m.persistVolume()
		return m, t.Activity()

	case keymap.ActionVolumeDown:
		t.AdjustVolume(-surface.VolumeStep)
		m.persistVolume()
		return m, t.Activity()

	case keymap.ActionSpeedUp:
		t.SetRate(nextSpeed(t.Rate(), +1))
		return m, t.Activity()

	case keymap.ActionSpeedDown:
		t.SetRate(nextSpeed(t.Rate(), -1))
		return m, t.Activity()

	case keymap.ActionSettings:
		if t.Menu() == surface.MenuClosed {
			t.OpenMenu(surface.MenuMain)
			return m, nil
		}
		return m, t.CloseMenu()

	case keymap.ActionRetry:
		return m, t.Retry()
	}

	return m, nil
}

// nextSpeed steps through the selectable rate ladder.
func nextSpeed(current float64, dir int) float64 {
	idx := 0
	for i, s := range surface.Speeds {
		if s == current {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(surface.Speeds) {
		idx = len(surface.Speeds) - 1
	}
	return surface.Speeds[idx]
}

// closeSession persists final progress, stops the transport, and asks the
// controller to end the session, which removes the navigation marker.
func (m *Model) closeSession() tea.Cmd {
	m.saveWatchProgress()
	m.transport.Element().Pause()
	m.controller.Close()
	return nil
}

// saveWatchProgress records the current playhead for the active lecture.
func (m *Model) saveWatchProgress() {
	if m.player.content.ID == "" || !m.controller.Mode().IsActive() {
		return
	}
	pos := m.transport.Position()
	dur := m.transport.Duration()
	if dur <= 0 {
		return
	}
	_ = m.tracker.Record(m.player.content.ID, m.player.batchID, pos, dur)
}

func (m *Model) persistVolume() {
	_ = m.states.SaveVolume(m.transport.Volume(), m.transport.Muted())
}

// notifyMinimized sends a desktop notification when a session demotes to
// the mini-player. Replaces the previous one rather than stacking.
func (m *Model) notifyMinimized() {
	if m.notifier == nil {
		return
	}
	cur := m.controller.Current()
	if cur == nil {
		return
	}
	_ = m.notifier.Update(notify.Notification{
		Title:   cur.Title,
		Body:    "Playing in mini-player",
		Timeout: 3000,
		Urgency: notify.UrgencyLow,
	})
}

// miniPlayerState snapshots the transport for the docked bar.
func (m Model) miniPlayerState() miniplayer.State {
	title := m.player.content.Title
	if cur := m.controller.Current(); cur != nil {
		title = cur.Title
	}
	return miniplayer.State{
		Title:    title,
		Playing:  m.transport.State() == surface.Playing,
		Loading:  m.transport.State() == surface.Loading,
		Errored:  m.transport.State() == surface.Errored,
		Position: m.transport.Position(),
		Duration: m.transport.Duration(),
	}
}

func (m Model) viewPlayer() string {
	return m.transport.View(m.player.content.Title, m.width, m.height)
}
