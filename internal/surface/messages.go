package surface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/media"
)

const (
	// controlsIdleTimeout hides the transport controls after this much
	// pointer/key inactivity, but only while playing and with no
	// settings submenu open.
	controlsIdleTimeout = 3 * time.Second

	// skipAckDelay clears the transient ±10s acknowledgment.
	skipAckDelay = 550 * time.Millisecond

	// SkipStep is the relative seek applied by the skip controls.
	SkipStep = 10 * time.Second

	// VolumeStep is the keyboard volume increment.
	VolumeStep = 0.1

	// unmuteFallbackVolume restores audibility when unmuting at volume 0.
	unmuteFallbackVolume = 0.5
)

// ElementEventMsg wraps a media element event for the update loop.
type ElementEventMsg struct {
	Event media.Event
}

// TickMsg drives the position display while playing.
type TickMsg time.Time

// HideControlsMsg fires after the idle timeout. Version discards timers
// that were superseded by later activity.
type HideControlsMsg struct {
	Version int
}

// SkipAckClearMsg clears the directional skip acknowledgment. Version
// discards stale timers when skips are invoked in quick succession.
type SkipAckClearMsg struct {
	Version int
}

// WatchElement returns a command that relays the next element event.
func WatchElement(el media.Element) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-el.Events()
		if !ok {
			return nil
		}
		return ElementEventMsg{Event: ev}
	}
}

// TickCmd schedules the next position refresh.
func TickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func hideControlsCmd(version int) tea.Cmd {
	return tea.Tick(controlsIdleTimeout, func(time.Time) tea.Msg {
		return HideControlsMsg{Version: version}
	})
}

func skipAckCmd(version int) tea.Cmd {
	return tea.Tick(skipAckDelay, func(time.Time) tea.Msg {
		return SkipAckClearMsg{Version: version}
	})
}
