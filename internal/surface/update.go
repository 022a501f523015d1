package surface

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/alakhsir/studium/internal/media"
)

// Update handles transport messages. Key handling lives with the
// application keymap, which invokes the action methods directly.
func (t *Transport) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ElementEventMsg:
		return t.handleElementEvent(msg.Event)

	case TickMsg:
		if !t.scrubbing {
			t.position = t.element.Position()
			if d := t.element.Duration(); d > 0 {
				t.duration = d
			}
		}
		if t.state == Playing {
			return TickCmd()
		}
		return nil

	case HideControlsMsg:
		if msg.Version != t.hideVersion {
			return nil
		}
		if t.state == Playing && t.menu == MenuClosed && !t.scrubbing {
			t.controlsVisible = false
			t.menu = MenuClosed
		}
		return nil

	case SkipAckClearMsg:
		if msg.Version == t.skipVersion {
			t.skipDir = 0
		}
		return nil
	}

	return nil
}

func (t *Transport) handleElementEvent(ev media.Event) tea.Cmd {
	cmds := []tea.Cmd{WatchElement(t.element)}

	switch ev := ev.(type) {
	case media.MetadataLoaded:
		t.duration = ev.Duration
		t.state = Ready
		if t.startOffset > 0 {
			t.SeekTo(t.startOffset)
			t.startOffset = 0
		}
		if t.autoplay {
			t.autoplay = false
			t.element.SetRate(t.rate)
			t.element.Play()
		}

	case media.PlayingEvent:
		t.state = Playing
		cmds = append(cmds, TickCmd())
		if cmd := t.Activity(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case media.PausedEvent:
		if t.state == Playing || t.state == Ready {
			t.state = Paused
		}
		t.controlsVisible = true

	case media.EndedEvent:
		t.state = Ended
		t.position = t.duration
		t.controlsVisible = true

	case media.Fault:
		t.state = Errored
		t.faultMsg = "Playback Error"
		t.controlsVisible = true
		logrus.WithError(ev.Err).WithField("source", t.sourceURL).
			Warn("surface: media fault")
	}

	return tea.Batch(cmds...)
}
