package surface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// SetSource resets the transport for a new source and starts loading it.
// The playback rate returns to 1x: speed is session-scoped and a new
// source is a new session.
func (t *Transport) SetSource(url string, startOffset time.Duration) tea.Cmd {
	t.sourceURL = url
	t.state = Loading
	t.faultMsg = ""
	t.position = 0
	t.duration = 0
	t.scrubbing = false
	t.skipDir = 0
	t.menu = MenuClosed
	t.rate = 1.0
	t.autoplay = true
	t.startOffset = startOffset
	t.controlsVisible = true

	t.element.Load(url)
	return WatchElement(t.element)
}

// Retry re-triggers a load of the same source after a fault.
func (t *Transport) Retry() tea.Cmd {
	if t.state != Errored {
		return nil
	}
	t.state = Loading
	t.faultMsg = ""
	t.position = 0
	t.autoplay = true
	t.element.Reload()
	return WatchElement(t.element)
}

// TogglePlay flips between playing and paused.
func (t *Transport) TogglePlay() tea.Cmd {
	switch t.state {
	case Playing:
		t.element.Pause()
		// Pausing always reveals the controls.
		t.controlsVisible = true
		return nil
	case Ready, Paused, Ended:
		t.element.Play()
		return t.Activity()
	default:
		return nil
	}
}

// SeekTo applies an absolute seek clamped to [0, duration].
func (t *Transport) SeekTo(pos time.Duration) {
	pos = t.clamp(pos)
	t.element.SeekTo(pos)
	t.position = pos
	if t.state == Ended && pos < t.duration {
		t.state = Paused
	}
}

// Skip applies a relative seek and raises the directional acknowledgment,
// restarting it cleanly if one is already showing.
func (t *Transport) Skip(delta time.Duration) tea.Cmd {
	if t.state == Loading || t.state == Errored {
		return nil
	}
	t.SeekTo(t.position + delta)

	if delta < 0 {
		t.skipDir = -1
	} else {
		t.skipDir = 1
	}
	t.skipVersion++
	cmds := []tea.Cmd{skipAckCmd(t.skipVersion)}
	if cmd := t.Activity(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ScrubStart detaches the position display from the media clock. The idle
// hide timer is suspended for the duration of the drag.
func (t *Transport) ScrubStart() {
	if t.state == Loading || t.state == Errored {
		return
	}
	t.scrubbing = true
	t.scrubPos = t.position
	t.hideVersion++ // invalidate any pending hide
	t.controlsVisible = true
}

// ScrubMove follows the drag without seeking.
func (t *Transport) ScrubMove(pos time.Duration) {
	if !t.scrubbing {
		return
	}
	t.scrubPos = t.clamp(pos)
}

// ScrubEnd re-attaches the clock binding and applies the released value as
// a single seek.
func (t *Transport) ScrubEnd() tea.Cmd {
	if !t.scrubbing {
		return nil
	}
	t.scrubbing = false
	t.SeekTo(t.scrubPos)
	return t.Activity()
}

// SetVolume sets the volume level. Zero implies muted; any audible level
// unmutes, keeping the two controls consistent.
func (t *Transport) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	t.volume = v
	t.element.SetVolume(v)
	t.muted = v == 0
	t.element.SetMuted(t.muted)
}

// AdjustVolume shifts the volume by delta, clamped to [0, 1].
func (t *Transport) AdjustVolume(delta float64) {
	t.SetVolume(t.volume + delta)
}

// ToggleMute flips the mute state. Unmuting at volume zero restores a
// nonzero default rather than leaving effective volume at zero.
func (t *Transport) ToggleMute() {
	muted := !t.muted
	if !muted && t.volume == 0 {
		t.volume = unmuteFallbackVolume
		t.element.SetVolume(t.volume)
	}
	t.muted = muted
	t.element.SetMuted(muted)
}

// SetRate applies a playback rate from the discrete speed set.
func (t *Transport) SetRate(rate float64) {
	valid := false
	for _, s := range Speeds {
		if s == rate {
			valid = true
			break
		}
	}
	if !valid {
		return
	}
	t.rate = rate
	t.element.SetRate(rate)
	t.CloseMenu()
}

// SetQuality records the quality selection and closes the menu.
func (t *Transport) SetQuality(q string) {
	for _, known := range Qualities {
		if known == q {
			t.quality = q
			break
		}
	}
	t.CloseMenu()
}

// OpenMenu opens a settings submenu, suppressing the idle-hide timer
// until it closes.
func (t *Transport) OpenMenu(m Menu) {
	if m == MenuClosed {
		t.CloseMenu()
		return
	}
	t.menu = m
	t.hideVersion++ // suspend idle hide while a submenu is open
	t.controlsVisible = true
}

// CloseMenu closes any open submenu and restarts the idle-hide timer.
func (t *Transport) CloseMenu() tea.Cmd {
	t.menu = MenuClosed
	return t.Activity()
}

// ToggleFullscreen requests or leaves platform fullscreen. Rejections are
// swallowed: they leave the transport unchanged beyond a diagnostic log.
func (t *Transport) ToggleFullscreen() {
	if t.display.Fullscreen() {
		if err := t.display.ExitFullscreen(); err != nil {
			logrus.WithError(err).Debug("surface: exit fullscreen rejected")
		}
		if err := t.display.UnlockOrientation(); err != nil {
			logrus.WithError(err).Debug("surface: orientation unlock rejected")
		}
		return
	}
	if err := t.display.RequestFullscreen(); err != nil {
		logrus.WithError(err).Debug("surface: fullscreen request rejected")
		return
	}
	if err := t.display.LockOrientation(); err != nil {
		logrus.WithError(err).Debug("surface: orientation lock rejected")
	}
}

// Activity registers pointer/key activity: controls show, and a fresh
// idle-hide timer starts if playback is running with no submenu open.
func (t *Transport) Activity() tea.Cmd {
	t.controlsVisible = true
	t.hideVersion++
	if t.state == Playing && t.menu == MenuClosed && !t.scrubbing {
		return hideControlsCmd(t.hideVersion)
	}
	return nil
}

func (t *Transport) clamp(pos time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if t.duration > 0 && pos > t.duration {
		return t.duration
	}
	return pos
}
