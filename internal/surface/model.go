// Package surface renders transport controls for the active playback
// session and drives the underlying media element. It does not own the
// presentation mode; promotion and demotion are requested through the
// session controller's callbacks.
package surface

import (
	"time"

	"github.com/alakhsir/studium/internal/media"
)

// Transport is the playback-surface component model. It is the sole writer
// of transport sub-state (displayed time, volume, rate, menus); it only
// reads presentation mode, which belongs to the session controller.
type Transport struct {
	element media.Element
	display Display

	sourceURL string
	state     LoadState
	faultMsg  string

	// Display copies of the media clock. While scrubbing, position
	// detaches from the clock and follows the drag instead.
	position time.Duration
	duration time.Duration

	scrubbing bool
	scrubPos  time.Duration

	volume float64
	muted  bool
	rate   float64

	quality string
	menu    Menu

	controlsVisible bool
	hideVersion     int

	// skipDir is -1/0/+1 for the transient directional acknowledgment.
	skipDir     int
	skipVersion int

	// autoplay marks a pending play attempt once metadata arrives.
	autoplay    bool
	startOffset time.Duration
}

// NewTransport creates a transport bound to the given element and display.
func NewTransport(el media.Element, d Display) *Transport {
	return &Transport{
		element:         el,
		display:         d,
		state:           Loading,
		volume:          1.0,
		rate:            1.0,
		quality:         Qualities[0],
		controlsVisible: true,
	}
}

// Element exposes the underlying media element (for paused-state queries
// by the session controller's PiP-leave heuristic).
func (t *Transport) Element() media.Element { return t.element }

// State returns the current transport state.
func (t *Transport) State() LoadState { return t.state }

// SourceURL returns the active source.
func (t *Transport) SourceURL() string { return t.sourceURL }

// FaultMessage returns the user-facing message of the last fault.
func (t *Transport) FaultMessage() string { return t.faultMsg }

// Position returns the displayed position: the scrub target while
// scrubbing, the media clock otherwise.
func (t *Transport) Position() time.Duration {
	if t.scrubbing {
		return t.scrubPos
	}
	return t.position
}

// Duration returns the known duration, or 0 while unknown.
func (t *Transport) Duration() time.Duration { return t.duration }

// Scrubbing reports whether a seek drag is in progress.
func (t *Transport) Scrubbing() bool { return t.scrubbing }

// Volume returns the volume level in [0, 1].
func (t *Transport) Volume() float64 { return t.volume }

// Muted reports the mute state.
func (t *Transport) Muted() bool { return t.muted }

// Rate returns the session-scoped playback rate.
func (t *Transport) Rate() float64 { return t.rate }

// Quality returns the selected quality label.
func (t *Transport) Quality() string { return t.quality }

// Menu returns the open settings submenu, or MenuClosed.
func (t *Transport) Menu() Menu { return t.menu }

// ControlsVisible reports whether the transport chrome is shown.
func (t *Transport) ControlsVisible() bool { return t.controlsVisible }

// SkipAck returns the directional skip acknowledgment: -1 backward,
// +1 forward, 0 none.
func (t *Transport) SkipAck() int { return t.skipDir }

// Fullscreen reports the display's fullscreen state.
func (t *Transport) Fullscreen() bool { return t.display.Fullscreen() }

// Paused reports whether the element is in a non-advancing state. This is
// the observable the PiP-leave close heuristic relies on.
func (t *Transport) Paused() bool {
	return t.element.State() != media.Playing
}
