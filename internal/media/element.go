// Package media abstracts the underlying playback element.
//
// All real media work (decoding, rendering, buffering) belongs to the
// platform element; this package only models the element's observable
// surface: a timeline, a transport state, and a stream of events. The
// playback surface drives an Element and never assumes which
// implementation is behind it.
package media

import "time"

// State represents the element's transport state.
type State int

const (
	// Idle means no source has been loaded.
	Idle State = iota
	// Loading means a source is set but metadata is not yet known.
	Loading
	// Paused means metadata is known and the clock is stopped.
	Paused
	// Playing means the clock is advancing.
	Playing
	// Ended means the timeline reached its duration.
	Ended
	// Errored means the source failed to load or play.
	Errored
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Event is implemented by the closed set of element events.
type Event interface {
	mediaEvent()
}

// MetadataLoaded is emitted once a source's duration becomes known.
type MetadataLoaded struct {
	Duration time.Duration
}

// PlayingEvent is emitted when the clock starts advancing.
type PlayingEvent struct{}

// PausedEvent is emitted when the clock stops.
type PausedEvent struct{}

// EndedEvent is emitted when the timeline completes.
type EndedEvent struct{}

// Fault is emitted when the source fails to load or play.
type Fault struct {
	Err error
}

func (MetadataLoaded) mediaEvent() {}
func (PlayingEvent) mediaEvent()   {}
func (PausedEvent) mediaEvent()    {}
func (EndedEvent) mediaEvent()     {}
func (Fault) mediaEvent()          {}

// Element is the playback element contract.
//
// State mutators never return errors: faults surface through Events, and
// invalid calls for the current state are ignored, mirroring how a native
// media element behaves.
type Element interface {
	// Load sets a new source and begins metadata resolution. Resets
	// position to zero. A single attempt is made per call.
	Load(url string)
	// Reload retries the current source after a fault.
	Reload()

	Play()
	Pause()
	Toggle()

	State() State
	// Position is the current playhead position.
	Position() time.Duration
	// Duration is the known timeline length, or 0 while unknown.
	Duration() time.Duration
	// SeekTo moves the playhead, clamped to [0, duration].
	SeekTo(pos time.Duration)

	Rate() float64
	SetRate(rate float64)

	Volume() float64
	SetVolume(v float64)
	Muted() bool
	SetMuted(muted bool)

	// Events delivers element events. Buffered; slow consumers drop.
	Events() <-chan Event
}
