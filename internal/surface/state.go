// internal/surface/state.go
package surface

// LoadState represents the transport state machine, reset whenever the
// source URL changes.
//
//	Loading ──metadata──▶ Ready ⇄ Playing ⇄ Paused
//	   │                            │
//	   │ fault                      │ complete
//	   ▼                            ▼
//	Errored ◀──fault── (Playing/Paused)   Ended
//
// Errored is reachable from Loading and from Playing/Paused; Ended is
// terminal for the current source and leaves only via a new load or a
// seek-then-play.
type LoadState int

const (
	// Loading means the source is set but metadata is unknown; progress
	// and time displays are zeroed.
	Loading LoadState = iota
	// Ready means metadata arrived but the autoplay attempt has not
	// reported playing yet.
	Ready
	// Playing means the media clock is advancing.
	Playing
	// Paused means playback is suspended at the current position.
	Paused
	// Ended means the media completed.
	Ended
	// Errored means a playback fault occurred; a retry affordance
	// re-triggers a load of the same source.
	Errored
)

// String returns the state name for debugging.
func (s LoadState) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Menu identifies the open settings submenu, if any.
type Menu int

const (
	MenuClosed Menu = iota
	MenuMain
	MenuSpeed
	MenuQuality
)

// Speeds is the selectable playback-rate set, session-scoped.
var Speeds = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

// Qualities is the selectable quality ladder. Selection is display-only;
// the source itself decides what it serves.
var Qualities = []string{"Auto", "1080p", "720p", "480p", "360p"}
