// internal/session/mode.go
package session

// Mode represents the presentation mode state machine.
//
// The state machine has three modes with the following valid transitions:
//
//	┌──────────┐   StartPlayback   ┌────────────┐
//	│  Closed  │ ─────────────────▶│ Fullscreen │
//	└──────────┘                   └────────────┘
//	     ▲                              │ │
//	     │ UserClose              minimize │ │ UserClose
//	     │                              ▼ │
//	     │                         ┌────────────┐
//	     └─────────────────────────│ Minimized  │
//	           UserClose,          └────────────┘
//	           PipLeft(paused)          │
//	                            maximize │
//	                                    ▼
//	                               Fullscreen
//
// "minimize" covers three distinct signals: an explicit UserMinimize, a
// BackIntent while fullscreen, and a PipEntered report from the platform.
// All three demote the presentation without touching the session itself.
//
// Invalid/No-op transitions (handled gracefully):
//   - Minimize while Minimized or Closed (ignored)
//   - Maximize while Fullscreen or Closed (ignored)
//   - PipEntered while Minimized (ignored, no double transition)
type Mode int

const (
	// Closed means no playback session exists and no surface is shown.
	Closed Mode = iota
	// Fullscreen means the playback surface owns the whole screen.
	Fullscreen
	// Minimized means playback continues in a floating mini-player.
	Minimized
)

// String returns the mode name for debugging.
func (m Mode) String() string {
	switch m {
	case Closed:
		return "Closed"
	case Fullscreen:
		return "Fullscreen"
	case Minimized:
		return "Minimized"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a playback session is presented (Fullscreen or Minimized).
func (m Mode) IsActive() bool {
	return m == Fullscreen || m == Minimized
}
