// Package pip abstracts the platform's Picture-in-Picture capability.
//
// The session controller never talks to a concrete PiP implementation; it
// depends on Host so the reconciliation logic is testable with a fake.
package pip

// EventType identifies a PiP lifecycle transition.
type EventType int

const (
	// EventEntered fires when the platform reports entry into PiP,
	// regardless of who initiated it.
	EventEntered EventType = iota
	// EventLeft fires when the PiP surface goes away, either because the
	// user closed it or returned to the application.
	EventLeft
)

// Event is a raw PiP lifecycle notification from the platform.
type Event struct {
	Type EventType
}

// Host is the injected PiP capability.
type Host interface {
	// Active reports whether a PiP surface currently exists. Used by the
	// periodic reconciliation to correct missed events.
	Active() bool

	// RequestExit asks the platform to dismiss the PiP surface. Best
	// effort: a rejection is non-fatal and must not change session state.
	RequestExit() error

	// Events delivers lifecycle transitions. The channel is never closed
	// while the host is in use.
	Events() <-chan Event
}

// Nop is a Host for platforms without PiP support.
type Nop struct{}

// NewNop returns a Host that reports no PiP surface and never emits events.
func NewNop() *Nop { return &Nop{} }

func (*Nop) Active() bool       { return false }
func (*Nop) RequestExit() error { return nil }

func (*Nop) Events() <-chan Event { return nopEvents }

var nopEvents = make(chan Event)

// Verify Nop implements Host at compile time.
var _ Host = (*Nop)(nil)
