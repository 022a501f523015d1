package pip

import "sync"

// Fake is a test double for Host.
type Fake struct {
	mu        sync.Mutex
	active    bool
	exitErr   error
	exitCalls int
	events    chan Event
}

// NewFake creates a fake PiP host for testing.
func NewFake() *Fake {
	return &Fake{events: make(chan Event, 8)}
}

func (f *Fake) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *Fake) RequestExit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exitCalls++
	if f.exitErr != nil {
		return f.exitErr
	}
	f.active = false
	return nil
}

func (f *Fake) Events() <-chan Event { return f.events }

// Test helpers

// SetActive sets the reported PiP-active flag without emitting an event,
// simulating drift between platform state and delivered events.
func (f *Fake) SetActive(active bool) {
	f.mu.Lock()
	f.active = active
	f.mu.Unlock()
}

// EmitEnter marks PiP active and delivers an EventEntered.
func (f *Fake) EmitEnter() {
	f.mu.Lock()
	f.active = true
	f.mu.Unlock()
	f.events <- Event{Type: EventEntered}
}

// EmitLeave marks PiP inactive and delivers an EventLeft.
func (f *Fake) EmitLeave() {
	f.mu.Lock()
	f.active = false
	f.mu.Unlock()
	f.events <- Event{Type: EventLeft}
}

// SetExitError makes RequestExit fail without clearing the active flag.
func (f *Fake) SetExitError(err error) {
	f.mu.Lock()
	f.exitErr = err
	f.mu.Unlock()
}

// ExitCalls returns how many times RequestExit was invoked.
func (f *Fake) ExitCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exitCalls
}

// Verify Fake implements Host at compile time.
var _ Host = (*Fake)(nil)
