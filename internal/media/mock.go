// internal/media/mock.go
package media

import "time"

// Mock is a test double for Element.
type Mock struct {
	state     State
	position  time.Duration
	duration  time.Duration
	rate      float64
	volume    float64
	muted     bool
	sourceURL string

	loadCalls []string
	seekCalls []time.Duration
	reloads   int

	events chan Event
}

// NewMock creates a new mock element for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Idle,
		rate:   1.0,
		volume: 1.0,
		events: make(chan Event, 16),
	}
}

func (m *Mock) Load(url string) {
	m.loadCalls = append(m.loadCalls, url)
	m.sourceURL = url
	m.state = Loading
	m.position = 0
	m.duration = 0
}

func (m *Mock) Reload() {
	m.reloads++
	m.state = Loading
	m.position = 0
}

func (m *Mock) Play() {
	if m.state == Paused || m.state == Ended {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused, Ended:
		m.Play()
	default:
	}
}

func (m *Mock) State() State            { return m.state }
func (m *Mock) Position() time.Duration { return m.position }
func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	if pos < 0 {
		pos = 0
	}
	if m.duration > 0 && pos > m.duration {
		pos = m.duration
	}
	m.position = pos
}

func (m *Mock) Rate() float64        { return m.rate }
func (m *Mock) SetRate(rate float64) { m.rate = rate }

func (m *Mock) Volume() float64 { return m.volume }
func (m *Mock) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.volume = v
}

func (m *Mock) Muted() bool         { return m.muted }
func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Events() <-chan Event { return m.events }

// Test helpers

func (m *Mock) SetState(s State)              { m.state = s }
func (m *Mock) SetPosition(pos time.Duration) { m.position = pos }
func (m *Mock) SetDuration(dur time.Duration) { m.duration = dur }
func (m *Mock) LoadCalls() []string           { return m.loadCalls }
func (m *Mock) SeekCalls() []time.Duration    { return m.seekCalls }
func (m *Mock) Reloads() int                  { return m.reloads }
func (m *Mock) SourceURL() string             { return m.sourceURL }

// Emit delivers an element event to subscribers.
func (m *Mock) Emit(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// SimulateMetadata marks the source loaded with the given duration and
// emits MetadataLoaded.
func (m *Mock) SimulateMetadata(dur time.Duration) {
	m.duration = dur
	m.state = Paused
	m.Emit(MetadataLoaded{Duration: dur})
}

// SimulateFault moves the element to Errored and emits the fault.
func (m *Mock) SimulateFault(err error) {
	m.state = Errored
	m.Emit(Fault{Err: err})
}

// SimulateEnded completes the timeline.
func (m *Mock) SimulateEnded() {
	m.position = m.duration
	m.state = Ended
	m.Emit(EndedEvent{})
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)
