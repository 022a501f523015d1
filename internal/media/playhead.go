package media

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// ErrUnsupportedSource is reported for URLs the element cannot load.
var ErrUnsupportedSource = errors.New("unsupported media source")

const (
	defaultLoadDelay = 150 * time.Millisecond
	defaultDuration  = 45 * time.Minute
	endCheckInterval = 200 * time.Millisecond
	eventBuffer      = 16
)

// ProbeFunc resolves a source URL to its timeline duration. It stands in
// for the platform's metadata resolution; the application wires one that
// consults the content catalog.
type ProbeFunc func(sourceURL string) (time.Duration, error)

// DefaultProbe accepts http(s) sources and reports a fixed fallback
// duration for them.
func DefaultProbe(sourceURL string) (time.Duration, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return 0, fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}
	return defaultDuration, nil
}

// Playhead is a wall-clock playback timeline: the Element implementation
// used outside tests. Position derives from a baseline plus elapsed wall
// time scaled by the playback rate, so reads never need a background
// updater; a low-frequency ticker only watches for the end of the
// timeline.
type Playhead struct {
	mu sync.Mutex

	sourceURL string
	state     State
	duration  time.Duration

	base      time.Duration // position when the clock last started/stopped
	startedAt time.Time     // wall time the clock last started
	rate      float64
	volume    float64
	muted     bool

	probe     ProbeFunc
	loadDelay time.Duration
	loadSeq   int // discards metadata for superseded loads

	events chan Event
	done   chan struct{}
	once   sync.Once
}

// PlayheadOption configures a Playhead.
type PlayheadOption func(*Playhead)

// WithProbe sets the metadata resolver.
func WithProbe(p ProbeFunc) PlayheadOption {
	return func(ph *Playhead) { ph.probe = p }
}

// WithLoadDelay sets the simulated metadata-resolution latency.
func WithLoadDelay(d time.Duration) PlayheadOption {
	return func(ph *Playhead) { ph.loadDelay = d }
}

// NewPlayhead creates an idle playhead.
func NewPlayhead(opts ...PlayheadOption) *Playhead {
	ph := &Playhead{
		state:     Idle,
		rate:      1.0,
		volume:    1.0,
		probe:     DefaultProbe,
		loadDelay: defaultLoadDelay,
		events:    make(chan Event, eventBuffer),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ph)
	}
	go ph.watchEnd()
	return ph
}

func (ph *Playhead) Load(sourceURL string) {
	ph.mu.Lock()
	ph.sourceURL = sourceURL
	ph.state = Loading
	ph.duration = 0
	ph.base = 0
	ph.loadSeq++
	seq := ph.loadSeq
	ph.mu.Unlock()

	go ph.resolve(sourceURL, seq)
}

func (ph *Playhead) Reload() {
	ph.mu.Lock()
	src := ph.sourceURL
	ph.mu.Unlock()
	if src == "" {
		return
	}
	ph.Load(src)
}

func (ph *Playhead) resolve(sourceURL string, seq int) {
	if ph.loadDelay > 0 {
		select {
		case <-time.After(ph.loadDelay):
		case <-ph.done:
			return
		}
	}

	dur, err := ph.probe(sourceURL)

	ph.mu.Lock()
	if seq != ph.loadSeq {
		// A newer Load superseded this one.
		ph.mu.Unlock()
		return
	}
	if err != nil {
		ph.state = Errored
		ph.mu.Unlock()
		ph.emit(Fault{Err: err})
		return
	}
	ph.duration = dur
	ph.state = Paused
	ph.mu.Unlock()
	ph.emit(MetadataLoaded{Duration: dur})
}

func (ph *Playhead) Play() {
	ph.mu.Lock()
	if ph.state != Paused && ph.state != Ended {
		ph.mu.Unlock()
		return
	}
	if ph.state == Ended {
		ph.base = 0
	}
	ph.state = Playing
	ph.startedAt = time.Now()
	ph.mu.Unlock()
	ph.emit(PlayingEvent{})
}

func (ph *Playhead) Pause() {
	ph.mu.Lock()
	if ph.state != Playing {
		ph.mu.Unlock()
		return
	}
	ph.base = ph.positionLocked()
	ph.state = Paused
	ph.mu.Unlock()
	ph.emit(PausedEvent{})
}

func (ph *Playhead) Toggle() {
	switch ph.State() {
	case Playing:
		ph.Pause()
	case Paused, Ended:
		ph.Play()
	default:
		// Nothing to toggle before metadata or after a fault.
	}
}

func (ph *Playhead) State() State {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.state
}

func (ph *Playhead) Position() time.Duration {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.positionLocked()
}

func (ph *Playhead) positionLocked() time.Duration {
	if ph.state != Playing {
		return ph.base
	}
	elapsed := time.Duration(float64(time.Since(ph.startedAt)) * ph.rate)
	pos := ph.base + elapsed
	if ph.duration > 0 && pos > ph.duration {
		return ph.duration
	}
	return pos
}

func (ph *Playhead) Duration() time.Duration {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.duration
}

func (ph *Playhead) SeekTo(pos time.Duration) {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	if ph.state == Idle || ph.state == Loading || ph.state == Errored {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if ph.duration > 0 && pos > ph.duration {
		pos = ph.duration
	}
	ph.base = pos
	ph.startedAt = time.Now()
	if ph.state == Ended && pos < ph.duration {
		ph.state = Paused
	}
}

func (ph *Playhead) Rate() float64 {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.rate
}

func (ph *Playhead) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	ph.mu.Lock()
	defer ph.mu.Unlock()
	// Rebase so the rate change applies from the current position.
	ph.base = ph.positionLocked()
	ph.startedAt = time.Now()
	ph.rate = rate
}

func (ph *Playhead) Volume() float64 {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.volume
}

func (ph *Playhead) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	ph.mu.Lock()
	defer ph.mu.Unlock()
	ph.volume = v
}

func (ph *Playhead) Muted() bool {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	return ph.muted
}

func (ph *Playhead) SetMuted(muted bool) {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	ph.muted = muted
}

func (ph *Playhead) Events() <-chan Event { return ph.events }

// Close stops the end watcher. The playhead must not be used afterwards.
func (ph *Playhead) Close() {
	ph.once.Do(func() { close(ph.done) })
}

func (ph *Playhead) emit(ev Event) {
	select {
	case ph.events <- ev:
	default:
		// Drop if buffer full
	}
}

// watchEnd flips Playing to Ended once the clock reaches the duration.
func (ph *Playhead) watchEnd() {
	ticker := time.NewTicker(endCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ph.done:
			return
		case <-ticker.C:
			ph.mu.Lock()
			ended := ph.state == Playing && ph.duration > 0 &&
				ph.positionLocked() >= ph.duration
			if ended {
				ph.base = ph.duration
				ph.state = Ended
			}
			ph.mu.Unlock()
			if ended {
				ph.emit(EndedEvent{})
			}
		}
	}
}

// Verify Playhead implements Element at compile time.
var _ Element = (*Playhead)(nil)
