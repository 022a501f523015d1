package session

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alakhsir/studium/internal/pip"
)

const defaultPollInterval = 2 * time.Second

// Controller is the single source of truth for "is something playing, and
// how is it presented". It serializes every event source (user calls, the
// back handler, PiP lifecycle events, the reconciliation poll) through one
// dispatch path and applies them with the pure reducer.
//
// No operation propagates an error: platform failures are logged and leave
// the mode and session unchanged.
type Controller struct {
	mu sync.Mutex
	st state

	nav    NavStack
	pip    pip.Host
	paused func() bool

	subs   []*Subscription
	subsMu sync.RWMutex

	pollEvery time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithPollInterval overrides the PiP reconciliation poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) { c.pollEvery = d }
}

// WithPausedFunc sets how the controller observes the media element's
// paused state when translating a PiP leave. Defaults to "not paused",
// which keeps the session alive.
func WithPausedFunc(fn func() bool) Option {
	return func(c *Controller) { c.paused = fn }
}

// NewController creates a controller bound to the given capabilities and
// starts its platform listeners.
func NewController(nav NavStack, host pip.Host, opts ...Option) *Controller {
	c := &Controller{
		nav:       nav,
		pip:       host,
		paused:    func() bool { return false },
		pollEvery: defaultPollInterval,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	nav.SetBackHandler(func() {
		c.Dispatch(BackIntent{})
	})

	go c.watchPip()
	go c.pollPip()

	return c
}

// StartPlayback replaces any existing session and presents it fullscreen.
// A descriptor without a source URL is ignored.
func (c *Controller) StartPlayback(s Session) {
	if !s.Valid() {
		logrus.Warn("session: start playback ignored, empty source url")
		return
	}
	c.Dispatch(StartPlayback{Session: s})
}

// Minimize demotes a fullscreen presentation to the mini-player.
func (c *Controller) Minimize() { c.Dispatch(UserMinimize{}) }

// Maximize promotes the mini-player back to fullscreen, leaving PiP first
// if a PiP surface is active.
func (c *Controller) Maximize() { c.Dispatch(UserMaximize{}) }

// Close ends the session and removes the navigation marker.
func (c *Controller) Close() { c.Dispatch(UserClose{}) }

// Mode returns the current presentation mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.mode
}

// Current returns a copy of the active session, or nil if none.
func (c *Controller) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.session == nil {
		return nil
	}
	s := *c.st.session
	return &s
}

// PipActive reports whether an OS-level PiP surface currently claims the
// session. The mini-player suppresses itself while this is true.
func (c *Controller) PipActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.pipActive
}

// Subscribe creates a new outward notification subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Dispatch feeds one tagged event through the reducer and performs the
// resulting platform effects. Safe for concurrent use; effects run outside
// the state lock so a marker pop may re-enter as BackIntent.
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	prev := c.st.mode
	next, fx := reduce(c.st, ev)
	c.st = next
	cur := next.mode
	c.mu.Unlock()

	for _, f := range fx {
		c.run(f)
	}

	if prev != cur {
		c.notify(ModeChange{Previous: prev, Current: cur})
	}
}

func (c *Controller) run(f effect) {
	switch f.kind {
	case fxPushMarker:
		c.nav.PushMarker()
	case fxPopMarker:
		c.nav.PopMarker()
	case fxExitPip:
		gen := f.generation
		go func() {
			if err := c.pip.RequestExit(); err != nil {
				logrus.WithError(err).Debug("session: pip exit rejected")
			}
			// Flip the mode whether the exit succeeded or not; the
			// reducer discards the completion if the session changed.
			c.Dispatch(pipExitDone{generation: gen})
		}()
	}
}

func (c *Controller) notify(e ModeChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendMode(e)
	}
}

// watchPip translates raw PiP lifecycle events into tagged session events.
func (c *Controller) watchPip() {
	events := c.pip.Events()
	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Type {
			case pip.EventEntered:
				c.Dispatch(PipEntered{})
			case pip.EventLeft:
				c.Dispatch(PipLeft{PausedAtExit: c.paused()})
			}
		}
	}
}

// pollPip is the low-frequency safety net: it re-reads the platform's
// actual PiP flag and corrects drift from missed events.
func (c *Controller) pollPip() {
	ticker := time.NewTicker(c.pollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.Dispatch(PipSync{Active: c.pip.Active()})
		}
	}
}

// Shutdown stops the platform listeners and closes all subscriptions.
func (c *Controller) Shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.subsMu.Lock()
		for _, sub := range c.subs {
			sub.close()
		}
		c.subs = nil
		c.subsMu.Unlock()
	})
}
