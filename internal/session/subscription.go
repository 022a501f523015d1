package session

const eventBufferSize = 16

// ModeChange is emitted whenever the presentation mode changes.
type ModeChange struct {
	Previous Mode
	Current  Mode
}

// Subscription provides outward notification channels for a subscriber.
// Layout code listens here to suppress or restore the mini-player overlay.
type Subscription struct {
	ModeChanged <-chan ModeChange
	Minimized   <-chan struct{}
	Maximized   <-chan struct{}
	Closed      <-chan struct{}
	Done        <-chan struct{}

	// Internal write channels
	modeCh chan ModeChange
	minCh  chan struct{}
	maxCh  chan struct{}
	clsCh  chan struct{}
	doneCh chan struct{}
}

// newSubscription creates a subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		modeCh: make(chan ModeChange, eventBufferSize),
		minCh:  make(chan struct{}, eventBufferSize),
		maxCh:  make(chan struct{}, eventBufferSize),
		clsCh:  make(chan struct{}, eventBufferSize),
		doneCh: make(chan struct{}),
	}
	s.ModeChanged = s.modeCh
	s.Minimized = s.minCh
	s.Maximized = s.maxCh
	s.Closed = s.clsCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendMode sends a mode change (non-blocking).
func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
		// Drop if buffer full
	}

	var ch chan struct{}
	switch e.Current {
	case Minimized:
		ch = s.minCh
	case Fullscreen:
		ch = s.maxCh
	case Closed:
		ch = s.clsCh
	}
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}
