package session

import (
	"errors"
	"testing"
	"time"

	"github.com/alakhsir/studium/internal/pip"
)

func newTestController(t *testing.T) (*Controller, *FakeNavStack, *pip.Fake) {
	t.Helper()
	nav := NewFakeNavStack()
	host := pip.NewFake()
	c := NewController(nav, host, WithPollInterval(time.Hour))
	t.Cleanup(c.Shutdown)
	return c, nav, host
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// Scenario: play, back gesture, maximize, close.
func TestController_BackGestureScenario(t *testing.T) {
	c, nav, _ := newTestController(t)

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: "Lecture 1"})
	if c.Mode() != Fullscreen {
		t.Fatalf("Mode() = %v, want Fullscreen", c.Mode())
	}
	if nav.Markers() != 1 {
		t.Fatalf("Markers() = %d, want 1", nav.Markers())
	}

	nav.SimulateBack()
	if c.Mode() != Minimized {
		t.Errorf("Mode() = %v after back, want Minimized", c.Mode())
	}
	if cur := c.Current(); cur == nil || cur.Title != "Lecture 1" {
		t.Errorf("Current() = %v, want Lecture 1 retained", cur)
	}

	c.Maximize()
	if c.Mode() != Fullscreen {
		t.Errorf("Mode() = %v after maximize, want Fullscreen", c.Mode())
	}

	c.Close()
	if c.Mode() != Closed || c.Current() != nil {
		t.Errorf("Mode()=%v Current()=%v after close, want Closed/nil", c.Mode(), c.Current())
	}
	// The back gesture consumed the original marker, maximize re-armed
	// it, and close popped the replacement.
	if nav.Markers() != 0 {
		t.Errorf("Markers() = %d after close, want 0", nav.Markers())
	}
}

// Scenario: play, platform PiP enter, pause, PiP leave.
func TestController_PipCloseScenario(t *testing.T) {
	nav := NewFakeNavStack()
	host := pip.NewFake()
	paused := false
	c := NewController(nav, host,
		WithPollInterval(time.Hour),
		WithPausedFunc(func() bool { return paused }),
	)
	defer c.Shutdown()

	sub := c.Subscribe()

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: "Lecture 1"})

	host.EmitEnter()
	waitSignal(t, sub.Minimized, "minimize on pip enter")
	if !c.PipActive() {
		t.Error("PipActive() = false while in pip")
	}

	paused = true
	host.EmitLeave()
	waitSignal(t, sub.Closed, "close on paused pip leave")
	if c.Mode() != Closed || c.Current() != nil {
		t.Errorf("Mode()=%v Current()=%v, want Closed/nil", c.Mode(), c.Current())
	}
	if nav.Markers() != 0 {
		t.Errorf("Markers() = %d, want 0", nav.Markers())
	}
}

func TestController_PipLeaveWhilePlayingKeepsSession(t *testing.T) {
	c, _, host := newTestController(t)
	sub := c.Subscribe()

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: "Lecture 1"})
	host.EmitEnter()
	waitSignal(t, sub.Minimized, "minimize on pip enter")

	host.EmitLeave()

	// The leave resolves asynchronously; the mode never changes, so poll
	// the observable flag rather than a notification.
	deadline := time.Now().Add(2 * time.Second)
	for c.PipActive() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if c.PipActive() {
		t.Fatal("PipActive() still true after leave")
	}
	if c.Mode() != Minimized {
		t.Errorf("Mode() = %v, want Minimized", c.Mode())
	}
	if cur := c.Current(); cur == nil || cur.SourceURL != "a.mp4" {
		t.Errorf("Current() = %v, want session retained", cur)
	}
}

func TestController_MaximizeExitsPipFirst(t *testing.T) {
	c, _, host := newTestController(t)
	sub := c.Subscribe()

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: ""})
	waitSignal(t, sub.Maximized, "fullscreen on start")
	c.Dispatch(PipEntered{})
	host.SetActive(true)

	c.Maximize()
	waitSignal(t, sub.Maximized, "fullscreen after pip exit")
	if host.ExitCalls() != 1 {
		t.Errorf("ExitCalls() = %d, want 1", host.ExitCalls())
	}
}

func TestController_MaximizeFlipsEvenWhenPipExitFails(t *testing.T) {
	c, _, host := newTestController(t)
	sub := c.Subscribe()

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: ""})
	waitSignal(t, sub.Maximized, "fullscreen on start")
	c.Dispatch(PipEntered{})
	host.SetActive(true)
	host.SetExitError(errors.New("denied"))

	c.Maximize()
	waitSignal(t, sub.Maximized, "fullscreen despite pip exit rejection")
	if c.Mode() != Fullscreen {
		t.Errorf("Mode() = %v, want Fullscreen", c.Mode())
	}
}

func TestController_PollReconcilesMissedPipEnter(t *testing.T) {
	nav := NewFakeNavStack()
	host := pip.NewFake()
	c := NewController(nav, host, WithPollInterval(10*time.Millisecond))
	defer c.Shutdown()
	sub := c.Subscribe()

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: ""})

	// Flag flips without an event, as after a missed notification.
	host.SetActive(true)

	waitSignal(t, sub.Minimized, "poll-driven demotion")
	if !c.PipActive() {
		t.Error("PipActive() = false after reconciliation")
	}
}

func TestController_StartPlaybackEmptyURLIgnored(t *testing.T) {
	c, nav, _ := newTestController(t)

	c.StartPlayback(Session{Title: "no url"})
	if c.Mode() != Closed || nav.Pushes() != 0 {
		t.Errorf("Mode()=%v Pushes()=%d, want Closed/0", c.Mode(), nav.Pushes())
	}
}

func TestController_CurrentReturnsCopy(t *testing.T) {
	c, _, _ := newTestController(t)

	c.StartPlayback(Session{SourceURL: "a.mp4", Title: "Lecture 1"})
	cur := c.Current()
	cur.Title = "mutated"

	if got := c.Current(); got.Title != "Lecture 1" {
		t.Errorf("Current().Title = %q, want Lecture 1", got.Title)
	}
}
