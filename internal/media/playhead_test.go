package media

import (
	"errors"
	"testing"
	"time"
)

func fixedProbe(dur time.Duration) ProbeFunc {
	return func(string) (time.Duration, error) { return dur, nil }
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for element event")
		return nil
	}
}

func TestPlayhead_LoadResolvesMetadata(t *testing.T) {
	ph := NewPlayhead(WithProbe(fixedProbe(10*time.Minute)), WithLoadDelay(0))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")

	ev := waitEvent(t, ph.Events())
	meta, ok := ev.(MetadataLoaded)
	if !ok {
		t.Fatalf("event = %T, want MetadataLoaded", ev)
	}
	if meta.Duration != 10*time.Minute {
		t.Errorf("Duration = %v, want 10m", meta.Duration)
	}
	if ph.State() != Paused {
		t.Errorf("State() = %v, want Paused", ph.State())
	}
	if ph.Position() != 0 {
		t.Errorf("Position() = %v, want 0", ph.Position())
	}
}

func TestPlayhead_LoadFault(t *testing.T) {
	probeErr := errors.New("bad source")
	ph := NewPlayhead(WithLoadDelay(0), WithProbe(func(string) (time.Duration, error) {
		return 0, probeErr
	}))
	defer ph.Close()

	ph.Load("nope")

	ev := waitEvent(t, ph.Events())
	fault, ok := ev.(Fault)
	if !ok {
		t.Fatalf("event = %T, want Fault", ev)
	}
	if !errors.Is(fault.Err, probeErr) {
		t.Errorf("Err = %v, want wrapped probe error", fault.Err)
	}
	if ph.State() != Errored {
		t.Errorf("State() = %v, want Errored", ph.State())
	}
}

func TestPlayhead_ReloadRetriesSameSource(t *testing.T) {
	calls := 0
	ph := NewPlayhead(WithLoadDelay(0), WithProbe(func(string) (time.Duration, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return time.Minute, nil
	}))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")
	waitEvent(t, ph.Events()) // fault

	ph.Reload()
	ev := waitEvent(t, ph.Events())
	if _, ok := ev.(MetadataLoaded); !ok {
		t.Fatalf("event = %T, want MetadataLoaded after retry", ev)
	}
}

func TestPlayhead_SupersededLoadDiscarded(t *testing.T) {
	ph := NewPlayhead(WithLoadDelay(20*time.Millisecond), WithProbe(func(u string) (time.Duration, error) {
		if u == "first" {
			return time.Minute, nil
		}
		return 2 * time.Minute, nil
	}))
	defer ph.Close()

	ph.Load("first")
	ph.Load("second")

	ev := waitEvent(t, ph.Events())
	meta, ok := ev.(MetadataLoaded)
	if !ok {
		t.Fatalf("event = %T, want MetadataLoaded", ev)
	}
	if meta.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want the second load's 2m", meta.Duration)
	}

	select {
	case extra := <-ph.Events():
		t.Errorf("unexpected extra event %T from superseded load", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPlayhead_PositionAdvancesWhilePlaying(t *testing.T) {
	ph := NewPlayhead(WithProbe(fixedProbe(time.Hour)), WithLoadDelay(0))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")
	waitEvent(t, ph.Events())

	ph.Play()
	waitEvent(t, ph.Events()) // PlayingEvent
	time.Sleep(50 * time.Millisecond)

	if ph.Position() <= 0 {
		t.Error("position did not advance while playing")
	}

	ph.Pause()
	pos := ph.Position()
	time.Sleep(30 * time.Millisecond)
	if ph.Position() != pos {
		t.Error("position advanced while paused")
	}
}

func TestPlayhead_SeekClamps(t *testing.T) {
	ph := NewPlayhead(WithProbe(fixedProbe(time.Minute)), WithLoadDelay(0))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")
	waitEvent(t, ph.Events())

	ph.SeekTo(5 * time.Minute)
	if ph.Position() != time.Minute {
		t.Errorf("Position() = %v, want clamp to duration", ph.Position())
	}

	ph.SeekTo(-10 * time.Second)
	if ph.Position() != 0 {
		t.Errorf("Position() = %v, want clamp to 0", ph.Position())
	}
}

func TestPlayhead_SeekIgnoredBeforeMetadata(t *testing.T) {
	ph := NewPlayhead(WithLoadDelay(time.Hour))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")
	ph.SeekTo(30 * time.Second)
	if ph.Position() != 0 {
		t.Errorf("Position() = %v, want 0 while loading", ph.Position())
	}
}

func TestPlayhead_EndsAtDuration(t *testing.T) {
	ph := NewPlayhead(WithProbe(fixedProbe(300*time.Millisecond)), WithLoadDelay(0))
	defer ph.Close()

	ph.Load("https://cdn.example.com/a.mp4")
	waitEvent(t, ph.Events())
	ph.Play()
	waitEvent(t, ph.Events()) // PlayingEvent

	deadline := time.Now().Add(2 * time.Second)
	for ph.State() != Ended && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if ph.State() != Ended {
		t.Fatalf("State() = %v, want Ended", ph.State())
	}
	if ph.Position() != 300*time.Millisecond {
		t.Errorf("Position() = %v, want exactly the duration", ph.Position())
	}
}

func TestPlayhead_VolumeClamped(t *testing.T) {
	ph := NewPlayhead()
	defer ph.Close()

	ph.SetVolume(1.5)
	if ph.Volume() != 1 {
		t.Errorf("Volume() = %v, want 1", ph.Volume())
	}
	ph.SetVolume(-0.2)
	if ph.Volume() != 0 {
		t.Errorf("Volume() = %v, want 0", ph.Volume())
	}
}

func TestDefaultProbe(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://cdn.example.com/a.mp4", false},
		{"http", "http://cdn.example.com/a.mp4", false},
		{"relative", "a.mp4", true},
		{"ftp", "ftp://host/a.mp4", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultProbe(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("DefaultProbe(%q) err = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedSource) {
				t.Errorf("err = %v, want ErrUnsupportedSource", err)
			}
		})
	}
}
