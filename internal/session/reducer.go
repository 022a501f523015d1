package session

// state is the complete reducer state. The controller holds exactly one and
// is its sole writer.
type state struct {
	mode    Mode
	session *Session

	// generation increments on every StartPlayback. Async completions
	// (PiP exit requests) are stamped with it so results for a superseded
	// session are discarded.
	generation uint64

	// pipActive mirrors the platform's PiP flag. While true the in-app
	// mini-player suppresses itself so two floating surfaces never both
	// claim to be primary.
	pipActive bool

	// closing suppresses reinterpretation of the self-inflicted history
	// pop performed by UserClose.
	closing bool

	// marker tracks whether the sentinel entry is still on the stack.
	marker bool
}

type effectKind int

const (
	// fxPushMarker pushes the navigation sentinel.
	fxPushMarker effectKind = iota
	// fxPopMarker programmatically removes the sentinel.
	fxPopMarker
	// fxExitPip asks the platform to dismiss PiP before a maximize
	// completes. The mode flips only when pipExitDone arrives.
	fxExitPip
)

type effect struct {
	kind       effectKind
	generation uint64
}

// reduce applies one event to the state. It is a pure function: platform
// side effects are returned, never performed here.
func reduce(s state, ev Event) (state, []effect) {
	switch ev := ev.(type) {
	case StartPlayback:
		return reduceStart(s, ev)

	case UserMinimize:
		if s.mode != Fullscreen {
			return s, nil
		}
		s.mode = Minimized
		return s, nil

	case UserMaximize:
		if s.mode != Minimized {
			return s, nil
		}
		if s.pipActive {
			// Two simultaneous out-of-flow surfaces are not allowed:
			// leave PiP first, flip the mode when the request settles.
			return s, []effect{{kind: fxExitPip, generation: s.generation}}
		}
		s.mode = Fullscreen
		return restoreMarker(s)

	case pipExitDone:
		if ev.generation != s.generation {
			// Completion for a superseded session.
			return s, nil
		}
		if s.mode != Minimized {
			return s, nil
		}
		s.mode = Fullscreen
		return restoreMarker(s)

	case UserClose:
		return reduceClose(s)

	case BackIntent:
		if s.closing {
			// Self-inflicted pop from UserClose.
			s.closing = false
			return s, nil
		}
		// The platform has already consumed the marker.
		s.marker = false
		if s.mode == Fullscreen {
			// A raw back while fullscreen demotes to the mini-player
			// instead of stopping playback.
			s.mode = Minimized
		}
		return s, nil

	case PipEntered:
		if s.session == nil {
			return s, nil
		}
		s.pipActive = true
		if s.mode == Fullscreen {
			s.mode = Minimized
		}
		return s, nil

	case PipLeft:
		s.pipActive = false
		if s.session == nil {
			return s, nil
		}
		if ev.PausedAtExit {
			// Paused at exit reads as "the PiP window was closed".
			return reduceClose(s)
		}
		// Still playing reads as "returned to the application".
		return s, nil

	case PipSync:
		if ev.Active == s.pipActive {
			return s, nil
		}
		if ev.Active && s.session == nil {
			return s, nil
		}
		s.pipActive = ev.Active
		if ev.Active && s.mode == Fullscreen {
			// Missed PipEntered; apply the same demotion.
			s.mode = Minimized
		}
		// A missed leave carries no pause observation, so the close
		// heuristic is not applied; the session stays alive.
		return s, nil
	}

	return s, nil
}

func reduceStart(s state, ev StartPlayback) (state, []effect) {
	if !ev.Session.Valid() {
		return s, nil
	}
	var fx []effect
	if !s.marker {
		fx = append(fx, effect{kind: fxPushMarker})
		s.marker = true
	}
	sess := ev.Session
	s.session = &sess
	s.generation++
	s.mode = Fullscreen
	s.closing = false
	return s, fx
}

// restoreMarker re-arms the navigation sentinel after a maximize. A back
// gesture consumes the marker when it demotes to the mini-player, so without
// this the next back from fullscreen would pop a real page.
func restoreMarker(s state) (state, []effect) {
	if s.marker {
		return s, nil
	}
	s.marker = true
	return s, []effect{{kind: fxPushMarker}}
}

func reduceClose(s state) (state, []effect) {
	if s.mode == Closed {
		return s, nil
	}
	s.session = nil
	s.mode = Closed
	var fx []effect
	if s.marker {
		s.closing = true
		s.marker = false
		fx = append(fx, effect{kind: fxPopMarker})
	}
	return s, fx
}

// invariantHolds reports the core property checked after every event:
// mode is Closed exactly when no session exists.
func (s state) invariantHolds() bool {
	return (s.mode == Closed) == (s.session == nil)
}
