package session

// Event is implemented by the closed set of session events. External
// packages cannot implement it, so the reducer's input space is fixed.
type Event interface {
	sessionEvent()
}

// StartPlayback requests playback of a new session, replacing any prior one.
type StartPlayback struct {
	Session Session
}

// UserMinimize is an explicit request to demote fullscreen to mini-player.
type UserMinimize struct{}

// UserMaximize is an explicit request to promote mini-player to fullscreen.
type UserMaximize struct{}

// UserClose is an explicit request to end the session.
type UserClose struct{}

// BackIntent is a user back-navigation gesture observed through the
// navigation stack. By the time it arrives the marker has already been
// popped by the platform.
type BackIntent struct{}

// PipEntered reports that the platform entered Picture-in-Picture, whether
// or not this controller initiated it.
type PipEntered struct{}

// PipLeft reports that the platform left Picture-in-Picture.
//
// PausedAtExit is the only observable proxy for user intent: a paused
// element suggests the PiP window's close affordance was used, a playing
// one suggests a return to the application. The heuristic is best-effort;
// a user who pauses and then returns is indistinguishable from one who
// closed the window.
type PipLeft struct {
	PausedAtExit bool
}

// PipSync carries the platform's actual PiP-active flag, read by the
// low-frequency polling safety net. It corrects drift from missed events.
type PipSync struct {
	Active bool
}

// pipExitDone is dispatched internally when a RequestExit issued by
// UserMaximize completes or fails. Generation identifies the session the
// request was made for; stale completions are ignored.
type pipExitDone struct {
	generation uint64
}

func (StartPlayback) sessionEvent() {}
func (UserMinimize) sessionEvent()  {}
func (UserMaximize) sessionEvent()  {}
func (UserClose) sessionEvent()     {}
func (BackIntent) sessionEvent()    {}
func (PipEntered) sessionEvent()    {}
func (PipLeft) sessionEvent()       {}
func (PipSync) sessionEvent()       {}
func (pipExitDone) sessionEvent()   {}
