// Package session owns the identity of the currently playing video and its
// presentation mode, reconciled against three independent asynchronous
// signals: explicit user action, back-navigation, and platform
// Picture-in-Picture lifecycle events.
//
// All state transitions flow through a single reducer over a closed set of
// tagged events; the platform listeners only translate raw callbacks into
// those events. The controller is the sole writer of Mode and Session.
package session

import "time"

// Session describes the currently playing video.
//
// At most one Session is active process-wide; starting a new one discards
// any prior session outright. A Session is never persisted beyond the
// process lifetime.
type Session struct {
	SourceURL    string
	Title        string
	ThumbnailURL string
	StartOffset  time.Duration
}

// Valid reports whether the descriptor can start playback.
// A non-empty SourceURL is the only requirement; whether the URL actually
// loads is a playback-surface concern.
func (s Session) Valid() bool {
	return s.SourceURL != ""
}
