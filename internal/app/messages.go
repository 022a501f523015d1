package app

import (
	"time"

	"github.com/alakhsir/studium/internal/auth"
	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/progress"
	"github.com/alakhsir/studium/internal/session"
)

// Catalog loads.

type batchesLoadedMsg struct {
	batches  []catalog.Batch
	enrolled map[string]bool
}

type batchDetailLoadedMsg struct {
	batch         catalog.Batch
	subjects      []catalog.Subject
	announcements []catalog.Announcement
	enrolled      bool
	summary       progress.BatchSummary
}

type chaptersLoadedMsg struct {
	subject  catalog.Subject
	chapters []catalog.Chapter
}

type contentsLoadedMsg struct {
	chapter  catalog.Chapter
	contents []catalog.ContentItem
	statuses map[string]progress.Status
}

type quizLoadedMsg struct {
	quiz      catalog.Quiz
	bestScore int
	hasBest   bool
}

type enrolledMsg struct {
	batchID string
}

// Auth flow.

type otpRequestedMsg struct {
	email string
}

type signedInMsg struct {
	session auth.Session
}

type sessionRefreshedMsg struct {
	session auth.Session
}

type signedOutMsg struct{}

// Playback.

// playbackReadyMsg carries the resolved resume offset for a lecture about
// to start.
type playbackReadyMsg struct {
	content catalog.ContentItem
	batchID string
	resume  time.Duration
}

// modeChangedMsg relays a session controller notification into the tea loop.
type modeChangedMsg struct {
	change session.ModeChange
}

// progressSaveTickMsg drives the periodic watch-progress write while a
// lecture is playing.
type progressSaveTickMsg time.Time

// quizTickMsg drives the countdown display on the quiz page.
type quizTickMsg time.Time

// errMsg carries a user-facing error line, already formatted.
type errMsg struct {
	text string
}
