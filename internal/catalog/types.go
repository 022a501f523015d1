// Package catalog models the course catalog: batches, their subjects,
// chapters, and the content items inside them.
package catalog

import "time"

// ContentType classifies a content item within a chapter.
type ContentType string

const (
	ContentVideo    ContentType = "video"
	ContentNote     ContentType = "note"
	ContentDPPVideo ContentType = "dpp_video"
	ContentDPPNote  ContentType = "dpp_note"
	ContentQuiz     ContentType = "quiz"
)

// Playable reports whether this content opens the video player.
func (c ContentType) Playable() bool {
	return c == ContentVideo || c == ContentDPPVideo
}

// Batch is a course offering students enroll in.
type Batch struct {
	ID           string
	Name         string
	Description  string
	ThumbnailURL string
	Language     string
	StartDate    time.Time
	EndDate      time.Time
	PriceCents   int64
	CreatedAt    time.Time
}

// Subject is one stream within a batch (Physics, Chemistry, ...).
type Subject struct {
	ID      string
	BatchID string
	Name    string
	Slug    string
	Ordinal int
}

// Chapter groups content items inside a subject.
type Chapter struct {
	ID        string
	SubjectID string
	Name      string
	Ordinal   int
}

// ContentItem is a single lecture, note, or exercise inside a chapter.
type ContentItem struct {
	ID           string
	ChapterID    string
	Type         ContentType
	Title        string
	URL          string
	ThumbnailURL string
	Duration     time.Duration
	Ordinal      int
	PublishedAt  time.Time
}

// Quiz is a timed test attached to a quiz content item.
type Quiz struct {
	ID              string
	ContentID       string
	Title           string
	DurationMinutes int
	Questions       []QuizQuestion
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	ID           string
	QuizID       string
	Prompt       string
	Options      []string
	CorrectIndex int
	Ordinal      int
}

// Announcement is a notice posted to a batch.
type Announcement struct {
	ID            string
	BatchID       string
	Text          string
	AttachmentURL string
	CreatedAt     time.Time
}

// Enrollment ties a user to a batch.
type Enrollment struct {
	UserID     string
	BatchID    string
	EnrolledAt time.Time
}
