// Package progress tracks how much of each video a student has watched.
package progress

import (
	"time"

	"github.com/alakhsir/studium/internal/state"
)

// Status classifies a content item by its best watch percentage.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

// String returns the status label shown in listings.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// completedThreshold marks a video done once its max percentage passes it.
const completedThreshold = 90.0

// Tracker persists watch positions and derives per-item status.
type Tracker struct {
	store           state.Interface
	resumeThreshold time.Duration
}

// NewTracker wires the tracker to a state store. resumeThreshold is the
// minimum watched duration before resuming is offered instead of starting
// over.
func NewTracker(store state.Interface, resumeThreshold time.Duration) *Tracker {
	return &Tracker{store: store, resumeThreshold: resumeThreshold}
}

// Record stores the current playhead. The percentage submitted only ever
// raises the stored maximum.
func (t *Tracker) Record(contentID, batchID string, position, duration time.Duration) error {
	return t.store.SaveProgress(state.ProgressRow{
		ContentID:       contentID,
		BatchID:         batchID,
		PositionSeconds: int(position.Seconds()),
		DurationSeconds: int(duration.Seconds()),
		MaxPercent:      Percent(position, duration),
		UpdatedAt:       time.Now(),
	})
}

// Resume returns the offset playback should start from. Short watches
// restart from the beginning.
func (t *Tracker) Resume(contentID string) (time.Duration, error) {
	row, err := t.store.GetProgress(contentID)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	pos := time.Duration(row.PositionSeconds) * time.Second
	if pos < t.resumeThreshold {
		return 0, nil
	}
	// A finished video restarts rather than resuming at the very end.
	if row.DurationSeconds > 0 && row.PositionSeconds >= row.DurationSeconds-int(t.resumeThreshold.Seconds()) {
		return 0, nil
	}
	return pos, nil
}

// StatusOf derives the listing status for one content item.
func (t *Tracker) StatusOf(contentID string) (Status, error) {
	row, err := t.store.GetProgress(contentID)
	if err != nil {
		return StatusNotStarted, err
	}
	if row == nil {
		return StatusNotStarted, nil
	}
	return statusFor(row.MaxPercent), nil
}

// BatchSummary aggregates a batch's rows into completed/started counts.
type BatchSummary struct {
	Started   int
	Completed int
}

// Summarize reports watch totals across a batch.
func (t *Tracker) Summarize(batchID string) (BatchSummary, error) {
	rows, err := t.store.ListProgress(batchID)
	if err != nil {
		return BatchSummary{}, err
	}
	var s BatchSummary
	for _, row := range rows {
		switch statusFor(row.MaxPercent) {
		case StatusCompleted:
			s.Completed++
			s.Started++
		case StatusInProgress:
			s.Started++
		}
	}
	return s, nil
}

// Percent converts a playhead into a watch percentage clamped to [0, 100].
func Percent(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(position) / float64(duration) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func statusFor(maxPercent float64) Status {
	switch {
	case maxPercent >= completedThreshold:
		return StatusCompleted
	case maxPercent > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
