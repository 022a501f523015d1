package quiz

import (
	"testing"
	"time"

	"github.com/alakhsir/studium/internal/catalog"
)

func sampleQuiz(durationMinutes int) catalog.Quiz {
	return catalog.Quiz{
		ID:              "quiz-1",
		Title:           "Kinematics DPP 3",
		DurationMinutes: durationMinutes,
		Questions: []catalog.QuizQuestion{
			{ID: "q1", Prompt: "1+1?", Options: []string{"1", "2", "3", "4"}, CorrectIndex: 1},
			{ID: "q2", Prompt: "2+2?", Options: []string{"2", "3", "4", "5"}, CorrectIndex: 2},
			{ID: "q3", Prompt: "3+3?", Options: []string{"4", "5", "6", "7"}, CorrectIndex: 2},
		},
	}
}

// fixedClock returns a controllable time source.
func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	t := start
	return &t, func() time.Time { return t }
}

func TestScoring(t *testing.T) {
	e := NewEngine(sampleQuiz(45))

	e.Mark(1) // q1 correct: +4
	e.Next()
	e.Mark(0) // q2 wrong: -1
	// q3 unattempted: 0

	r := e.Submit()
	if r.Score != 3 {
		t.Errorf("Score = %d, want 3", r.Score)
	}
	if r.MaxScore != 12 {
		t.Errorf("MaxScore = %d, want 12", r.MaxScore)
	}
	if r.Correct != 1 || r.Incorrect != 1 || r.Unattempted != 1 {
		t.Errorf("breakdown = %d/%d/%d, want 1/1/1", r.Correct, r.Incorrect, r.Unattempted)
	}
}

func TestAllWrongGoesNegative(t *testing.T) {
	e := NewEngine(sampleQuiz(45))
	for i := range e.Quiz().Questions {
		e.Goto(i)
		e.Mark(3) // wrong everywhere
	}
	if e.Quiz().Questions[2].CorrectIndex == 3 {
		t.Fatal("fixture assumption broken")
	}
	r := e.Submit()
	if r.Score != -3 {
		t.Errorf("Score = %d, want -3", r.Score)
	}
}

func TestNavigationBounds(t *testing.T) {
	e := NewEngine(sampleQuiz(45))

	e.Prev()
	if e.Current() != 0 {
		t.Errorf("Prev at start moved to %d", e.Current())
	}

	e.Goto(2)
	e.Next()
	if e.Current() != 2 {
		t.Errorf("Next at end moved to %d", e.Current())
	}

	e.Goto(99)
	if e.Current() != 2 {
		t.Errorf("Goto out of range moved to %d", e.Current())
	}
}

func TestVisitedTracking(t *testing.T) {
	e := NewEngine(sampleQuiz(45))

	if !e.Visited(0) {
		t.Error("first question not visited at start")
	}
	if e.Visited(1) || e.Visited(2) {
		t.Error("unvisited questions reported visited")
	}

	e.Next()
	if !e.Visited(1) {
		t.Error("question not marked visited after Next")
	}
}

func TestMarkAndClear(t *testing.T) {
	e := NewEngine(sampleQuiz(45))

	if e.Answer(0) != -1 {
		t.Errorf("Answer before marking = %d, want -1", e.Answer(0))
	}

	e.Mark(2)
	if e.Answer(0) != 2 {
		t.Errorf("Answer = %d, want 2", e.Answer(0))
	}

	// Remarking replaces, out-of-range is ignored.
	e.Mark(1)
	e.Mark(9)
	if e.Answer(0) != 1 {
		t.Errorf("Answer = %d, want 1", e.Answer(0))
	}

	e.Clear()
	if e.Answer(0) != -1 {
		t.Errorf("Answer after clear = %d, want -1", e.Answer(0))
	}
	if e.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", e.AnsweredCount())
	}
}

func TestDefaultDuration(t *testing.T) {
	clock, now := fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	e := NewEngine(sampleQuiz(0), WithClock(now))

	if got := e.Remaining(); got != defaultDurationMinutes*time.Minute {
		t.Errorf("Remaining = %v, want %dm default", got, defaultDurationMinutes)
	}

	*clock = clock.Add(20 * time.Minute)
	if got := e.Remaining(); got != 25*time.Minute {
		t.Errorf("Remaining after 20m = %v, want 25m", got)
	}
}

func TestExpiryBlocksMarking(t *testing.T) {
	clock, now := fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	e := NewEngine(sampleQuiz(10), WithClock(now))

	e.Mark(1)
	*clock = clock.Add(11 * time.Minute)

	if !e.Expired() {
		t.Fatal("engine not expired past deadline")
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", e.Remaining())
	}

	// Late answers and clears are ignored.
	e.Next()
	e.Mark(2)
	e.Goto(0)
	e.Clear()

	r := e.Submit()
	if r.Correct != 1 || r.Unattempted != 2 {
		t.Errorf("breakdown = %+v, want only the pre-deadline answer counted", r)
	}
}

func TestSubmitIdempotent(t *testing.T) {
	e := NewEngine(sampleQuiz(45))
	e.Mark(1)

	first := e.Submit()

	// Marking after submit changes nothing.
	e.Next()
	e.Mark(2)
	second := e.Submit()

	if first != second {
		t.Errorf("second submit = %+v, want %+v", second, first)
	}
	if !e.Submitted() {
		t.Error("Submitted() = false after submit")
	}
}

func TestAttemptRecord(t *testing.T) {
	clock, now := fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	e := NewEngine(sampleQuiz(45), WithClock(now))
	e.Mark(1)

	a := e.Attempt()
	if a.QuizID != "quiz-1" {
		t.Errorf("QuizID = %q", a.QuizID)
	}
	if a.Score != 4 || a.MaxScore != 12 {
		t.Errorf("score = %d/%d, want 4/12", a.Score, a.MaxScore)
	}
	if !a.TakenAt.Equal(*clock) {
		t.Errorf("TakenAt = %v, want %v", a.TakenAt, *clock)
	}
}
