// Package quiz runs timed multiple-choice tests with NEET-style marking:
// +4 for a correct answer, -1 for a wrong one, 0 for a skipped question.
package quiz

import (
	"time"

	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/state"
)

const (
	marksCorrect   = 4
	marksIncorrect = -1

	// defaultDurationMinutes applies when the quiz carries no time limit.
	defaultDurationMinutes = 45
)

// Result is the outcome of a submitted quiz.
type Result struct {
	Score       int
	MaxScore    int
	Correct     int
	Incorrect   int
	Unattempted int
}

// Engine holds one quiz attempt in flight. It is not safe for concurrent
// use; the UI drives it from a single goroutine.
type Engine struct {
	quiz      catalog.Quiz
	answers   map[int]int // question index -> chosen option index
	visited   map[int]bool
	current   int
	deadline  time.Time
	submitted bool
	result    Result
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine starts an attempt. The countdown begins immediately.
func NewEngine(q catalog.Quiz, opts ...Option) *Engine {
	e := &Engine{
		quiz:    q,
		answers: make(map[int]int),
		visited: make(map[int]bool),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	minutes := q.DurationMinutes
	if minutes <= 0 {
		minutes = defaultDurationMinutes
	}
	e.deadline = e.now().Add(time.Duration(minutes) * time.Minute)

	if len(q.Questions) > 0 {
		e.visited[0] = true
	}
	return e
}

// Quiz returns the quiz under attempt.
func (e *Engine) Quiz() catalog.Quiz { return e.quiz }

// Current returns the focused question index.
func (e *Engine) Current() int { return e.current }

// Question returns the focused question.
func (e *Engine) Question() catalog.QuizQuestion {
	return e.quiz.Questions[e.current]
}

// Goto focuses a question by index and marks it visited.
func (e *Engine) Goto(i int) {
	if i < 0 || i >= len(e.quiz.Questions) {
		return
	}
	e.current = i
	e.visited[i] = true
}

// Next advances to the following question, stopping at the last.
func (e *Engine) Next() { e.Goto(e.current + 1) }

// Prev steps back to the previous question, stopping at the first.
func (e *Engine) Prev() { e.Goto(e.current - 1) }

// Mark records an answer for the focused question. Marking after submit
// or past the deadline is ignored.
func (e *Engine) Mark(option int) {
	if e.submitted || e.Expired() {
		return
	}
	q := e.quiz.Questions[e.current]
	if option < 0 || option >= len(q.Options) {
		return
	}
	e.answers[e.current] = option
}

// Clear removes the focused question's answer.
func (e *Engine) Clear() {
	if e.submitted || e.Expired() {
		return
	}
	delete(e.answers, e.current)
}

// Answer returns the chosen option for a question, or -1 if unanswered.
func (e *Engine) Answer(i int) int {
	if a, ok := e.answers[i]; ok {
		return a
	}
	return -1
}

// Visited reports whether the student has seen a question.
func (e *Engine) Visited(i int) bool { return e.visited[i] }

// AnsweredCount returns how many questions carry an answer.
func (e *Engine) AnsweredCount() int { return len(e.answers) }

// Remaining returns the time left on the clock, never negative.
func (e *Engine) Remaining() time.Duration {
	if e.submitted {
		return 0
	}
	left := e.deadline.Sub(e.now())
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the deadline has passed.
func (e *Engine) Expired() bool {
	return e.now().After(e.deadline)
}

// Submitted reports whether the attempt is finished.
func (e *Engine) Submitted() bool { return e.submitted }

// Submit scores the attempt. Further calls return the same result; the
// caller invokes this on user action or when the countdown hits zero.
func (e *Engine) Submit() Result {
	if e.submitted {
		return e.result
	}
	e.submitted = true

	var r Result
	r.MaxScore = marksCorrect * len(e.quiz.Questions)
	for i, q := range e.quiz.Questions {
		answer, ok := e.answers[i]
		switch {
		case !ok:
			r.Unattempted++
		case answer == q.CorrectIndex:
			r.Correct++
			r.Score += marksCorrect
		default:
			r.Incorrect++
			r.Score += marksIncorrect
		}
	}
	e.result = r
	return r
}

// Attempt converts a submitted result into a persistable record.
func (e *Engine) Attempt() state.QuizAttempt {
	r := e.result
	if !e.submitted {
		r = e.Submit()
	}
	return state.QuizAttempt{
		QuizID:      e.quiz.ID,
		Score:       r.Score,
		MaxScore:    r.MaxScore,
		Correct:     r.Correct,
		Incorrect:   r.Incorrect,
		Unattempted: r.Unattempted,
		TakenAt:     e.now(),
	}
}
