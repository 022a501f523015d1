package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/errmsg"
	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/quiz"
	"github.com/alakhsir/studium/internal/ui/render"
	"github.com/alakhsir/studium/internal/ui/styles"
)

type quizModel struct {
	engine    *quiz.Engine
	option    int // highlighted option on the current question
	bestScore int
	hasBest   bool
	saved     bool
}

func (m Model) handleQuizKey(_ tea.KeyMsg, action keymap.Action) (Model, tea.Cmd) {
	q := &m.quizPage
	if q.engine == nil {
		if action == keymap.ActionBack {
			m.router.Back()
		}
		return m, nil
	}

	if q.engine.Submitted() {
		switch action {
		case keymap.ActionBack, keymap.ActionSelect:
			m.router.Back()
		case keymap.ActionQuit:
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionBack:
		// Leaving an unfinished attempt abandons it.
		q.engine = nil
		m.router.Back()
		return m, nil

	case keymap.ActionMoveDown:
		if q.option < len(q.engine.Question().Options)-1 {
			q.option++
		}
		return m, nil

	case keymap.ActionMoveUp:
		if q.option > 0 {
			q.option--
		}
		return m, nil

	case keymap.ActionMoveRight:
		q.engine.Next()
		q.option = m.highlightFor()
		return m, nil

	case keymap.ActionMoveLeft:
		q.engine.Prev()
		q.option = m.highlightFor()
		return m, nil

	case keymap.ActionSelect:
		q.engine.Mark(q.option)
		return m, nil

	case keymap.ActionClearAnswer:
		q.engine.Clear()
		return m, nil

	case keymap.ActionSubmit:
		return m, m.submitQuiz()
	}

	return m, nil
}

// highlightFor returns the option to highlight for the current question:
// the marked answer when there is one, the first option otherwise.
func (m Model) highlightFor() int {
	e := m.quizPage.engine
	if a := e.Answer(e.Current()); a >= 0 {
		return a
	}
	return 0
}

// submitQuiz scores the attempt and persists it.
func (m *Model) submitQuiz() tea.Cmd {
	q := &m.quizPage
	q.engine.Submit()
	if !q.saved {
		if err := m.states.SaveQuizAttempt(q.engine.Attempt()); err != nil {
			m.errorMsg = errmsg.Format(errmsg.OpQuizSubmit, err)
			return nil
		}
		q.saved = true
	}
	return nil
}

func (m Model) viewQuiz() string {
	q := m.quizPage
	s := styles.T().S()

	if q.engine == nil {
		return s.Muted.Render("Loading quiz…")
	}

	e := q.engine
	var lines []string

	title := s.Title.Render(render.Sanitize(e.Quiz().Title))
	if q.hasBest {
		title += s.Subtle.Render(fmt.Sprintf("  best %d", q.bestScore))
	}
	lines = append(lines, title)

	if e.Submitted() {
		r := e.Submit()
		lines = append(lines, "",
			s.Title.Render(fmt.Sprintf("Score: %d / %d", r.Score, r.MaxScore)),
			s.Completed.Render(fmt.Sprintf("%d correct", r.Correct)),
			s.Error.Render(fmt.Sprintf("%d incorrect", r.Incorrect)),
			s.Muted.Render(fmt.Sprintf("%d unattempted", r.Unattempted)),
			"",
			s.Subtle.Render("enter return"),
		)
		return strings.Join(lines, "\n")
	}

	remaining := e.Remaining()
	clock := fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	clockLine := s.Muted.Render("Time left ") + s.Warning.Render(clock)
	progressLine := s.Muted.Render(fmt.Sprintf("Question %d of %d · %d answered",
		e.Current()+1, len(e.Quiz().Questions), e.AnsweredCount()))
	lines = append(lines, clockLine, progressLine, render.Separator(min(m.width, 60)))

	question := e.Question()
	lines = append(lines, "", s.Base.Render(render.Sanitize(question.Prompt)), "")

	marked := e.Answer(e.Current())
	for i, opt := range question.Options {
		bullet := "( )"
		if i == marked {
			bullet = s.Completed.Render("(●)")
		}
		line := fmt.Sprintf("%s %s", bullet, render.Sanitize(opt))
		if i == q.option {
			line = s.Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "",
		s.Subtle.Render("j/k option · h/l question · enter mark · x clear · ctrl+s submit · esc abandon"))
	return strings.Join(lines, "\n")
}
