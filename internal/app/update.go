package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/keymap"
	"github.com/alakhsir/studium/internal/quiz"
	"github.com/alakhsir/studium/internal/session"
	"github.com/alakhsir/studium/internal/surface"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Transport-owned messages pass straight through.
	case surface.ElementEventMsg:
		return m, m.transport.Update(msg)
	case surface.TickMsg:
		return m, m.transport.Update(msg)
	case surface.HideControlsMsg:
		return m, m.transport.Update(msg)
	case surface.SkipAckClearMsg:
		return m, m.transport.Update(msg)

	case modeChangedMsg:
		return m.handleModeChange(msg)

	case progressSaveTickMsg:
		if m.controller.Mode().IsActive() {
			m.saveWatchProgress()
			return m, ProgressSaveTickCmd()
		}
		return m, nil

	case quizTickMsg:
		q := &m.quizPage
		if q.engine == nil || q.engine.Submitted() {
			return m, nil
		}
		if q.engine.Expired() {
			return m, m.submitQuiz()
		}
		return m, QuizTickCmd()

	case batchesLoadedMsg:
		m.batches.setBatches(msg.batches, msg.enrolled)
		return m, nil

	case batchDetailLoadedMsg:
		m.detail.set(msg)
		return m, nil

	case chaptersLoadedMsg:
		m.chapters.set(msg)
		return m, nil

	case contentsLoadedMsg:
		m.contents.set(msg)
		return m, nil

	case quizLoadedMsg:
		m.quizPage = newQuizModel(msg)
		return m, QuizTickCmd()

	case enrolledMsg:
		m.batches.enrolled[msg.batchID] = true
		if m.detail.batch.ID == msg.batchID {
			m.detail.enrolled = true
		}
		return m, nil

	case playbackReadyMsg:
		return m.startPlayback(msg)

	case otpRequestedMsg:
		return m, m.advanceToCode(msg.email)

	case signedInMsg:
		m.applySession(msg.session)
		m.errorMsg = ""
		m.router.Replace(PageBatches)
		return m, m.loadBatchesCmd()

	case sessionRefreshedMsg:
		m.applySession(msg.session)
		m.pendingRefresh = false
		if m.page() == PageBatches {
			return m, m.loadBatchesCmd()
		}
		return m, nil

	case signedOutMsg:
		if m.identity != nil {
			m.clearSession()
		}
		return m, nil

	case errMsg:
		m.errorMsg = msg.text
		m.login.submitting = false
		m.login.status = ""
		return m, nil
	}

	return m, nil
}

func newQuizModel(msg quizLoadedMsg) quizModel {
	return quizModel{
		engine:    quiz.NewEngine(msg.quiz),
		bestScore: msg.bestScore,
		hasBest:   msg.hasBest,
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.saveWatchProgress()
		return m, tea.Quit
	}

	// Any keypress clears a lingering error line.
	if msg.String() != "" && m.errorMsg != "" && m.page() != PageLogin {
		m.errorMsg = ""
	}

	// A fullscreen session captures the keyboard regardless of page.
	if m.controller.Mode() == session.Fullscreen {
		action := keymap.ForContext("player").Resolve(msg.String())
		return m.handlePlayerKey(msg, action)
	}

	page := m.page()

	if page == PageLogin {
		return m.handleLoginKey(msg)
	}

	action := keymap.ForContext(page.keymapContext()).Resolve(msg.String())

	// Filter entry intercepts everything, including global keys.
	if page == PageBatches && m.batches.filtering {
		return m.handleBatchesKey(msg, action)
	}
	if page == PageContents && m.contents.filtering {
		return m.handleContentsKey(msg, action)
	}

	switch action {
	case keymap.ActionQuit:
		m.saveWatchProgress()
		return m, tea.Quit

	case keymap.ActionExpandPlayer:
		if m.controller.Mode() == session.Minimized {
			m.controller.Maximize()
		}
		return m, nil

	case keymap.ActionCloseSession:
		if page != PageQuiz && m.controller.Mode() == session.Minimized {
			return m, m.closeSession()
		}

	case keymap.ActionBack:
		if page == PageQuiz {
			return m.handleQuizKey(msg, action)
		}
		m.router.Back()
		m.saveNavigation()
		return m, nil
	}

	switch page {
	case PageBatches:
		return m.handleBatchesKey(msg, action)
	case PageBatchDetail:
		return m.handleDetailKey(msg, action)
	case PageChapters:
		return m.handleChaptersKey(msg, action)
	case PageContents:
		return m.handleContentsKey(msg, action)
	case PageQuiz:
		return m.handleQuizKey(msg, action)
	case PageProfile:
		next, cmd := m.handleProfileKey(msg, action)
		if cmd == nil && action == "" {
			return next.handleProfileRawKey(msg)
		}
		return next, cmd
	}

	return m, nil
}

// handleModeChange reacts to session controller notifications.
func (m Model) handleModeChange(msg modeChangedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.WatchModeChanges()}

	// The docked bar changes the page body height.
	m.resizeLists()

	switch msg.change.Current {
	case session.Closed:
		// Final progress write happened at close initiation; stop the
		// element in case the platform closed the session (PiP heuristic).
		m.saveWatchProgress()
		m.transport.Element().Pause()
		m.player = playerModel{}
		if m.notifier != nil {
			_ = m.notifier.Dismiss()
		}
		// Refresh visible progress badges.
		if m.page() == PageContents && m.contents.loaded {
			cmds = append(cmds, m.loadContentsCmd(m.contents.chapter))
		}

	case session.Minimized:
		m.notifyMinimized()

	case session.Fullscreen:
		cmds = append(cmds, m.transport.Activity())
	}

	return m, tea.Batch(cmds...)
}
