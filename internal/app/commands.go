package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alakhsir/studium/internal/auth"
	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/errmsg"
	"github.com/alakhsir/studium/internal/progress"
)

// requestTimeout bounds every backend call issued from the tea loop.
const requestTimeout = 15 * time.Second

// progressSaveInterval is how often watch progress is flushed while playing.
const progressSaveInterval = 5 * time.Second

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// WatchModeChanges returns a command that waits for the next session
// controller notification. Re-armed after every modeChangedMsg.
func (m Model) WatchModeChanges() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-m.sub.ModeChanged:
			return modeChangedMsg{change: e}
		case <-m.sub.Done:
			return nil
		}
	}
}

// ProgressSaveTickCmd schedules the next periodic watch-progress write.
func ProgressSaveTickCmd() tea.Cmd {
	return tea.Tick(progressSaveInterval, func(t time.Time) tea.Msg {
		return progressSaveTickMsg(t)
	})
}

// QuizTickCmd schedules the next countdown refresh on the quiz page.
func QuizTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return quizTickMsg(t)
	})
}

func (m Model) loadBatchesCmd() tea.Cmd {
	store := m.store
	userID := m.userID()
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		batches, err := store.ListBatches(ctx)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpBatchesLoad, err)}
		}

		enrolled := make(map[string]bool)
		if userID != "" {
			mine, err := store.ListEnrolledBatches(ctx, userID)
			if err != nil {
				return errMsg{text: errmsg.Format(errmsg.OpBatchesLoad, err)}
			}
			for _, b := range mine {
				enrolled[b.ID] = true
			}
		}
		return batchesLoadedMsg{batches: batches, enrolled: enrolled}
	}
}

func (m Model) loadBatchDetailCmd(batchID string) tea.Cmd {
	store := m.store
	tracker := m.tracker
	userID := m.userID()
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		batch, err := store.GetBatch(ctx, batchID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpBatchLoad, err)}
		}
		if batch == nil {
			return errMsg{text: errmsg.Format(errmsg.OpBatchLoad, errors.New("batch not found"))}
		}

		subjects, err := store.ListSubjects(ctx, batchID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpBatchLoad, err)}
		}

		announcements, err := store.ListAnnouncements(ctx, batchID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpAnnouncementsLoad, err)}
		}

		enrolled := false
		if userID != "" {
			enrolled, err = store.IsEnrolled(ctx, userID, batchID)
			if err != nil {
				return errMsg{text: errmsg.Format(errmsg.OpBatchLoad, err)}
			}
		}

		summary, err := tracker.Summarize(batchID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpProgressLoad, err)}
		}

		return batchDetailLoadedMsg{
			batch:         *batch,
			subjects:      subjects,
			announcements: announcements,
			enrolled:      enrolled,
			summary:       summary,
		}
	}
}

func (m Model) loadChaptersCmd(subject catalog.Subject) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		chapters, err := store.ListChapters(ctx, subject.ID)
		if err != nil {
			return errMsg{text: errmsg.FormatWith(errmsg.OpSubjectLoad, subject.Name, err)}
		}
		return chaptersLoadedMsg{subject: subject, chapters: chapters}
	}
}

func (m Model) loadContentsCmd(chapter catalog.Chapter) tea.Cmd {
	store := m.store
	tracker := m.tracker
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		contents, err := store.ListContents(ctx, chapter.ID)
		if err != nil {
			return errMsg{text: errmsg.FormatWith(errmsg.OpChapterLoad, chapter.Name, err)}
		}

		videos := catalog.VideosOf(contents)
		statuses := make(map[string]progress.Status, len(videos))
		for _, c := range videos {
			st, err := tracker.StatusOf(c.ID)
			if err != nil {
				return errMsg{text: errmsg.Format(errmsg.OpProgressLoad, err)}
			}
			statuses[c.ID] = st
		}
		return contentsLoadedMsg{chapter: chapter, contents: contents, statuses: statuses}
	}
}

func (m Model) loadQuizCmd(content catalog.ContentItem) tea.Cmd {
	store := m.store
	states := m.states
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		quiz, err := store.GetQuiz(ctx, content.ID)
		if err != nil {
			return errMsg{text: errmsg.FormatWith(errmsg.OpQuizLoad, content.Title, err)}
		}
		if quiz == nil {
			return errMsg{text: errmsg.FormatWith(errmsg.OpQuizLoad, content.Title, errors.New("no quiz attached"))}
		}

		best, hasBest, err := states.BestScore(quiz.ID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpQuizLoad, err)}
		}
		return quizLoadedMsg{quiz: *quiz, bestScore: best, hasBest: hasBest}
	}
}

func (m Model) enrollCmd(batchID string) tea.Cmd {
	store := m.store
	userID := m.userID()
	return func() tea.Msg {
		if userID == "" {
			return errMsg{text: errmsg.Format(errmsg.OpEnroll, errors.New("not signed in"))}
		}
		ctx, cancel := requestCtx()
		defer cancel()

		if err := store.Enroll(ctx, userID, batchID); err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpEnroll, err)}
		}
		return enrolledMsg{batchID: batchID}
	}
}

// resolvePlaybackCmd looks up the saved resume position before starting a
// lecture. The lookup is synchronous SQLite and fast, but it stays off the
// update path so a slow disk never blocks a keypress.
func (m Model) resolvePlaybackCmd(content catalog.ContentItem, batchID string) tea.Cmd {
	tracker := m.tracker
	return func() tea.Msg {
		resume, err := tracker.Resume(content.ID)
		if err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpPlaybackStart, err)}
		}
		return playbackReadyMsg{content: content, batchID: batchID, resume: resume}
	}
}

func requestOTPCmd(provider auth.Provider, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		if err := provider.RequestOTP(ctx, email); err != nil {
			return errMsg{text: errmsg.Format(errmsg.OpOTPRequest, err)}
		}
		return otpRequestedMsg{email: email}
	}
}

func verifyOTPCmd(provider auth.Provider, email, code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		sess, err := provider.VerifyOTP(ctx, email, code)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCode) {
				return errMsg{text: "Invalid or expired code"}
			}
			return errMsg{text: errmsg.Format(errmsg.OpOTPVerify, err)}
		}
		return signedInMsg{session: *sess}
	}
}

func refreshSessionCmd(provider auth.Provider, refreshToken string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		sess, err := provider.Refresh(ctx, refreshToken)
		if err != nil {
			// A dead refresh token just means signing in again.
			return signedOutMsg{}
		}
		return sessionRefreshedMsg{session: *sess}
	}
}

func signOutCmd(provider auth.Provider, accessToken string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		// Best effort: the local session is cleared regardless.
		_ = provider.SignOut(ctx, accessToken)
		return signedOutMsg{}
	}
}
