// internal/state/mock.go
package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	navState *NavigationState
	auth     *AuthState
	progress map[string]ProgressRow
	attempts []QuizAttempt
	volume   VolumeState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		progress: make(map[string]ProgressRow),
		volume:   VolumeState{Volume: 1.0},
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) GetAuth() (*AuthState, error) {
	return m.auth, nil
}

func (m *Mock) SaveAuth(st AuthState) error {
	m.auth = &st
	return nil
}

func (m *Mock) ClearAuth() error {
	m.auth = nil
	return nil
}

func (m *Mock) GetProgress(contentID string) (*ProgressRow, error) {
	if p, ok := m.progress[contentID]; ok {
		return &p, nil
	}
	return nil, nil //nolint:nilnil // mirrors Manager
}

func (m *Mock) SaveProgress(p ProgressRow) error {
	if prev, ok := m.progress[p.ContentID]; ok && prev.MaxPercent > p.MaxPercent {
		p.MaxPercent = prev.MaxPercent
	}
	m.progress[p.ContentID] = p
	return nil
}

func (m *Mock) ListProgress(batchID string) ([]ProgressRow, error) {
	var out []ProgressRow
	for _, p := range m.progress {
		if p.BatchID == batchID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Mock) GetVolume() (*VolumeState, error) {
	v := m.volume
	return &v, nil
}

func (m *Mock) SaveVolume(volume float64, muted bool) error {
	m.volume = VolumeState{Volume: volume, Muted: muted}
	return nil
}

func (m *Mock) SaveQuizAttempt(a QuizAttempt) error {
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *Mock) BestScore(quizID string) (int, bool, error) {
	best, found := 0, false
	for _, a := range m.attempts {
		if a.QuizID == quizID && (!found || a.Score > best) {
			best, found = a.Score, true
		}
	}
	return best, found, nil
}

func (m *Mock) ListQuizAttempts(quizID string) ([]QuizAttempt, error) {
	var out []QuizAttempt
	for _, a := range m.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
