// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	GetAuth() (*AuthState, error)
	SaveAuth(st AuthState) error
	ClearAuth() error
	GetProgress(contentID string) (*ProgressRow, error)
	SaveProgress(p ProgressRow) error
	ListProgress(batchID string) ([]ProgressRow, error)
	GetVolume() (*VolumeState, error)
	SaveVolume(volume float64, muted bool) error
	SaveQuizAttempt(a QuizAttempt) error
	BestScore(quizID string) (int, bool, error)
	ListQuizAttempts(quizID string) ([]QuizAttempt, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
