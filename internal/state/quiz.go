package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/alakhsir/studium/internal/db"
)

// QuizAttempt is one finished quiz run.
type QuizAttempt struct {
	QuizID      string
	Score       int
	MaxScore    int
	Correct     int
	Incorrect   int
	Unattempted int
	TakenAt     time.Time
}

// SaveQuizAttempt records an attempt and bumps the best score when beaten.
// Both writes land in one transaction.
func (m *Manager) SaveQuizAttempt(a QuizAttempt) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO quiz_attempts (quiz_id, score, max_score, correct, incorrect, unattempted, taken_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.QuizID, a.Score, a.MaxScore, a.Correct, a.Incorrect, a.Unattempted, a.TakenAt.Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO quiz_best (quiz_id, best_score)
			VALUES (?, ?)
			ON CONFLICT(quiz_id) DO UPDATE SET
				best_score = MAX(quiz_best.best_score, excluded.best_score)
		`, a.QuizID, a.Score)
		return err
	})
}

// BestScore returns the best recorded score for a quiz, and whether any
// attempt exists.
func (m *Manager) BestScore(quizID string) (int, bool, error) {
	var best int
	err := m.db.QueryRow(`SELECT best_score FROM quiz_best WHERE quiz_id = ?`, quizID).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return best, true, nil
}

// ListQuizAttempts returns attempts for a quiz, most recent first.
func (m *Manager) ListQuizAttempts(quizID string) ([]QuizAttempt, error) {
	rows, err := m.db.Query(`
		SELECT quiz_id, score, max_score, correct, incorrect, unattempted, taken_at
		FROM quiz_attempts WHERE quiz_id = ?
		ORDER BY taken_at DESC
	`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuizAttempt
	for rows.Next() {
		var a QuizAttempt
		var taken int64
		if err := rows.Scan(&a.QuizID, &a.Score, &a.MaxScore, &a.Correct,
			&a.Incorrect, &a.Unattempted, &taken); err != nil {
			return nil, err
		}
		a.TakenAt = time.Unix(taken, 0)
		out = append(out, a)
	}
	return out, rows.Err()
}
