package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/alakhsir/studium/internal/db"
)

// NavigationState restores the user to the page they left off on.
type NavigationState struct {
	Page       string // "batches", "batch", "chapters", "contents", "profile"
	BatchID    string
	SubjectID  string
	ChapterID  string
	SelectedID string // focused list entry within the page
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT page, batch_id, subject_id, chapter_id, selected_id
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var batchID, subjectID, chapterID, selectedID sql.NullString

	err := row.Scan(&state.Page, &batchID, &subjectID, &chapterID, &selectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.BatchID = dbutil.NullStringValue(batchID)
	state.SubjectID = dbutil.NullStringValue(subjectID)
	state.ChapterID = dbutil.NullStringValue(chapterID)
	state.SelectedID = dbutil.NullStringValue(selectedID)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, page, batch_id, subject_id, chapter_id, selected_id)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page = excluded.page,
			batch_id = excluded.batch_id,
			subject_id = excluded.subject_id,
			chapter_id = excluded.chapter_id,
			selected_id = excluded.selected_id
	`, state.Page, state.BatchID, state.SubjectID, state.ChapterID, state.SelectedID)

	return err
}
