package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			page TEXT NOT NULL,
			batch_id TEXT,
			subject_id TEXT,
			chapter_id TEXT,
			selected_id TEXT
		);

		CREATE TABLE IF NOT EXISTS auth_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			access_token TEXT NOT NULL,
			refresh_token TEXT,
			user_id TEXT NOT NULL,
			email TEXT,
			expires_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS watch_progress (
			content_id TEXT PRIMARY KEY,
			batch_id TEXT NOT NULL,
			position_seconds INTEGER NOT NULL DEFAULT 0,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			max_percent REAL NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_watch_progress_batch ON watch_progress(batch_id);
		CREATE INDEX IF NOT EXISTS idx_watch_progress_updated ON watch_progress(updated_at DESC);

		CREATE TABLE IF NOT EXISTS player_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			volume REAL NOT NULL DEFAULT 1.0,
			muted INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS quiz_attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			unattempted INTEGER NOT NULL,
			taken_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_quiz_attempts_quiz ON quiz_attempts(quiz_id, taken_at DESC);

		CREATE TABLE IF NOT EXISTS quiz_best (
			quiz_id TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add batch_id column if missing
	_, _ = db.Exec(`ALTER TABLE watch_progress ADD COLUMN batch_id TEXT NOT NULL DEFAULT ''`)

	return nil
}
