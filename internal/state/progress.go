package state

import (
	"database/sql"
	"errors"
	"time"
)

// ProgressRow is one content item's watch record. MaxPercent only ever
// grows: rewatching an earlier section never lowers it.
type ProgressRow struct {
	ContentID       string
	BatchID         string
	PositionSeconds int
	DurationSeconds int
	MaxPercent      float64
	UpdatedAt       time.Time
}

// GetProgress returns the watch record for one content item, or nil if it
// was never played.
func (m *Manager) GetProgress(contentID string) (*ProgressRow, error) {
	row := m.db.QueryRow(`
		SELECT content_id, batch_id, position_seconds, duration_seconds, max_percent, updated_at
		FROM watch_progress WHERE content_id = ?
	`, contentID)
	return scanProgress(row)
}

// SaveProgress upserts a watch record. The stored max_percent is kept if
// it exceeds the incoming one.
func (m *Manager) SaveProgress(p ProgressRow) error {
	_, err := m.db.Exec(`
		INSERT INTO watch_progress (content_id, batch_id, position_seconds, duration_seconds, max_percent, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_id) DO UPDATE SET
			batch_id = excluded.batch_id,
			position_seconds = excluded.position_seconds,
			duration_seconds = excluded.duration_seconds,
			max_percent = MAX(watch_progress.max_percent, excluded.max_percent),
			updated_at = excluded.updated_at
	`, p.ContentID, p.BatchID, p.PositionSeconds, p.DurationSeconds, p.MaxPercent, p.UpdatedAt.Unix())
	return err
}

// ListProgress returns all watch records for a batch, most recent first.
func (m *Manager) ListProgress(batchID string) ([]ProgressRow, error) {
	rows, err := m.db.Query(`
		SELECT content_id, batch_id, position_seconds, duration_seconds, max_percent, updated_at
		FROM watch_progress WHERE batch_id = ?
		ORDER BY updated_at DESC
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProgressRow
	for rows.Next() {
		var p ProgressRow
		var updated int64
		if err := rows.Scan(&p.ContentID, &p.BatchID, &p.PositionSeconds,
			&p.DurationSeconds, &p.MaxPercent, &updated); err != nil {
			return nil, err
		}
		p.UpdatedAt = time.Unix(updated, 0)
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProgress(row *sql.Row) (*ProgressRow, error) {
	var p ProgressRow
	var updated int64
	err := row.Scan(&p.ContentID, &p.BatchID, &p.PositionSeconds,
		&p.DurationSeconds, &p.MaxPercent, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // never played is a valid state
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Unix(updated, 0)
	return &p, nil
}
