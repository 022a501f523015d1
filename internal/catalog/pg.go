package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore serves the catalog from Postgres.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore connects to the catalog database and verifies the connection.
func NewPgStore(ctx context.Context, databaseURL string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PgStore{pool: pool}, nil
}

func (s *PgStore) Close() {
	s.pool.Close()
}

func (s *PgStore) ListBatches(ctx context.Context) ([]Batch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, thumbnail_url, language, start_date, end_date, price_cents, created_at
		FROM batches
		ORDER BY start_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBatches(rows)
}

func (s *PgStore) GetBatch(ctx context.Context, id string) (*Batch, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, thumbnail_url, language, start_date, end_date, price_cents, created_at
		FROM batches
		WHERE id = $1
	`, id)

	var b Batch
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.ThumbnailURL,
		&b.Language,
		&b.StartDate,
		&b.EndDate,
		&b.PriceCents,
		&b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil //nolint:nilnil // missing batch is not an error
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PgStore) ListSubjects(ctx context.Context, batchID string) ([]Subject, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, batch_id, name, slug, ordinal
		FROM subjects
		WHERE batch_id = $1
		ORDER BY ordinal, name
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		var sub Subject
		if err := rows.Scan(&sub.ID, &sub.BatchID, &sub.Name, &sub.Slug, &sub.Ordinal); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *PgStore) ListChapters(ctx context.Context, subjectID string) ([]Chapter, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, subject_id, name, ordinal
		FROM chapters
		WHERE subject_id = $1
		ORDER BY ordinal, name
	`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Chapter
	for rows.Next() {
		var ch Chapter
		if err := rows.Scan(&ch.ID, &ch.SubjectID, &ch.Name, &ch.Ordinal); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

func (s *PgStore) ListContents(ctx context.Context, chapterID string) ([]ContentItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, chapter_id, content_type, title, url, thumbnail_url, duration_seconds, ordinal, published_at
		FROM contents
		WHERE chapter_id = $1
		ORDER BY ordinal, published_at
	`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ContentItem
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *PgStore) GetContent(ctx context.Context, id string) (*ContentItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, chapter_id, content_type, title, url, thumbnail_url, duration_seconds, ordinal, published_at
		FROM contents
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	item, err := scanContent(rows)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PgStore) GetQuiz(ctx context.Context, contentID string) (*Quiz, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, content_id, title, duration_minutes
		FROM quizzes
		WHERE content_id = $1
	`, contentID)

	var q Quiz
	err := row.Scan(&q.ID, &q.ContentID, &q.Title, &q.DurationMinutes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil //nolint:nilnil // content without quiz is not an error
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, quiz_id, prompt, options, correct_index, ordinal
		FROM quiz_questions
		WHERE quiz_id = $1
		ORDER BY ordinal
	`, q.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var question QuizQuestion
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Prompt,
			&question.Options, &question.CorrectIndex, &question.Ordinal); err != nil {
			return nil, err
		}
		q.Questions = append(q.Questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *PgStore) ListAnnouncements(ctx context.Context, batchID string) ([]Announcement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, batch_id, text, attachment_url, created_at
		FROM announcements
		WHERE batch_id = $1
		ORDER BY created_at DESC
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var a Announcement
		var attachment *string
		if err := rows.Scan(&a.ID, &a.BatchID, &a.Text, &attachment, &a.CreatedAt); err != nil {
			return nil, err
		}
		if attachment != nil {
			a.AttachmentURL = *attachment
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PgStore) ListEnrolledBatches(ctx context.Context, userID string) ([]Batch, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT b.id, b.name, b.description, b.thumbnail_url, b.language, b.start_date, b.end_date, b.price_cents, b.created_at
		FROM batches b
		JOIN enrollments e ON e.batch_id = b.id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBatches(rows)
}

func (s *PgStore) IsEnrolled(ctx context.Context, userID, batchID string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, `
		SELECT 1 FROM enrollments WHERE user_id = $1 AND batch_id = $2
	`, userID, batchID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PgStore) Enroll(ctx context.Context, userID, batchID string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO enrollments (user_id, batch_id, enrolled_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, batch_id) DO NOTHING
	`, userID, batchID, time.Now())
	return err
}

func (s *PgStore) CreateBatch(ctx context.Context, b Batch) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO batches (id, name, description, thumbnail_url, language, start_date, end_date, price_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, b.ID, b.Name, b.Description, b.ThumbnailURL, b.Language, b.StartDate, b.EndDate, b.PriceCents, b.CreatedAt)
	return err
}

func (s *PgStore) CreateSubject(ctx context.Context, sub Subject) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO subjects (id, batch_id, name, slug, ordinal)
		VALUES ($1, $2, $3, $4, $5)
	`, sub.ID, sub.BatchID, sub.Name, sub.Slug, sub.Ordinal)
	return err
}

func (s *PgStore) CreateChapter(ctx context.Context, c Chapter) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chapters (id, subject_id, name, ordinal)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.SubjectID, c.Name, c.Ordinal)
	return err
}

func (s *PgStore) CreateContent(ctx context.Context, item ContentItem) error {
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contents (id, chapter_id, content_type, title, url, thumbnail_url, duration_seconds, ordinal, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, item.ChapterID, string(item.Type), item.Title, item.URL, item.ThumbnailURL,
		int64(item.Duration.Seconds()), item.Ordinal, item.PublishedAt)
	return err
}

// CreateQuiz inserts the quiz and all its questions in one transaction.
func (s *PgStore) CreateQuiz(ctx context.Context, q Quiz) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(ctx, `
		INSERT INTO quizzes (id, content_id, title, duration_minutes)
		VALUES ($1, $2, $3, $4)
	`, q.ID, q.ContentID, q.Title, q.DurationMinutes)
	if err != nil {
		return err
	}

	for _, question := range q.Questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO quiz_questions (id, quiz_id, prompt, options, correct_index, ordinal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, question.ID, q.ID, question.Prompt, question.Options, question.CorrectIndex, question.Ordinal)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *PgStore) CreateAnnouncement(ctx context.Context, a Announcement) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	var attachment *string
	if a.AttachmentURL != "" {
		attachment = &a.AttachmentURL
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO announcements (id, batch_id, text, attachment_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.BatchID, a.Text, attachment, a.CreatedAt)
	return err
}

// DeleteBatch removes a batch; the schema cascades to its subject tree.
func (s *PgStore) DeleteBatch(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	return err
}

func (s *PgStore) DeleteContent(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	return err
}

func scanBatches(rows pgx.Rows) ([]Batch, error) {
	var out []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Description,
			&b.ThumbnailURL,
			&b.Language,
			&b.StartDate,
			&b.EndDate,
			&b.PriceCents,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanContent(rows pgx.Rows) (ContentItem, error) {
	var item ContentItem
	var durationSeconds int64
	err := rows.Scan(
		&item.ID,
		&item.ChapterID,
		&item.Type,
		&item.Title,
		&item.URL,
		&item.ThumbnailURL,
		&durationSeconds,
		&item.Ordinal,
		&item.PublishedAt,
	)
	if err != nil {
		return ContentItem{}, err
	}
	item.Duration = time.Duration(durationSeconds) * time.Second
	return item, nil
}
