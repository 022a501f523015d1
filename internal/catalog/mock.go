package catalog

import (
	"context"
	"sync"
	"time"
)

// Mock is an in-memory Store for tests.
type Mock struct {
	mu            sync.Mutex
	Batches       []Batch
	Subjects      map[string][]Subject     // batchID -> subjects
	Chapters      map[string][]Chapter     // subjectID -> chapters
	Contents      map[string][]ContentItem // chapterID -> contents
	Quizzes       map[string]Quiz          // contentID -> quiz
	Announces     map[string][]Announcement
	Enrollments   map[string][]string // userID -> batchIDs
	Err           error               // returned from every call when set
	EnrollCalls   int
	ClosedCounter int
}

// NewMock creates an empty mock catalog.
func NewMock() *Mock {
	return &Mock{
		Subjects:    make(map[string][]Subject),
		Chapters:    make(map[string][]Chapter),
		Contents:    make(map[string][]ContentItem),
		Quizzes:     make(map[string]Quiz),
		Announces:   make(map[string][]Announcement),
		Enrollments: make(map[string][]string),
	}
}

func (m *Mock) ListBatches(_ context.Context) ([]Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]Batch(nil), m.Batches...), nil
}

func (m *Mock) GetBatch(_ context.Context, id string) (*Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, b := range m.Batches {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, nil //nolint:nilnil // mirrors PgStore
}

func (m *Mock) ListSubjects(_ context.Context, batchID string) ([]Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]Subject(nil), m.Subjects[batchID]...), nil
}

func (m *Mock) ListChapters(_ context.Context, subjectID string) ([]Chapter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]Chapter(nil), m.Chapters[subjectID]...), nil
}

func (m *Mock) ListContents(_ context.Context, chapterID string) ([]ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]ContentItem(nil), m.Contents[chapterID]...), nil
}

func (m *Mock) GetContent(_ context.Context, id string) (*ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, items := range m.Contents {
		for _, item := range items {
			if item.ID == id {
				out := item
				return &out, nil
			}
		}
	}
	return nil, nil //nolint:nilnil // mirrors PgStore
}

func (m *Mock) GetQuiz(_ context.Context, contentID string) (*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if q, ok := m.Quizzes[contentID]; ok {
		out := q
		return &out, nil
	}
	return nil, nil //nolint:nilnil // mirrors PgStore
}

func (m *Mock) ListAnnouncements(_ context.Context, batchID string) ([]Announcement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]Announcement(nil), m.Announces[batchID]...), nil
}

func (m *Mock) ListEnrolledBatches(_ context.Context, userID string) ([]Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []Batch
	for _, id := range m.Enrollments[userID] {
		for _, b := range m.Batches {
			if b.ID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (m *Mock) IsEnrolled(_ context.Context, userID, batchID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, id := range m.Enrollments[userID] {
		if id == batchID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Mock) Enroll(_ context.Context, userID, batchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrollCalls++
	if m.Err != nil {
		return m.Err
	}
	for _, id := range m.Enrollments[userID] {
		if id == batchID {
			return nil
		}
	}
	m.Enrollments[userID] = append(m.Enrollments[userID], batchID)
	return nil
}

func (m *Mock) CreateBatch(_ context.Context, b Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	m.Batches = append(m.Batches, b)
	return nil
}

func (m *Mock) CreateSubject(_ context.Context, s Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Subjects[s.BatchID] = append(m.Subjects[s.BatchID], s)
	return nil
}

func (m *Mock) CreateChapter(_ context.Context, c Chapter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Chapters[c.SubjectID] = append(m.Chapters[c.SubjectID], c)
	return nil
}

func (m *Mock) CreateContent(_ context.Context, item ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	m.Contents[item.ChapterID] = append(m.Contents[item.ChapterID], item)
	return nil
}

func (m *Mock) CreateQuiz(_ context.Context, q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Quizzes[q.ContentID] = q
	return nil
}

func (m *Mock) CreateAnnouncement(_ context.Context, a Announcement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.Announces[a.BatchID] = append(m.Announces[a.BatchID], a)
	return nil
}

func (m *Mock) DeleteBatch(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i, b := range m.Batches {
		if b.ID == id {
			m.Batches = append(m.Batches[:i], m.Batches[i+1:]...)
			break
		}
	}
	delete(m.Subjects, id)
	delete(m.Announces, id)
	return nil
}

func (m *Mock) DeleteContent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for chapterID, items := range m.Contents {
		for i, item := range items {
			if item.ID == id {
				m.Contents[chapterID] = append(items[:i], items[i+1:]...)
				delete(m.Quizzes, id)
				return nil
			}
		}
	}
	return nil
}

func (m *Mock) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClosedCounter++
}

// AddBatch seeds a batch with optional subject tree, for tests.
func (m *Mock) AddBatch(b Batch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	m.Batches = append(m.Batches, b)
}
