package catalog

import "context"

// Store is the catalog backend contract.
type Store interface {
	ListBatches(ctx context.Context) ([]Batch, error)
	GetBatch(ctx context.Context, id string) (*Batch, error)
	ListSubjects(ctx context.Context, batchID string) ([]Subject, error)
	ListChapters(ctx context.Context, subjectID string) ([]Chapter, error)
	ListContents(ctx context.Context, chapterID string) ([]ContentItem, error)
	GetContent(ctx context.Context, id string) (*ContentItem, error)
	GetQuiz(ctx context.Context, contentID string) (*Quiz, error)
	ListAnnouncements(ctx context.Context, batchID string) ([]Announcement, error)
	ListEnrolledBatches(ctx context.Context, userID string) ([]Batch, error)
	IsEnrolled(ctx context.Context, userID, batchID string) (bool, error)
	Enroll(ctx context.Context, userID, batchID string) error

	CreateBatch(ctx context.Context, b Batch) error
	CreateSubject(ctx context.Context, s Subject) error
	CreateChapter(ctx context.Context, c Chapter) error
	CreateContent(ctx context.Context, item ContentItem) error
	CreateQuiz(ctx context.Context, q Quiz) error
	CreateAnnouncement(ctx context.Context, a Announcement) error
	DeleteBatch(ctx context.Context, id string) error
	DeleteContent(ctx context.Context, id string) error

	Close()
}

var (
	_ Store = (*PgStore)(nil)
	_ Store = (*Mock)(nil)
)
