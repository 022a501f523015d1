// Command studiumadmin manages the catalog database: it creates the schema
// and can seed it with the demo course data for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alakhsir/studium/internal/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	thumbnail_url TEXT NOT NULL DEFAULT '',
	language      TEXT NOT NULL DEFAULT '',
	start_date    TIMESTAMPTZ NOT NULL,
	end_date      TIMESTAMPTZ NOT NULL,
	price_cents   BIGINT NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS subjects (
	id       TEXT PRIMARY KEY,
	batch_id TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	slug     TEXT NOT NULL,
	ordinal  INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS chapters (
	id         TEXT PRIMARY KEY,
	subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	ordinal    INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contents (
	id               TEXT PRIMARY KEY,
	chapter_id       TEXT NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
	content_type     TEXT NOT NULL,
	title            TEXT NOT NULL,
	url              TEXT NOT NULL DEFAULT '',
	thumbnail_url    TEXT NOT NULL DEFAULT '',
	duration_seconds BIGINT NOT NULL DEFAULT 0,
	ordinal          INT NOT NULL DEFAULT 0,
	published_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS quizzes (
	id               TEXT PRIMARY KEY,
	content_id       TEXT NOT NULL REFERENCES contents(id) ON DELETE CASCADE,
	title            TEXT NOT NULL,
	duration_minutes INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS quiz_questions (
	id            TEXT PRIMARY KEY,
	quiz_id       TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
	prompt        TEXT NOT NULL,
	options       TEXT[] NOT NULL,
	correct_index INT NOT NULL,
	ordinal       INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS announcements (
	id             TEXT PRIMARY KEY,
	batch_id       TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	text           TEXT NOT NULL,
	attachment_url TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS enrollments (
	user_id     TEXT NOT NULL,
	batch_id    TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	enrolled_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, batch_id)
);
`

func main() {
	dbURL := flag.String("db", os.Getenv("DATABASE_URL"), "Postgres connection string")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: studiumadmin [-db URL] <init|seed>\n\n")
		fmt.Fprintf(os.Stderr, "  init   create the catalog schema\n")
		fmt.Fprintf(os.Stderr, "  seed   insert the demo courses (implies init)\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dbURL == "" {
		log.Fatal("no database: pass -db or set DATABASE_URL")
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	switch flag.Arg(0) {
	case "init":
		if err := initSchema(ctx, conn); err != nil {
			log.Fatalf("init: %v", err)
		}
		log.Println("schema created")
	case "seed":
		if err := initSchema(ctx, conn); err != nil {
			log.Fatalf("init: %v", err)
		}
		if err := seed(ctx, *dbURL); err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Println("demo catalog seeded")
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func initSchema(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, schema)
	return err
}

// seed inserts the demo catalog under fresh IDs, so repeated runs add new
// rows instead of colliding with earlier ones.
func seed(ctx context.Context, dbURL string) error {
	store, err := catalog.NewPgStore(ctx, dbURL)
	if err != nil {
		return err
	}
	defer store.Close()

	demo := catalog.NewDemo()

	for _, b := range demo.Batches {
		batch := b
		batch.ID = uuid.NewString()
		if err := store.CreateBatch(ctx, batch); err != nil {
			return fmt.Errorf("batch %s: %w", b.Name, err)
		}
		log.Printf("batch %s -> %s", batch.Name, batch.ID)

		for _, a := range demo.Announces[b.ID] {
			ann := a
			ann.ID = uuid.NewString()
			ann.BatchID = batch.ID
			if err := store.CreateAnnouncement(ctx, ann); err != nil {
				return fmt.Errorf("announcement: %w", err)
			}
		}

		for _, s := range demo.Subjects[b.ID] {
			subject := s
			subject.ID = uuid.NewString()
			subject.BatchID = batch.ID
			if err := store.CreateSubject(ctx, subject); err != nil {
				return fmt.Errorf("subject %s: %w", s.Name, err)
			}

			for _, ch := range demo.Chapters[s.ID] {
				chapter := ch
				chapter.ID = uuid.NewString()
				chapter.SubjectID = subject.ID
				if err := store.CreateChapter(ctx, chapter); err != nil {
					return fmt.Errorf("chapter %s: %w", ch.Name, err)
				}

				if err := seedContents(ctx, store, demo, ch.ID, chapter.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedContents(ctx context.Context, store *catalog.PgStore, demo *catalog.Mock, demoChapterID, chapterID string) error {
	for _, c := range demo.Contents[demoChapterID] {
		item := c
		item.ID = uuid.NewString()
		item.ChapterID = chapterID
		if err := store.CreateContent(ctx, item); err != nil {
			return fmt.Errorf("content %s: %w", c.Title, err)
		}

		q, ok := demo.Quizzes[c.ID]
		if !ok {
			continue
		}

		quiz := q
		quiz.ID = uuid.NewString()
		quiz.ContentID = item.ID
		quiz.Questions = append([]catalog.QuizQuestion(nil), q.Questions...)
		for i := range quiz.Questions {
			quiz.Questions[i].ID = uuid.NewString()
			quiz.Questions[i].QuizID = quiz.ID
		}
		if err := store.CreateQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("quiz %s: %w", q.Title, err)
		}
	}
	return nil
}
