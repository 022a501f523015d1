package catalog

import "time"

// NewDemo returns a mock catalog pre-seeded with sample courses, used when
// no database is configured so the client is explorable out of the box.
func NewDemo() *Mock {
	m := NewMock()

	now := time.Now()

	m.Batches = []Batch{
		{
			ID:          "demo-jee",
			Name:        "JEE 2027 Foundation",
			Description: "Two-year physics, chemistry and maths program for JEE aspirants.",
			Language:    "English",
			StartDate:   now.AddDate(0, -1, 0),
			EndDate:     now.AddDate(1, 11, 0),
			CreatedAt:   now.AddDate(0, -2, 0),
		},
		{
			ID:          "demo-neet",
			Name:        "NEET 2027 Achiever",
			Description: "Biology-first NEET preparation with weekly tests.",
			Language:    "Hinglish",
			StartDate:   now.AddDate(0, 1, 0),
			EndDate:     now.AddDate(2, 0, 0),
			PriceCents:  499900,
			CreatedAt:   now.AddDate(0, -1, 0),
		},
	}

	m.Subjects["demo-jee"] = []Subject{
		{ID: "demo-phy", BatchID: "demo-jee", Name: "Physics", Slug: "physics", Ordinal: 1},
		{ID: "demo-chem", BatchID: "demo-jee", Name: "Chemistry", Slug: "chemistry", Ordinal: 2},
	}

	m.Chapters["demo-phy"] = []Chapter{
		{ID: "demo-kin", SubjectID: "demo-phy", Name: "Kinematics", Ordinal: 1},
		{ID: "demo-nlm", SubjectID: "demo-phy", Name: "Laws of Motion", Ordinal: 2},
	}

	m.Contents["demo-kin"] = []ContentItem{
		{
			ID:          "demo-kin-l1",
			ChapterID:   "demo-kin",
			Type:        ContentVideo,
			Title:       "Kinematics L1: Motion in a Straight Line",
			URL:         "https://demo.studium.local/kinematics-l1.mp4",
			Duration:    52 * time.Minute,
			Ordinal:     1,
			PublishedAt: now.AddDate(0, 0, -14),
		},
		{
			ID:          "demo-kin-l2",
			ChapterID:   "demo-kin",
			Type:        ContentVideo,
			Title:       "Kinematics L2: Relative Motion",
			URL:         "https://demo.studium.local/kinematics-l2.mp4",
			Duration:    48 * time.Minute,
			Ordinal:     2,
			PublishedAt: now.AddDate(0, 0, -7),
		},
		{
			ID:          "demo-kin-quiz",
			ChapterID:   "demo-kin",
			Type:        ContentQuiz,
			Title:       "Kinematics Chapter Test",
			Ordinal:     3,
			PublishedAt: now.AddDate(0, 0, -3),
		},
	}

	m.Quizzes["demo-kin-quiz"] = Quiz{
		ID:              "demo-quiz-1",
		ContentID:       "demo-kin-quiz",
		Title:           "Kinematics Chapter Test",
		DurationMinutes: 10,
		Questions: []QuizQuestion{
			{
				ID:           "demo-q1",
				QuizID:       "demo-quiz-1",
				Prompt:       "A body moving with uniform velocity has",
				Options:      []string{"zero acceleration", "uniform acceleration", "variable acceleration", "infinite acceleration"},
				CorrectIndex: 0,
				Ordinal:      1,
			},
			{
				ID:           "demo-q2",
				QuizID:       "demo-quiz-1",
				Prompt:       "The slope of a position-time graph gives",
				Options:      []string{"acceleration", "velocity", "distance", "jerk"},
				CorrectIndex: 1,
				Ordinal:      2,
			},
		},
	}

	m.Announces["demo-jee"] = []Announcement{
		{
			ID:        "demo-ann-1",
			BatchID:   "demo-jee",
			Text:      "Weekly test every Sunday at 10 AM. Attendance is mandatory.",
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}

	return m
}
