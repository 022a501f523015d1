package state

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	// Configure SQLite
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			t.Fatalf("failed to set pragma: %v", err)
		}
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func testManager(t *testing.T) *Manager {
	t.Helper()
	m := &Manager{db: setupTestDB(t)}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// TestGetNavigation_Empty tests getting navigation from empty database.
func TestGetNavigation_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	nav, err := getNavigation(db)
	if err != nil {
		t.Fatalf("getNavigation failed: %v", err)
	}
	if nav != nil {
		t.Errorf("expected nil navigation on empty db, got %+v", nav)
	}
}

// TestSaveAndGetNavigation tests saving and retrieving navigation state.
func TestSaveAndGetNavigation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	state := NavigationState{
		Page:       "chapter",
		BatchID:    "batch-42",
		SubjectID:  "subject-7",
		ChapterID:  "chapter-3",
		SelectedID: "content-19",
	}

	if err := saveNavigation(db, state); err != nil {
		t.Fatalf("saveNavigation failed: %v", err)
	}

	retrieved, err := getNavigation(db)
	if err != nil {
		t.Fatalf("getNavigation failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected navigation state, got nil")
	}
	if *retrieved != state {
		t.Errorf("retrieved = %+v, want %+v", *retrieved, state)
	}
}

// TestSaveNavigation_Overwrite tests that saving twice keeps only the latest.
func TestSaveNavigation_Overwrite(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := NavigationState{Page: "study"}
	second := NavigationState{Page: "batch", BatchID: "batch-1"}

	if err := saveNavigation(db, first); err != nil {
		t.Fatalf("saveNavigation failed: %v", err)
	}
	if err := saveNavigation(db, second); err != nil {
		t.Fatalf("saveNavigation failed: %v", err)
	}

	retrieved, err := getNavigation(db)
	if err != nil {
		t.Fatalf("getNavigation failed: %v", err)
	}
	if retrieved.Page != "batch" || retrieved.BatchID != "batch-1" {
		t.Errorf("retrieved = %+v, want second save", *retrieved)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM navigation_state`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("navigation_state rows = %d, want 1", count)
	}
}

func TestAuthRoundTrip(t *testing.T) {
	m := testManager(t)

	auth, err := m.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth failed: %v", err)
	}
	if auth != nil {
		t.Errorf("expected nil auth on empty db, got %+v", auth)
	}

	saved := AuthState{
		AccessToken:  "jwt-token",
		RefreshToken: "refresh-token",
		UserID:       "user-1",
		Email:        "student@example.com",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
	}
	if err := m.SaveAuth(saved); err != nil {
		t.Fatalf("SaveAuth failed: %v", err)
	}

	auth, err = m.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth failed: %v", err)
	}
	if auth == nil {
		t.Fatal("expected auth state, got nil")
	}
	if auth.AccessToken != saved.AccessToken || auth.UserID != saved.UserID ||
		auth.Email != saved.Email || !auth.ExpiresAt.Equal(saved.ExpiresAt) {
		t.Errorf("retrieved = %+v, want %+v", *auth, saved)
	}
	if auth.Expired() {
		t.Error("fresh token reported expired")
	}

	if err := m.ClearAuth(); err != nil {
		t.Fatalf("ClearAuth failed: %v", err)
	}
	auth, err = m.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth failed: %v", err)
	}
	if auth != nil {
		t.Errorf("expected nil auth after clear, got %+v", auth)
	}
}

func TestAuthExpired(t *testing.T) {
	past := AuthState{ExpiresAt: time.Now().Add(-time.Minute)}
	if !past.Expired() {
		t.Error("past expiry not reported expired")
	}
	zero := AuthState{}
	if zero.Expired() {
		t.Error("zero expiry reported expired")
	}
}

func TestProgressMaxPercentNeverDrops(t *testing.T) {
	m := testManager(t)

	base := ProgressRow{
		ContentID:       "content-1",
		BatchID:         "batch-1",
		PositionSeconds: 540,
		DurationSeconds: 600,
		MaxPercent:      90,
		UpdatedAt:       time.Now(),
	}
	if err := m.SaveProgress(base); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}

	// Rewatching from the start reports a lower percentage.
	rewatch := base
	rewatch.PositionSeconds = 60
	rewatch.MaxPercent = 10
	if err := m.SaveProgress(rewatch); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}

	got, err := m.GetProgress("content-1")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected progress row, got nil")
	}
	if got.MaxPercent != 90 {
		t.Errorf("MaxPercent = %v, want 90 preserved", got.MaxPercent)
	}
	if got.PositionSeconds != 60 {
		t.Errorf("PositionSeconds = %d, want 60 (latest position)", got.PositionSeconds)
	}
}

func TestProgressUnknownContent(t *testing.T) {
	m := testManager(t)

	got, err := m.GetProgress("never-played")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown content, got %+v", got)
	}
}

func TestListProgressByBatch(t *testing.T) {
	m := testManager(t)

	now := time.Now()
	rows := []ProgressRow{
		{ContentID: "a", BatchID: "batch-1", MaxPercent: 50, UpdatedAt: now.Add(-time.Hour)},
		{ContentID: "b", BatchID: "batch-1", MaxPercent: 20, UpdatedAt: now},
		{ContentID: "c", BatchID: "batch-2", MaxPercent: 80, UpdatedAt: now},
	}
	for _, r := range rows {
		if err := m.SaveProgress(r); err != nil {
			t.Fatalf("SaveProgress failed: %v", err)
		}
	}

	got, err := m.ListProgress("batch-1")
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListProgress returned %d rows, want 2", len(got))
	}
	// Most recent first.
	if got[0].ContentID != "b" || got[1].ContentID != "a" {
		t.Errorf("order = [%s %s], want [b a]", got[0].ContentID, got[1].ContentID)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	m := testManager(t)

	v, err := m.GetVolume()
	if err != nil {
		t.Fatalf("GetVolume failed: %v", err)
	}
	if v.Volume != 1.0 || v.Muted {
		t.Errorf("default volume = %+v, want 1.0/unmuted", *v)
	}

	if err := m.SaveVolume(0.4, true); err != nil {
		t.Fatalf("SaveVolume failed: %v", err)
	}
	v, err = m.GetVolume()
	if err != nil {
		t.Fatalf("GetVolume failed: %v", err)
	}
	if v.Volume != 0.4 || !v.Muted {
		t.Errorf("volume = %+v, want 0.4/muted", *v)
	}
}

func TestSaveNavigationDebounce(t *testing.T) {
	m := testManager(t)

	m.SaveNavigation(NavigationState{Page: "study"})
	m.SaveNavigation(NavigationState{Page: "batch", BatchID: "batch-9"})

	// Before the debounce fires nothing is written.
	nav, err := m.GetNavigation()
	if err != nil {
		t.Fatalf("GetNavigation failed: %v", err)
	}
	if nav != nil {
		t.Errorf("navigation written before debounce: %+v", nav)
	}

	time.Sleep(saveDebounce + 200*time.Millisecond)

	nav, err = m.GetNavigation()
	if err != nil {
		t.Fatalf("GetNavigation failed: %v", err)
	}
	if nav == nil {
		t.Fatal("navigation not written after debounce")
	}
	if nav.Page != "batch" {
		t.Errorf("Page = %q, want latest save %q", nav.Page, "batch")
	}
}
