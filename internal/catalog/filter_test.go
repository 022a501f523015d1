package catalog

import (
	"testing"
)

func TestFilterBatches(t *testing.T) {
	batches := []Batch{
		{ID: "1", Name: "JEE 2027 Dropper"},
		{ID: "2", Name: "NEET Achievers 2026"},
		{ID: "3", Name: "Foundation Class 10"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"whitespace query returns all", "   ", []string{"1", "2", "3"}},
		{"exact word", "NEET", []string{"2"}},
		{"case insensitive", "jee", []string{"1"}},
		{"fuzzy subsequence", "fnd10", []string{"3"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBatches(batches, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterBatches(%q) returned %d batches, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestVideosOf(t *testing.T) {
	items := []ContentItem{
		{ID: "v1", Type: ContentVideo},
		{ID: "n1", Type: ContentNote},
		{ID: "d1", Type: ContentDPPVideo},
		{ID: "q1", Type: ContentQuiz},
		{ID: "p1", Type: ContentDPPNote},
	}

	got := VideosOf(items)
	if len(got) != 2 {
		t.Fatalf("VideosOf returned %d items, want 2", len(got))
	}
	if got[0].ID != "v1" || got[1].ID != "d1" {
		t.Errorf("VideosOf = [%s %s], want [v1 d1]", got[0].ID, got[1].ID)
	}
}

func TestContentTypePlayable(t *testing.T) {
	tests := []struct {
		ct       ContentType
		playable bool
	}{
		{ContentVideo, true},
		{ContentDPPVideo, true},
		{ContentNote, false},
		{ContentDPPNote, false},
		{ContentQuiz, false},
	}
	for _, tt := range tests {
		if got := tt.ct.Playable(); got != tt.playable {
			t.Errorf("%s.Playable() = %v, want %v", tt.ct, got, tt.playable)
		}
	}
}
