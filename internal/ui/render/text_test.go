package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "Kinematics L1",
			want:  "Kinematics L1",
		},
		{
			name:  "control characters stripped",
			input: "bad\x00title\x1b[31m",
			want:  "badtitle[31m",
		},
		{
			name:  "tab preserved",
			input: "a\tb",
			want:  "a\tb",
		},
		{
			name:  "newline stripped",
			input: "two\nlines",
			want:  "twolines",
		},
		{
			name:  "non-breaking space normalized",
			input: "JEE 2027",
			want:  "JEE 2027",
		},
		{
			name:  "invalid utf8 replaced",
			input: "a\xffb",
			want:  "a�b",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "fits untouched",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "cut with single-cell ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello w…",
		},
		{
			name:     "wide runes count by cells",
			input:    "物理学講義",
			maxWidth: 6,
			want:     "物理…",
		},
		{
			name:     "zero width",
			input:    "hello",
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "empty",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	got := Row("Batches", "student@example.com", 40)
	if !strings.HasPrefix(got, "Batches") {
		t.Errorf("Row should start with left content, got %q", got)
	}
	if !strings.HasSuffix(got, "student@example.com") {
		t.Errorf("Row should end with right content, got %q", got)
	}
	if len(got) != 40 {
		t.Errorf("Row length = %d, want 40", len(got))
	}
}

func TestRowTightFit(t *testing.T) {
	// When the sides overflow the width, keep a single space gap.
	got := Row("left", "right", 5)
	if got != "left right" {
		t.Errorf("Row tight fit = %q, want %q", got, "left right")
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(10); got != strings.Repeat("─", 10) {
		t.Errorf("Separator(10) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
