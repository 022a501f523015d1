//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"space"}, ActionPlayPause, "Play/pause", "player"},
		{[]string{"k", "up"}, ActionMoveUp, "Move up", "list"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}

	// Verify bindings map is populated
	if r.bindings == nil {
		t.Error("bindings map is nil")
	}

	// Verify byAction map is populated
	if r.byAction == nil {
		t.Error("byAction map is nil")
	}
}

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"space"}, ActionPlayPause, "Play/pause", "player"},
		{[]string{"k", "up"}, ActionMoveUp, "Move up", "list"},
		{[]string{"j", "down"}, ActionMoveDown, "Move down", "list"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"space", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"space"}, ActionPlayPause, "Play/pause", "player"},
		{[]string{"k", "up"}, ActionMoveUp, "Move up", "list"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{"space"}},
		{ActionMoveUp, []string{"k", "up"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	// Same action defined in multiple contexts with overlapping keys
	bindings := []Binding{
		{[]string{"j", "down"}, ActionMoveDown, "Move down", "list"},
		{[]string{"j"}, ActionMoveDown, "Next option", "quiz"},
		{[]string{"j"}, ActionMoveDown, "Move down", "player"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionMoveDown)

	// Count occurrences of "j"
	count := 0
	for _, k := range keys {
		if k == "j" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected 'j' to appear once after deduplication, got %d times in %v", count, keys)
	}
}

func TestForContext(t *testing.T) {
	r := ForContext("player")

	// Player binding present
	if action := r.Resolve("space"); action != ActionPlayPause {
		t.Errorf("Resolve('space') = %q, want %q", action, ActionPlayPause)
	}
	if action := r.Resolve("i"); action != ActionMinimize {
		t.Errorf("Resolve('i') = %q, want %q", action, ActionMinimize)
	}

	// Globals carried over
	if action := r.Resolve("q"); action != ActionQuit {
		t.Errorf("Resolve('q') = %q, want %q", action, ActionQuit)
	}

	// List bindings absent
	if action := r.Resolve("e"); action != "" {
		t.Errorf("Resolve('e') = %q, want unbound in player context", action)
	}
}

func TestForContext_ContextOverridesGlobal(t *testing.T) {
	// esc is both global (back) and player (back/minimize); the context
	// binding is applied last and wins.
	r := ForContext("player")
	if action := r.Resolve("esc"); action != ActionBack {
		t.Errorf("Resolve('esc') = %q, want %q", action, ActionBack)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "no duplicates",
			input:    []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "with duplicates",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "all duplicates",
			input:    []string{"a", "a", "a"},
			expected: []string{"a"},
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"x"},
			expected: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)

			if len(result) != len(tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
				return
			}

			// Check that all expected elements are present and in order
			for i, v := range tt.expected {
				if result[i] != v {
					t.Errorf("dedupe(%v)[%d] = %q, want %q", tt.input, i, result[i], v)
				}
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}

	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
