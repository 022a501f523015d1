package cursor

import "testing"

const (
	testLen    = 50
	testHeight = 10
	testMargin = 3
)

func TestMoveWithinViewport(t *testing.T) {
	c := New(testMargin)

	c.Move(1, testLen, testHeight)
	if c.Pos() != 1 {
		t.Errorf("Pos = %d, want 1", c.Pos())
	}
	if c.Top() != 0 {
		t.Errorf("Top = %d, want 0", c.Top())
	}
}

func TestMoveScrollsDownPastMargin(t *testing.T) {
	c := New(testMargin)

	// Row 7 is within margin of the bottom edge of a 10-row window.
	c.Jump(7, testLen, testHeight)
	if c.Top() != 1 {
		t.Errorf("Top = %d, want 1", c.Top())
	}
}

func TestMoveScrollsUpPastMargin(t *testing.T) {
	c := New(testMargin)
	c.Jump(20, testLen, testHeight)

	c.Jump(10, testLen, testHeight)
	if got := c.Pos(); got != 10 {
		t.Errorf("Pos = %d, want 10", got)
	}
	if c.Top() > 10-testMargin {
		t.Errorf("Top = %d, selection closer than margin to top edge", c.Top())
	}
}

func TestMoveClampsAtEnds(t *testing.T) {
	c := New(testMargin)

	c.Move(-5, testLen, testHeight)
	if c.Pos() != 0 {
		t.Errorf("Pos after moving past start = %d, want 0", c.Pos())
	}

	c.Move(1000, testLen, testHeight)
	if c.Pos() != testLen-1 {
		t.Errorf("Pos after moving past end = %d, want %d", c.Pos(), testLen-1)
	}
	if c.Top() != testLen-testHeight {
		t.Errorf("Top at end = %d, want %d", c.Top(), testLen-testHeight)
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(testMargin)
	c.Move(1, 0, testHeight)
	if c.Pos() != 0 || c.Top() != 0 {
		t.Errorf("moving in an empty list changed state: pos=%d top=%d", c.Pos(), c.Top())
	}
}

func TestMoveZeroHeightKeepsPosition(t *testing.T) {
	c := New(testMargin)

	// Before the first window size arrives the height is zero; the
	// selection must still track even though the window cannot.
	c.Move(5, testLen, 0)
	if c.Pos() != 5 {
		t.Errorf("Pos = %d, want 5", c.Pos())
	}
	if c.Top() != 0 {
		t.Errorf("Top = %d, want 0", c.Top())
	}
}

func TestJumpClampsOutOfRange(t *testing.T) {
	c := New(testMargin)
	c.Jump(999, testLen, testHeight)
	if c.Pos() != testLen-1 {
		t.Errorf("Pos = %d, want %d", c.Pos(), testLen-1)
	}
}

func TestShortListNeverScrolls(t *testing.T) {
	c := New(testMargin)
	c.Jump(4, 5, testHeight)
	if c.Top() != 0 {
		t.Errorf("Top = %d, want 0 for a list shorter than the window", c.Top())
	}
}

func TestClampToBoundsAfterShrink(t *testing.T) {
	c := New(testMargin)
	c.Jump(30, testLen, testHeight)

	if !c.ClampToBounds(10) {
		t.Error("ClampToBounds should report the selection moved")
	}
	if c.Pos() != 9 {
		t.Errorf("Pos = %d, want 9", c.Pos())
	}

	if c.ClampToBounds(10) {
		t.Error("ClampToBounds on an in-range selection should report no move")
	}
}

func TestClampToBoundsEmpty(t *testing.T) {
	c := New(testMargin)
	c.Jump(30, testLen, testHeight)

	if !c.ClampToBounds(0) {
		t.Error("ClampToBounds(0) should report the selection moved")
	}
	if c.Pos() != 0 || c.Top() != 0 {
		t.Errorf("pos=%d top=%d after emptying, want 0,0", c.Pos(), c.Top())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(testMargin)

	start, end := c.VisibleRange(testLen, testHeight)
	if start != 0 || end != testHeight {
		t.Errorf("VisibleRange = [%d,%d), want [0,%d)", start, end, testHeight)
	}

	c.Jump(testLen-1, testLen, testHeight)
	start, end = c.VisibleRange(testLen, testHeight)
	if start != testLen-testHeight || end != testLen {
		t.Errorf("VisibleRange at end = [%d,%d), want [%d,%d)",
			start, end, testLen-testHeight, testLen)
	}
}

func TestVisibleRangeDegenerate(t *testing.T) {
	c := New(testMargin)

	if start, end := c.VisibleRange(testLen, 0); start != 0 || end != 0 {
		t.Errorf("VisibleRange with zero height = [%d,%d), want [0,0)", start, end)
	}
	if start, end := c.VisibleRange(0, testHeight); start != 0 || end != 0 {
		t.Errorf("VisibleRange of empty list = [%d,%d), want [0,0)", start, end)
	}
	if start, end := c.VisibleRange(3, testHeight); start != 0 || end != 3 {
		t.Errorf("VisibleRange of short list = [%d,%d), want [0,3)", start, end)
	}
}

func TestHandleKeyNavigation(t *testing.T) {
	tests := []struct {
		key     string
		wantPos int
	}{
		{"j", 1},
		{"down", 1},
		{"ctrl+d", testHeight / 2},
		{"G", testLen - 1},
		{"end", testLen - 1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(testMargin)
			if !c.HandleKey(tt.key, testLen, testHeight) {
				t.Fatalf("HandleKey(%q) not handled", tt.key)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestHandleKeyReturnsToTop(t *testing.T) {
	c := New(testMargin)
	c.Jump(testLen-1, testLen, testHeight)

	for _, key := range []string{"g", "home"} {
		c.Jump(testLen-1, testLen, testHeight)
		if !c.HandleKey(key, testLen, testHeight) {
			t.Fatalf("HandleKey(%q) not handled", key)
		}
		if c.Pos() != 0 || c.Top() != 0 {
			t.Errorf("after %q: pos=%d top=%d, want 0,0", key, c.Pos(), c.Top())
		}
	}
}

func TestHandleKeyHalfPageUp(t *testing.T) {
	c := New(testMargin)
	c.Jump(20, testLen, testHeight)

	if !c.HandleKey("ctrl+u", testLen, testHeight) {
		t.Fatal("ctrl+u not handled")
	}
	if c.Pos() != 20-testHeight/2 {
		t.Errorf("Pos = %d, want %d", c.Pos(), 20-testHeight/2)
	}
}

func TestHandleKeyUnknown(t *testing.T) {
	c := New(testMargin)
	if c.HandleKey("x", testLen, testHeight) {
		t.Error("unknown key reported as handled")
	}
	if c.Pos() != 0 {
		t.Errorf("unknown key moved the selection to %d", c.Pos())
	}
}
