// Package cursor tracks the selected row and scroll window of a list.
package cursor

// Cursor tracks a selection and the first visible row of a viewport.
// List length and viewport height are passed per call since both change
// with terminal size and filtering.
type Cursor struct {
	pos    int
	top    int // first visible row
	margin int // rows kept visible around the selection
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row index.
func (c Cursor) Pos() int {
	return c.pos
}

// Top returns the first visible row index.
func (c Cursor) Top() int {
	return c.top
}

// Move shifts the selection by delta rows and scrolls it into view.
func (c *Cursor) Move(delta, listLen, height int) {
	c.place(c.pos+delta, listLen, height)
}

// Jump selects an absolute row and scrolls it into view.
func (c *Cursor) Jump(pos, listLen, height int) {
	c.place(pos, listLen, height)
}

func (c *Cursor) place(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, 0, listLen-1)
	c.scrollIntoView(listLen, height)
}

// scrollIntoView moves the window so the selection sits at least margin
// rows from either edge, where the list allows it.
func (c *Cursor) scrollIntoView(listLen, height int) {
	if height <= 0 {
		return
	}
	if c.pos < c.top+c.margin {
		c.top = c.pos - c.margin
	}
	if c.pos >= c.top+height-c.margin {
		c.top = c.pos - height + c.margin + 1
	}
	c.top = clamp(c.top, 0, max(listLen-height, 0))
}

// ClampToBounds pulls the selection back in range after the list shrank.
// Reports whether the selection moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.top != 0
		c.pos, c.top = 0, 0
		return moved
	}
	prev := c.pos
	c.pos = clamp(c.pos, 0, listLen-1)
	return c.pos != prev
}

// VisibleRange returns the [start, end) row window to draw.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if height <= 0 || listLen == 0 {
		return 0, 0
	}
	start = clamp(c.top, 0, max(listLen-height, 0))
	return start, min(start+height, listLen)
}

// HandleKey applies a navigation key and reports whether it was one.
// j/k and the arrows move one row, ctrl+d/ctrl+u half a page, g/G and
// home/end jump to the edges.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	case "g", "home":
		c.pos, c.top = 0, 0
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
