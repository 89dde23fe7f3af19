// Package cursor tracks a highlighted row and scroll offset for a list view.
package cursor

// Cursor holds the highlighted position and the first visible row. The list
// length and viewport height are passed per call since both change at runtime.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
}

// New creates a cursor at the top of the list.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the highlighted index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the cursor by delta, stopping at either end.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.scroll(listLen, height)
}

// Wrap shifts the cursor by delta, wrapping past either end.
func (c *Cursor) Wrap(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = ((c.pos+delta)%listLen + listLen) % listLen
	c.scroll(listLen, height)
}

// Jump places the cursor at pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Clamp pulls the cursor back inside a list that shrank.
func (c *Cursor) Clamp(listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.scroll(listLen, height)
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
