package ui

// Base stores component dimensions. Embed it in panel models.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// ListHeight returns the rows left for list content, never negative.
func (b Base) ListHeight() int {
	return max(b.height-PanelOverhead, 0)
}
