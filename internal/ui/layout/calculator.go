// Package layout provides pure functions for UI dimension calculations.
package layout

// MinListHeight is the smallest track list panel worth drawing: borders,
// header and one row.
const MinListHeight = 5

// ContentOpts lists the fixed-height rows around the track list.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int
	NoticeHeight    int
	HelpHeight      int
}

// ContentHeight returns the height left for the track list panel, or 0 when
// the window is too small to draw it.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= opts.NoticeHeight
	height -= opts.HelpHeight
	if height < MinListHeight {
		return 0
	}
	return height
}
