// Package tracklist renders the catalog as a scrollable list with a
// highlighted cursor and a marker on the loaded track.
package tracklist

import (
	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/ui"
	"github.com/llehouerou/tplay/internal/ui/cursor"
)

// Model is the track list panel. The cursor is independent of the catalog's
// current index: moving it never changes what is playing.
type Model struct {
	ui.Base
	tracks []catalog.Track
	cursor cursor.Cursor
}

// New creates a list over tracks.
func New(tracks []catalog.Track) Model {
	return Model{
		tracks: tracks,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetSize sets the panel size and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Clamp(len(m.tracks), m.ListHeight())
}

// Len returns the number of tracks.
func (m Model) Len() int { return len(m.tracks) }

// Selected returns the highlighted index, -1 for an empty list.
func (m Model) Selected() int {
	if len(m.tracks) == 0 {
		return -1
	}
	return m.cursor.Pos()
}

// MoveUp moves the cursor up, wrapping to the last track.
func (m *Model) MoveUp() {
	m.cursor.Wrap(-1, len(m.tracks), m.ListHeight())
}

// MoveDown moves the cursor down, wrapping to the first track.
func (m *Model) MoveDown() {
	m.cursor.Wrap(1, len(m.tracks), m.ListHeight())
}

// Jump highlights index, clamped to the list.
func (m *Model) Jump(index int) {
	m.cursor.Jump(index, len(m.tracks), m.ListHeight())
}
