// Package catalog holds the ordered list of playable tracks and the cursor
// that transport commands move through it.
package catalog

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoTracksFound is returned by Load when no playable file was found.
	ErrNoTracksFound = errors.New("no tracks found")
	// ErrIndexOutOfRange is returned by Select for an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrAtBoundary is returned when moving past the first or last track.
	ErrAtBoundary = errors.New("no track in that direction")
)

// Track describes one playable file. It is never modified after loading.
type Track struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration // 0 when unknown
	Size        int64
}

// DisplayTitle returns "Artist - Title" when the artist is known.
func (t Track) DisplayTitle() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// titleFromPath derives a title from the file name without its extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Direction selects the neighbour Advance moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// Catalog is an ordered track list with a current index.
// The index is -1 only when the catalog is empty.
type Catalog struct {
	tracks []Track
	index  int
}

// New creates a catalog positioned on the first track.
func New(tracks ...Track) *Catalog {
	c := &Catalog{
		tracks: append([]Track(nil), tracks...),
		index:  -1,
	}
	if len(c.tracks) > 0 {
		c.index = 0
	}
	return c
}

// Current returns the track at the current index.
func (c *Catalog) Current() (Track, bool) {
	return c.Track(c.index)
}

// Index returns the current index, -1 if the catalog is empty.
func (c *Catalog) Index() int {
	return c.index
}

// Advance moves one track in dir and returns the track now current.
// At either end the index is left unchanged and moved is false.
func (c *Catalog) Advance(dir Direction) (track Track, moved bool) {
	switch {
	case dir == Next && c.HasNext():
		c.index++
		moved = true
	case dir == Previous && c.HasPrevious():
		c.index--
		moved = true
	}
	track, _ = c.Current()
	return track, moved
}

// HasNext returns true if there's a track after the current one.
func (c *Catalog) HasNext() bool {
	return c.index >= 0 && c.index < len(c.tracks)-1
}

// HasPrevious returns true if there's a track before the current one.
func (c *Catalog) HasPrevious() bool {
	return c.index > 0
}

// Select makes index current.
func (c *Catalog) Select(index int) error {
	if index < 0 || index >= len(c.tracks) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, catalog has %d tracks", index, len(c.tracks))
	}
	c.index = index
	return nil
}

// First selects the first track. No-op on an empty catalog.
func (c *Catalog) First() (Track, bool) {
	if len(c.tracks) > 0 {
		c.index = 0
	}
	return c.Current()
}

// Last selects the last track. No-op on an empty catalog.
func (c *Catalog) Last() (Track, bool) {
	if len(c.tracks) > 0 {
		c.index = len(c.tracks) - 1
	}
	return c.Current()
}

// Track returns the track at index.
func (c *Catalog) Track(index int) (Track, bool) {
	if index < 0 || index >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[index], true
}

// IndexOf returns the index of the track with the given path, or -1.
func (c *Catalog) IndexOf(path string) int {
	for i, t := range c.tracks {
		if t.Path == path {
			return i
		}
	}
	return -1
}

// Tracks returns a copy of all tracks.
func (c *Catalog) Tracks() []Track {
	return append([]Track(nil), c.tracks...)
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return len(c.tracks) == 0
}
