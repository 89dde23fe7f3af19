// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func threeTracks() *Catalog {
	return New(
		Track{Path: "/a.mp3", Title: "A"},
		Track{Path: "/b.mp3", Title: "B"},
		Track{Path: "/c.mp3", Title: "C"},
	)
}

func TestNew_Empty(t *testing.T) {
	c := New()

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Index() != -1 {
		t.Errorf("Index() = %d, want -1", c.Index())
	}
	if _, ok := c.Current(); ok {
		t.Error("Current() should report no track for empty catalog")
	}
	if c.HasNext() || c.HasPrevious() {
		t.Error("empty catalog should have no neighbours")
	}
}

func TestNew_StartsAtFirstTrack(t *testing.T) {
	c := threeTracks()

	track, ok := c.Current()
	if !ok || track.Path != "/a.mp3" {
		t.Errorf("Current() = %v, %v, want /a.mp3", track, ok)
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
}

func TestNew_CopiesInput(t *testing.T) {
	tracks := []Track{{Path: "/a.mp3"}}
	c := New(tracks...)

	tracks[0].Path = "/changed.mp3"

	if got, _ := c.Current(); got.Path != "/a.mp3" {
		t.Errorf("catalog shares caller slice: Current().Path = %q", got.Path)
	}
}

func TestAdvance_Next(t *testing.T) {
	c := threeTracks()

	track, moved := c.Advance(Next)

	if !moved {
		t.Fatal("Advance(Next) should move from index 0")
	}
	if track.Path != "/b.mp3" || c.Index() != 1 {
		t.Errorf("Advance(Next) = %q at %d, want /b.mp3 at 1", track.Path, c.Index())
	}
}

func TestAdvance_NextClampsAtLast(t *testing.T) {
	c := threeTracks()
	_ = c.Select(2)

	track, moved := c.Advance(Next)

	if moved {
		t.Error("Advance(Next) at last index should not move")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2 (clamped, no wrap)", c.Index())
	}
	if track.Path != "/c.mp3" {
		t.Errorf("returned track = %q, want /c.mp3", track.Path)
	}
}

func TestAdvance_PreviousClampsAtFirst(t *testing.T) {
	c := threeTracks()

	_, moved := c.Advance(Previous)

	if moved {
		t.Error("Advance(Previous) at index 0 should not move")
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
}

func TestAdvance_Previous(t *testing.T) {
	c := threeTracks()
	_ = c.Select(2)

	track, moved := c.Advance(Previous)

	if !moved || track.Path != "/b.mp3" {
		t.Errorf("Advance(Previous) = %q, %v, want /b.mp3, true", track.Path, moved)
	}
}

func TestAdvance_EmptyCatalog(t *testing.T) {
	c := New()

	_, moved := c.Advance(Next)

	if moved || c.Index() != -1 {
		t.Errorf("Advance on empty catalog: moved=%v index=%d", moved, c.Index())
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
		wantIdx int
	}{
		{"first", 0, false, 0},
		{"last", 2, false, 2},
		{"negative", -1, true, 1},
		{"past end", 3, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := threeTracks()
			_ = c.Select(1)

			err := c.Select(tt.index)

			if tt.wantErr && !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Select(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Select(%d) error = %v", tt.index, err)
			}
			if c.Index() != tt.wantIdx {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.wantIdx)
			}
		})
	}
}

func TestFirstLast(t *testing.T) {
	c := threeTracks()

	if track, _ := c.Last(); track.Path != "/c.mp3" {
		t.Errorf("Last() = %q, want /c.mp3", track.Path)
	}
	if track, _ := c.First(); track.Path != "/a.mp3" {
		t.Errorf("First() = %q, want /a.mp3", track.Path)
	}

	empty := New()
	if _, ok := empty.Last(); ok || empty.Index() != -1 {
		t.Error("Last() on empty catalog should keep the sentinel index")
	}
}

func TestIndexOf(t *testing.T) {
	c := threeTracks()

	if got := c.IndexOf("/b.mp3"); got != 1 {
		t.Errorf("IndexOf(/b.mp3) = %d, want 1", got)
	}
	if got := c.IndexOf("/missing.mp3"); got != -1 {
		t.Errorf("IndexOf(/missing.mp3) = %d, want -1", got)
	}
}

func TestTracks_ReturnsCopy(t *testing.T) {
	c := threeTracks()

	tracks := c.Tracks()
	tracks[0].Title = "changed"

	if got, _ := c.Track(0); got.Title != "A" {
		t.Errorf("Tracks() exposed internal slice: Title = %q", got.Title)
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	if got := (Track{Title: "Song"}).DisplayTitle(); got != "Song" {
		t.Errorf("DisplayTitle() = %q, want Song", got)
	}
	if got := (Track{Title: "Song", Artist: "Band"}).DisplayTitle(); got != "Band - Song" {
		t.Errorf("DisplayTitle() = %q, want Band - Song", got)
	}
}

func TestDirection_String(t *testing.T) {
	if Next.String() != "next" || Previous.String() != "previous" || Direction(9).String() != "unknown" {
		t.Error("unexpected Direction names")
	}
}
