// Package playerbar renders the now-playing panel: state, title, position in
// the catalog, volume and a progress bar.
package playerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/audio"
	"github.com/llehouerou/tplay/internal/icons"
	"github.com/llehouerou/tplay/internal/transport"
	"github.com/llehouerou/tplay/internal/ui/render"
)

// Height is the rendered height: two content rows plus borders.
const Height = 4

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Format   string // codec name, e.g. "FLAC"
	Elapsed  time.Duration
	Duration time.Duration // 0 when unknown
	State    transport.State
	Reason   string // set in the Error state
	Volume   float64
	Index    int // 0-based, -1 when the catalog is empty
	Count    int
}

// FromStatus builds a State from an engine snapshot.
func FromStatus(st transport.Status) State {
	s := State{
		Elapsed:  st.Elapsed,
		Duration: st.Duration,
		State:    st.State,
		Reason:   st.Reason,
		Volume:   st.Volume,
		Index:    st.Index,
		Count:    st.Count,
	}
	if st.HasTrack {
		s.Title = st.Track.DisplayTitle()
		s.Format = audio.FormatName(st.Track.Path)
	}
	return s
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // border + padding

	right := ""
	if s.Format != "" {
		right += metaStyle().Render(s.Format) + "   "
	}
	if s.Count > 0 && s.Index >= 0 {
		right += metaStyle().Render(fmt.Sprintf("%d/%d", s.Index+1, s.Count)) + "   "
	}
	right += RenderVolume(s.Volume)

	title := s.Title
	if title == "" {
		title = "No track"
	}
	status := stateIcon(s.State)
	if s.State == transport.StateError && s.Reason != "" {
		title += " (" + s.Reason + ")"
	}
	titleWidth := max(innerWidth-lipgloss.Width(status)-1-lipgloss.Width(right)-1, 1)
	left := status + " " + titleStyle(s.State).Render(render.Truncate(title, titleWidth))

	top := render.Row(left, right, innerWidth)
	bottom := RenderProgressBar(s.Elapsed, s.Duration, innerWidth)

	return barStyle().Padding(0, 2).Width(width - 2).Render(top + "\n" + bottom)
}

func stateIcon(s transport.State) string {
	switch s {
	case transport.StatePlaying:
		return playingStyle().Render(icons.Playing())
	case transport.StatePaused:
		return metaStyle().Render(icons.Paused())
	case transport.StateFinished:
		return metaStyle().Render(icons.Done())
	case transport.StateError:
		return errorStyle().Render(icons.Error())
	default:
		return metaStyle().Render(icons.Stopped())
	}
}
