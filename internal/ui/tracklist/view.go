package tracklist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/icons"
	"github.com/llehouerou/tplay/internal/transport"
	"github.com/llehouerou/tplay/internal/ui"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// View renders the panel. current is the catalog index of the loaded track
// and state decides its marker.
func (m Model) View(current int, state transport.State) string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := max(m.Width()-ui.BorderHeight, 0)
	listHeight := m.ListHeight()

	header := fmt.Sprintf("Tracks (%d/%d)", current+1, len(m.tracks))
	if current < 0 {
		header = fmt.Sprintf("Tracks (%d)", len(m.tracks))
	}
	s := styles.T().S()
	content := s.Title.Render(render.TruncateAndPad(header, innerWidth)) + "\n" +
		s.Subtle.Render(strings.Repeat("─", innerWidth))

	start, end := m.cursor.VisibleRange(len(m.tracks), listHeight)
	rows := 0
	for idx := start; idx < end; idx++ {
		content += "\n" + m.renderRow(idx, current, state, innerWidth)
		rows++
	}
	for ; rows < listHeight; rows++ {
		content += "\n" + strings.Repeat(" ", innerWidth)
	}

	return styles.Panel(true).Width(innerWidth).Render(content)
}

// renderRow renders one track: cursor, state marker, number, title, size.
func (m Model) renderRow(idx, current int, state transport.State, width int) string {
	t := m.tracks[idx]

	pointer := " "
	if idx == m.cursor.Pos() {
		pointer = icons.Cursor()
	}
	marker := ""
	if idx == current {
		marker = markerFor(state)
	}
	number := strconv.Itoa(idx+1) + "."
	numWidth := len(strconv.Itoa(len(m.tracks))) + 1

	prefix := render.TruncateAndPad(pointer, 2) +
		render.TruncateAndPad(marker, 3) +
		fmt.Sprintf("%*s ", numWidth, number)
	size := sizeLabel(t)

	titleWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(size)-1, 1)
	line := prefix + render.TruncateAndPad(icons.FormatAudio(t.DisplayTitle()), titleWidth) + " " + size
	line = render.TruncateAndPad(line, width)

	s := styles.T().S()
	switch {
	case idx == m.cursor.Pos():
		return s.Cursor.Render(line)
	case idx == current:
		return s.Playing.Render(line)
	default:
		return s.Base.Render(line)
	}
}

func markerFor(state transport.State) string {
	switch state {
	case transport.StatePlaying:
		return icons.Playing()
	case transport.StatePaused:
		return icons.Paused()
	case transport.StateError:
		return icons.Error()
	case transport.StateFinished:
		return icons.Done()
	default:
		return icons.Stopped()
	}
}

// sizeLabel returns the humanized file size, empty when unknown.
func sizeLabel(t catalog.Track) string {
	if t.Size <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(t.Size))
}
