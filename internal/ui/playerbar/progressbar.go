package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/ui/render"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// unknownDuration is shown in place of the total when it cannot be probed.
const unknownDuration = "--:--"

// RenderProgressBar renders a block-style progress bar.
// Format: 1:23  ▓▓▓▓▓░░░░░  4:56   35%
func RenderProgressBar(elapsed, duration time.Duration, width int) string {
	posStr := render.Duration(elapsed)
	durStr := unknownDuration
	pctStr := ""
	ratio := Ratio(elapsed, duration)
	if duration > 0 {
		durStr = render.Duration(duration)
		pctStr = fmt.Sprintf("%3d%%", int(ratio*100))
	}

	fixedWidth := lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	if pctStr != "" {
		fixedWidth += 2 + lipgloss.Width(pctStr)
	}
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for bar, just show times
		return timeStyle().Render(posStr + " / " + durStr)
	}

	filled := min(int(float64(barWidth)*ratio), barWidth)
	bar := progressFilled().Render(strings.Repeat(filledBlock, filled)) +
		progressEmpty().Render(strings.Repeat(emptyBlock, barWidth-filled))

	out := timeStyle().Render(posStr) + "  " + bar + "  " + timeStyle().Render(durStr)
	if pctStr != "" {
		out += "  " + metaStyle().Render(pctStr)
	}
	return out
}

// Ratio returns elapsed/duration clamped to [0, 1], 0 when duration is unknown.
func Ratio(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return min(max(float64(elapsed)/float64(duration), 0), 1)
}
