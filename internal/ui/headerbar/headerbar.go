// Package headerbar renders the single-line title bar.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Title is the application name shown on the left.
const Title = "tplay"

// Render returns the header: the gradient title on the left and source on
// the right, where source is usually the music directory.
func Render(source string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	title := " " + styles.Gradient(Title, t.Primary, t.Secondary)

	right := ""
	if source != "" {
		room := width - lipgloss.Width(title) - 2
		right = t.S().Muted.Render(render.Truncate(source, room)) + " "
	}
	return render.Row(title, right, width)
}
