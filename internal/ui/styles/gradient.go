package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// gray stands in for colors that are not #rrggbb, such as ANSI indices.
var gray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text bold with its foreground blended from one color to
// another across grapheme clusters.
func Gradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	stops := Blend(len(clusters), from, to)
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(stops[i]).Render(c))
	}
	return b.String()
}

// Blend returns n colors stepping from one color to another in HCL space.
// The endpoints are returned unchanged.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	c1, c2 := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, n)
	out[0], out[n-1] = from, to
	for i := 1; i < n-1; i++ {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return gray
	}
	return col
}
