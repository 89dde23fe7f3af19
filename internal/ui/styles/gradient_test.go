package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlend_Endpoints(t *testing.T) {
	got := Blend(5, "#ff0000", "#0000ff")

	assert.Len(t, got, 5)
	assert.Equal(t, lipgloss.Color("#ff0000"), got[0])
	assert.Equal(t, lipgloss.Color("#0000ff"), got[4])
}

func TestBlend_Small(t *testing.T) {
	assert.Nil(t, Blend(0, "#ff0000", "#0000ff"))
	assert.Equal(t, []lipgloss.Color{"#ff0000"}, Blend(1, "#ff0000", "#0000ff"))
}

func TestBlend_NonHexStillBlends(t *testing.T) {
	got := Blend(3, "5", "#0000ff")

	assert.Equal(t, lipgloss.Color("5"), got[0])
	assert.Regexp(t, `^#[0-9a-f]{6}$`, string(got[1]))
}

func TestGradient_KeepsText(t *testing.T) {
	assert.Empty(t, Gradient("", "#ff0000", "#0000ff"))
	assert.Contains(t, Gradient("x", "#ff0000", "#0000ff"), "x")
	assert.Equal(t, 5, lipgloss.Width(Gradient("tplay", "#ff0000", "#0000ff")))
}
