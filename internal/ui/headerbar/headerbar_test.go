package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	got := Render("/home/user/Music", 60)

	if !strings.Contains(got, Title) {
		t.Errorf("Render() = %q, missing title", got)
	}
	if !strings.Contains(got, "/home/user/Music") {
		t.Errorf("Render() = %q, missing source", got)
	}
	if w := lipgloss.Width(got); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
}

func TestRender_LongSourceTruncated(t *testing.T) {
	got := Render(strings.Repeat("x", 100), 40)

	if w := lipgloss.Width(got); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("Render() = %q, want ellipsis", got)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render("/music", 10); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
