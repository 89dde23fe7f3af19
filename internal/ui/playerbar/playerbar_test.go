package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/transport"
)

func TestRender_Playing(t *testing.T) {
	s := State{
		Title:    "Artist - Song",
		Format:   "FLAC",
		Elapsed:  time.Minute,
		Duration: 4 * time.Minute,
		State:    transport.StatePlaying,
		Volume:   0.8,
		Index:    1,
		Count:    5,
	}

	got := Render(s, 60)

	for _, want := range []string{">", "Artist - Song", "FLAC", "2/5", "Vol  80%", "1:00", "4:00", "25%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
	lines := strings.Split(got, "\n")
	if len(lines) != Height {
		t.Errorf("Render() has %d lines, want %d", len(lines), Height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 60 {
			t.Errorf("line %d width = %d, want <= 60", i, w)
		}
	}
}

func TestRender_LongTitleTruncated(t *testing.T) {
	s := State{
		Title:    strings.Repeat("very long title ", 10),
		Duration: time.Minute,
		State:    transport.StatePaused,
		Volume:   1,
		Count:    1,
	}

	got := Render(s, 40)

	if !strings.Contains(got, "…") {
		t.Errorf("expected ellipsis in truncated title:\n%s", got)
	}
	if !strings.Contains(got, "||") {
		t.Errorf("expected paused icon:\n%s", got)
	}
	for i, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width = %d, want <= 40", i, w)
		}
	}
}

func TestRender_UnknownDuration(t *testing.T) {
	got := Render(State{Title: "a", State: transport.StatePlaying, Elapsed: 5 * time.Second, Count: 1}, 60)

	lines := strings.Split(got, "\n")
	if len(lines) != Height {
		t.Fatalf("Render() has %d lines, want %d", len(lines), Height)
	}
	bar := lines[2]
	if !strings.Contains(bar, "0:05") || !strings.Contains(bar, unknownDuration) {
		t.Errorf("progress row = %q, want elapsed and unknown total", bar)
	}
	if strings.Contains(bar, "%") {
		t.Errorf("progress row = %q, want no percentage for unknown duration", bar)
	}
}

func TestRender_ErrorShowsReason(t *testing.T) {
	got := Render(State{Title: "a", State: transport.StateError, Reason: "boom", Count: 1}, 60)

	if !strings.Contains(got, "!!") || !strings.Contains(got, "(boom)") {
		t.Errorf("Render() = %q, want error icon and reason", got)
	}
}

func TestRender_EmptyCatalog(t *testing.T) {
	got := Render(State{Index: -1}, 60)

	if !strings.Contains(got, "No track") {
		t.Errorf("Render() = %q, want placeholder title", got)
	}
	if strings.Contains(got, "0/0") {
		t.Errorf("Render() = %q, want no position for empty catalog", got)
	}
}

func TestFromStatus(t *testing.T) {
	st := transport.Status{
		State:    transport.StatePlaying,
		Track:    catalog.Track{Path: "/m/a.mp3", Title: "Song", Artist: "Band"},
		HasTrack: true,
		Index:    0,
		Count:    2,
		Elapsed:  time.Second,
		Duration: time.Minute,
		Volume:   0.5,
	}

	s := FromStatus(st)

	if s.Title != "Band - Song" {
		t.Errorf("Title = %q, want %q", s.Title, "Band - Song")
	}
	if s.Elapsed != time.Second || s.Duration != time.Minute || s.Volume != 0.5 {
		t.Errorf("FromStatus() = %+v", s)
	}
	if s.Format != "MP3" {
		t.Errorf("Format = %q, want MP3", s.Format)
	}
	if s.State != transport.StatePlaying || s.Count != 2 {
		t.Errorf("FromStatus() = %+v", s)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		width    int
		filled   int
		contains string
	}{
		{"start", 0, time.Minute, 30, 0, "  0%"},
		{"half", 30 * time.Second, time.Minute, 30, 6, " 50%"},
		{"end", time.Minute, time.Minute, 30, 12, "100%"},
		{"past end clamps", 2 * time.Minute, time.Minute, 30, 12, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgressBar(tt.elapsed, tt.duration, tt.width)
			if n := strings.Count(got, filledBlock); n != tt.filled {
				t.Errorf("filled = %d, want %d (%q)", n, tt.filled, got)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("RenderProgressBar() = %q, want %q", got, tt.contains)
			}
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestRenderProgressBar_TooNarrow(t *testing.T) {
	got := RenderProgressBar(time.Second, time.Minute, 10)

	if got != "0:01 / 1:00" {
		t.Errorf("RenderProgressBar() = %q, want times only", got)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		elapsed, duration time.Duration
		want              float64
	}{
		{0, 0, 0},
		{time.Second, 0, 0},
		{time.Second, 4 * time.Second, 0.25},
		{-time.Second, time.Second, 0},
		{5 * time.Second, time.Second, 1},
	}
	for _, tt := range tests {
		if got := Ratio(tt.elapsed, tt.duration); got != tt.want {
			t.Errorf("Ratio(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
}

func TestRenderVolume(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{1, "Vol 100%"},
		{0.3, "Vol  30%"},
		{0, "Vol   0%"},
		{1.5, "Vol 100%"},
	}
	for _, tt := range tests {
		if got := RenderVolume(tt.volume); got != tt.want {
			t.Errorf("RenderVolume(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}
