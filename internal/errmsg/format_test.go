//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackStart,
			err:      nil,
			expected: "",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "seek operation",
			op:       OpPlaybackSeek,
			err:      errors.New("no track loaded"),
			expected: "Failed to seek: no track loaded",
		},
		{
			name:     "state operation",
			op:       OpStateSave,
			err:      errors.New("disk full"),
			expected: "Failed to save state: disk full",
		},
		{
			name:     "wrapped error keeps the chain",
			op:       OpTrackChange,
			err:      errors.Wrap(errors.New("no track in that direction"), "next from track 3"),
			expected: "Failed to change track: next from track 3: no track in that direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.op, tt.err); result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		err      error
		expected string
	}{
		{"nil error", "Song", nil, ""},
		{"with subject", "Song", errors.New("bad header"), "Failed to decode track 'Song': bad header"},
		{"empty subject falls back", "", errors.New("bad header"), "Failed to decode track: bad header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FormatWith(OpTrackDecode, tt.subject, tt.err); result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestWithHints(t *testing.T) {
	err := errors.WithHint(errors.New("no tracks found"), "pass a directory")

	got := WithHints(Format(OpCatalogLoad, err), err)

	if want := "Failed to load tracks: no tracks found\npass a directory"; got != want {
		t.Errorf("WithHints() = %q, want %q", got, want)
	}
	if got := WithHints("plain", errors.New("x")); got != "plain" {
		t.Errorf("WithHints without hints = %q, want plain", got)
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpPlaybackStart, OpPlaybackPause, OpPlaybackResume, OpPlaybackStop,
		OpPlaybackSeek, OpTrackChange, OpTrackDecode, OpCatalogLoad,
		OpStateLoad, OpStateSave, OpConfigLoad, OpLogOpen, OpMPRIS, OpInitialize,
	}
	seen := make(map[Op]bool)
	for _, op := range ops {
		if op == "" {
			t.Error("empty operation constant")
		}
		if seen[op] {
			t.Errorf("duplicate operation %q", op)
		}
		seen[op] = true
	}
}
