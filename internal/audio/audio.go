// Package audio is the decoding and output capability consumed by the playback
// session. The engine only sees the Output and Stream interfaces; Speaker is the
// beep-backed implementation used at runtime and Mock is the test double.
package audio

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Supported file extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
)

// ErrUnsupported is returned when a file extension has no decoder.
var ErrUnsupported = errors.New("unsupported format")

// Output opens decodable streams for playback.
type Output interface {
	Open(path string) (Stream, error)
}

// Stream is one opened, decodable track. It produces no sound until Start.
type Stream interface {
	Start() error
	Pause()
	Resume()
	// Close stops output and releases the decoder. Safe to call more than once.
	Close() error

	Position() time.Duration
	Duration() time.Duration
	Seek(to time.Duration) error
	SetVolume(level float64)

	// Done is closed once when the stream reaches its natural end.
	Done() <-chan struct{}
	// Err reports a decoder error observed while streaming, if any.
	Err() error
}

// IsSupported reports whether path has an extension with a decoder.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtWAV, ExtOGG:
		return true
	}
	return false
}

// FormatName returns the display name of the codec for path ("MP3", "FLAC", ...).
func FormatName(path string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}
