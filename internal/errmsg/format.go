// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Transport operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackPause  Op = "pause playback"
	OpPlaybackResume Op = "resume playback"
	OpPlaybackStop   Op = "stop playback"
	OpPlaybackSeek   Op = "seek"
	OpTrackChange    Op = "change track"
	OpTrackDecode    Op = "decode track"

	// Catalog
	OpCatalogLoad Op = "load tracks"

	// Persistence
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Startup
	OpConfigLoad Op = "load config"
	OpLogOpen    Op = "open log file"
	OpMPRIS      Op = "start media key service"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation,
// usually a track title.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// WithHints appends the hints attached to err, one per line.
func WithHints(msg string, err error) string {
	hints := errors.GetAllHints(err)
	if msg == "" || len(hints) == 0 {
		return msg
	}
	return msg + "\n" + strings.Join(hints, "\n")
}
