package transport

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// AfterFinish selects what Play does once the current track has finished.
type AfterFinish int

const (
	// NextOrReplay advances when a next track exists, else replays the current one.
	NextOrReplay AfterFinish = iota
	// NextOrStop advances when a next track exists, else fails with ErrEndOfCatalog.
	NextOrStop
	// Loop advances, wrapping from the last track to the first.
	Loop
)

func (p AfterFinish) String() string {
	switch p {
	case NextOrReplay:
		return "next-or-replay"
	case NextOrStop:
		return "next-or-stop"
	case Loop:
		return "loop"
	default:
		return "unknown"
	}
}

// ParseAfterFinish parses a policy name as written in the config file.
func ParseAfterFinish(s string) (AfterFinish, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "next-or-replay":
		return NextOrReplay, nil
	case "next-or-stop":
		return NextOrStop, nil
	case "loop":
		return Loop, nil
	}
	return NextOrReplay, errors.Newf("unknown after-finish policy %q", s)
}

// Options configures an Engine.
type Options struct {
	AfterFinish AfterFinish
	// AutoAdvance plays the next track as soon as the current one finishes,
	// when there is one.
	AutoAdvance bool
	// AutoplayOnSkip keeps playing after Next/Previous/Select when the
	// engine was playing.
	AutoplayOnSkip bool
	// Volume is the initial level in [0, 1].
	Volume float64
	Log    *zap.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		AfterFinish:    NextOrReplay,
		AutoAdvance:    true,
		AutoplayOnSkip: true,
		Volume:         1,
	}
}
