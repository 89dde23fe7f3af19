package app

import (
	"time"

	"github.com/llehouerou/tplay/internal/transport"
)

// TickMsg drives engine polling and redraws.
type TickMsg time.Time

// TrackChangedMsg is sent when output starts on a track.
type TrackChangedMsg transport.TrackChange

// StderrMsg carries a line the audio backend wrote to stderr.
type StderrMsg struct {
	Line string
}
