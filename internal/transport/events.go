package transport

import (
	"time"

	"github.com/llehouerou/tplay/internal/catalog"
)

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a track.
//
// Emitted by Play, PlayAt and auto-advance whenever output starts on a track,
// including a replay of the same one. Not emitted by navigation that does
// not start playback.
type TrackChange struct {
	Track         catalog.Track
	Index         int
	PreviousIndex int
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// Event describes what a Tick observed.
type Event struct {
	Elapsed  time.Duration
	Duration time.Duration
	// Finished is set on the tick that consumed the end of a track.
	Finished bool
	// Advanced is set when auto-advance started another track.
	Advanced bool
	// Err is a stream error or the failure to auto-advance.
	Err error
}
