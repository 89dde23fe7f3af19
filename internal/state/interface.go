// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPlayback() (*Playback, error)
	SaveVolume(volume float64) error
	SaveLastTrack(path string)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
