// internal/transport/state.go
package transport

// State is the transport state.
//
//	           Play                 Pause
//	Stopped ---------> Playing ------------> Paused
//	   ^                |  ^ <---------------- |
//	   |     track end  |  |       Play        |
//	   |                v  | Play              |
//	   +--- Stop --- Finished                  |
//	   +--- Stop ------------------------------+
//
// Error is entered when output could not start or the stream ended with a
// decoder error. Stop, Play or a track change leaves it.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
	StateFinished
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a handle is held (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
