// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionFirstTrack  Action = "first_track"
	ActionLastTrack   Action = "last_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"

	// Track list actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionPlayHere Action = "play_here"
)
