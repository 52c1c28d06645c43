// Package keymap defines the storefront key bindings and resolves keys to actions.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"

	// Track list actions
	ActionSelect    Action = "select" // enter - play the track under the cursor
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Search input actions
	ActionSubmitSearch Action = "submit_search"
	ActionLeaveSearch  Action = "leave_search"
)
