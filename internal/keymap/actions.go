package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionBack        Action = "back"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select"

	// Catalog actions
	ActionEnroll  Action = "enroll"
	ActionProfile Action = "profile"

	// Player actions
	ActionPlayPause    Action = "play_pause"
	ActionFullscreen   Action = "fullscreen"
	ActionMute         Action = "mute"
	ActionMinimize     Action = "minimize"
	ActionExpandPlayer Action = "expand_player"
	ActionCloseSession Action = "close_session"
	ActionSkipForward  Action = "skip_forward"
	ActionSkipBack     Action = "skip_back"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"
	ActionSpeedUp      Action = "speed_up"
	ActionSpeedDown    Action = "speed_down"
	ActionSettings     Action = "settings"
	ActionRetry        Action = "retry"

	// Quiz actions
	ActionClearAnswer Action = "clear_answer"
	ActionSubmit      Action = "submit"
)
