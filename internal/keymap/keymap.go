// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "list", "player", "quiz", "login"
}

// Bindings contains all key bindings for resolution and help generation.
var Bindings = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"esc"}, ActionBack, "Go back", "global"},
	{[]string{"v"}, ActionExpandPlayer, "Expand mini-player", "global"},
	{[]string{"x"}, ActionCloseSession, "Close mini-player", "global"},

	// List navigation (study, batch, subject, chapter pages)
	{[]string{"j", "down"}, ActionMoveDown, "Move down", "list"},
	{[]string{"k", "up"}, ActionMoveUp, "Move up", "list"},
	{[]string{"h", "left"}, ActionMoveLeft, "Previous tab", "list"},
	{[]string{"l", "right"}, ActionMoveRight, "Next tab", "list"},
	{[]string{"g"}, ActionJumpStart, "First item", "list"},
	{[]string{"G"}, ActionJumpEnd, "Last item", "list"},
	{[]string{"enter"}, ActionSelect, "Open", "list"},
	{[]string{"/"}, ActionSearch, "Filter list", "list"},
	{[]string{"e"}, ActionEnroll, "Enroll in batch", "list"},
	{[]string{"p"}, ActionProfile, "Profile", "list"},

	// Fullscreen player
	// bubbletea reports the spacebar as a literal " ".
	{[]string{" ", "k"}, ActionPlayPause, "Play/pause", "player"},
	{[]string{"f"}, ActionFullscreen, "Toggle fullscreen", "player"},
	{[]string{"m"}, ActionMute, "Toggle mute", "player"},
	{[]string{"i"}, ActionMinimize, "Minimize to mini-player", "player"},
	{[]string{"left"}, ActionSkipBack, "Skip -10s", "player"},
	{[]string{"right"}, ActionSkipForward, "Skip +10s", "player"},
	{[]string{"up"}, ActionVolumeUp, "Volume up", "player"},
	{[]string{"down"}, ActionVolumeDown, "Volume down", "player"},
	{[]string{">"}, ActionSpeedUp, "Faster playback", "player"},
	{[]string{"<"}, ActionSpeedDown, "Slower playback", "player"},
	{[]string{"s"}, ActionSettings, "Settings menu", "player"},
	{[]string{"r"}, ActionRetry, "Retry after error", "player"},
	{[]string{"esc"}, ActionBack, "Minimize player", "player"},

	// Quiz
	{[]string{"j", "down"}, ActionMoveDown, "Next option", "quiz"},
	{[]string{"k", "up"}, ActionMoveUp, "Previous option", "quiz"},
	{[]string{"h", "left"}, ActionMoveLeft, "Previous question", "quiz"},
	{[]string{"l", "right"}, ActionMoveRight, "Next question", "quiz"},
	{[]string{"enter", " "}, ActionSelect, "Mark answer", "quiz"},
	{[]string{"x"}, ActionClearAnswer, "Clear answer", "quiz"},
	{[]string{"ctrl+s"}, ActionSubmit, "Submit quiz", "quiz"},

	// Login
	{[]string{"enter"}, ActionSubmit, "Submit", "login"},
	{[]string{"tab"}, ActionSwitchFocus, "Next field", "login"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
