package keymap

import "strings"

// Contexts a binding applies in.
const (
	ContextGlobal   = "global"
	ContextPlayback = "playback"
	ContextList     = "list"
	ContextSearch   = "search"
)

// Binding maps keys to an action, with a label for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains every key binding of the storefront.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", ContextGlobal},
	{ActionSearch, []string{"/"}, "search", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "play/pause", ContextPlayback},
	{ActionSeekForward, []string{"right", "l"}, "+5s", ContextPlayback},
	{ActionSeekBack, []string{"left", "h"}, "-5s", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "louder", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "quieter", ContextPlayback},

	// Track list
	{ActionSelect, []string{"enter"}, "play", ContextList},
	{ActionMoveUp, []string{"k", "up"}, "up", ContextList},
	{ActionMoveDown, []string{"j", "down"}, "down", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "first", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "last", ContextList},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "page up", ContextList},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "page down", ContextList},

	// Search input
	{ActionSubmitSearch, []string{"enter"}, "search now", ContextSearch},
	{ActionLeaveSearch, []string{"esc"}, "back to list", ContextSearch},
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

// Hint renders "key label" pairs for the given actions, using the first
// key of each binding, separated by " · ". Unknown actions are skipped.
func Hint(bindings []Binding, actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		for _, b := range bindings {
			if b.Action == a {
				parts = append(parts, displayKey(b.Keys[0])+" "+b.Description)
				break
			}
		}
	}
	return strings.Join(parts, " · ")
}

func displayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return key
	}
}
