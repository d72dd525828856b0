// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Focus movement
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"

	// Strip actions
	ActionToggleStyle   Action = "toggle_style"   // f - carousel/flow
	ActionRemove        Action = "remove"         // d/delete - take item out of the strip
	ActionTogglePlaying Action = "toggle_playing" // space - video playback spacing
	ActionReload        Action = "reload"         // r - rescan the folder
)
