package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "strip", "mouse"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Strip
	{ActionPrev, []string{"h", "left"}, "Previous item", "strip"},
	{ActionNext, []string{"l", "right"}, "Next item", "strip"},
	{ActionFirst, []string{"g", "home"}, "First item", "strip"},
	{ActionLast, []string{"G", "end"}, "Last item", "strip"},
	{ActionToggleStyle, []string{"f"}, "Toggle carousel/flow", "strip"},
	{ActionRemove, []string{"d", "delete"}, "Remove from strip", "strip"},
	{ActionTogglePlaying, []string{" "}, "Play/stop video", "strip"},
	{ActionReload, []string{"r"}, "Reload folder", "strip"},
}

// Mouse lists the pointer gestures for help; they resolve no keys.
var Mouse = []Binding{
	{"", []string{"drag"}, "Pan the strip", "mouse"},
	{"", []string{"wheel"}, "Previous/next item", "mouse"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range append(All[:len(All):len(All)], Mouse...) {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyLabel renders a key for display.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
