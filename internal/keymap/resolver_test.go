//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"h", ActionPrev},
		{"left", ActionPrev},
		{"l", ActionNext},
		{"G", ActionLast},
		{"home", ActionFirst},
		{"f", ActionToggleStyle},
		{"delete", ActionRemove},
		{" ", ActionTogglePlaying},
		{"drag", ""},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if result := r.Resolve(tt.key); result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveKey(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, ActionRemove},
		{"arrow", tea.KeyMsg{Type: tea.KeyRight}, ActionNext},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionTogglePlaying},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := r.ResolveKey(tt.msg); result != tt.expected {
				t.Errorf("ResolveKey(%q) = %q, want %q", tt.msg.String(), result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionRemove, []string{"d", "delete"}, "Remove", "strip"},
		{ActionRemove, []string{"d"}, "Remove", "other"},
		{ActionQuit, []string{"q"}, "Quit", "global"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionRemove)
	if len(keys) != 2 || !slices.Contains(keys, "d") || !slices.Contains(keys, "delete") {
		t.Errorf("KeysFor(ActionRemove) = %v, want [d delete]", keys)
	}

	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}

	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
