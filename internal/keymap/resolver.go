package keymap

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help)
}

// NewResolver creates a resolver from bindings. Bindings without an action
// are documentation only and are skipped.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		if b.Action == "" {
			continue
		}
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
			if !slices.Contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// ResolveKey returns the action for a key press.
func (r *Resolver) ResolveKey(msg tea.KeyMsg) Action {
	return r.Resolve(msg.String())
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
