package keymap

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

type entry struct {
	action  Action
	binding key.Binding
}

// Resolver maps key presses to actions.
type Resolver struct {
	entries []entry
}

// NewResolver builds a resolver over bindings. When a key appears in more
// than one binding the last one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{entries: make([]entry, 0, len(bindings))}
	for _, b := range slices.Backward(bindings) {
		r.entries = append(r.entries, entry{action: b.Action, binding: b.KeyBinding()})
	}
	return r
}

// Resolve returns the action bound to k (usually a tea.KeyMsg), or "" when
// nothing matches.
func (r *Resolver) Resolve(k fmt.Stringer) Action {
	for _, e := range r.entries {
		if key.Matches(k, e.binding) {
			return e.action
		}
	}
	return ""
}
