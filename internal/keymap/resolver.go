package keymap

import "slices"

// Resolver maps key strings to actions within a set of contexts.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys
}

// NewResolver creates a resolver from the bindings whose context is listed.
// With no contexts every binding is used. A key bound twice resolves to the
// first binding.
func NewResolver(bindings []Binding, contexts ...string) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		if len(contexts) > 0 && !slices.Contains(contexts, b.Context) {
			continue
		}
		for _, key := range b.Keys {
			if _, ok := r.bindings[key]; !ok {
				r.bindings[key] = b.Action
			}
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
