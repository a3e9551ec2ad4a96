package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/chip/internal/input/key"
)

// QuitKey always quits and cannot be bound to another action.
const QuitKey = "C-q"

// ErrReservedKey is returned when a binding would take QuitKey away from
// ActionQuit.
var ErrReservedKey = errors.New("reserved key")

// Keymap holds key bindings, at most one per key.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// bindings is keyed by the canonical event string.
	bindings map[string]Binding
}

// NewKeymap creates an empty keymap.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[string]Binding),
	}
}

// Add binds keys to action, replacing any earlier binding for the key.
func (k *Keymap) Add(keys, action string) error {
	return k.AddBinding(Binding{Keys: keys, Action: action})
}

// AddBinding adds a fully configured binding.
func (k *Keymap) AddBinding(b Binding) error {
	ev, err := ParseKeys(b.Keys)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", k.Name, err)
	}
	if b.Action == "" {
		return fmt.Errorf("keymap %s: empty action for %q", k.Name, b.Keys)
	}
	b.Keys = ev.String()
	if b.Keys == QuitKey && b.Action != ActionQuit {
		return fmt.Errorf("keymap %s: %w: %s is always %s", k.Name, ErrReservedKey, QuitKey, ActionQuit)
	}
	k.bindings[b.Keys] = b
	return nil
}

// Lookup returns the binding for ev.
func (k *Keymap) Lookup(ev key.Event) (Binding, bool) {
	b, ok := k.bindings[ev.String()]
	return b, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns all bindings sorted by action then key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}
