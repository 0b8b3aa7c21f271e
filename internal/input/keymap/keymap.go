package keymap

import (
	"fmt"

	"github.com/dshills/med/internal/input/key"
)

// Keymap holds key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings. When two bindings resolve
	// to the same key, the later one wins.
	Bindings []Binding

	// Source indicates where this keymap was defined ("default", "config").
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with resolved key events.
type ParsedKeymap struct {
	*Keymap
	byEvent map[key.Event]Binding
}

// Parse validates the keymap and resolves all of its bindings.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	parsed := &ParsedKeymap{
		Keymap:  k,
		byEvent: make(map[key.Event]Binding, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		parsed.byEvent[key.MustParse(b.Keys)] = b
	}

	return parsed, nil
}

// Lookup returns the binding for ev.
func (p *ParsedKeymap) Lookup(ev key.Event) (Binding, bool) {
	b, ok := p.byEvent[ev]
	return b, ok
}

// Action returns the action bound to ev, or "" if none.
func (p *ParsedKeymap) Action(ev key.Event) string {
	b, _ := p.Lookup(ev)
	return b.Action
}
