package layout

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// CharMap maps a single typed character to the grapheme it produces. An entry
// with an empty value is a key that deliberately types nothing, which is not
// the same as a missing entry. CharMaps handed out by a Registry are shared
// and must not be modified.
type CharMap map[string]string

// Compile flattens a layout's unshifted and shifted keys into one CharMap.
func Compile(l KeyboardLayout) CharMap {
	m := make(CharMap)
	for _, row := range l.Rows {
		for _, def := range row {
			m[def.Key] = def.Output
			if def.ShiftKey != "" {
				m[def.ShiftKey] = def.shiftOutput()
			}
		}
	}
	return m
}

var (
	ErrDuplicateLayout = errors.New("layout already registered")
	ErrUnknownLayout   = errors.New("unknown layout")
)

type entry struct {
	layout KeyboardLayout
	once   sync.Once
	chars  CharMap
}

func (e *entry) charMap() CharMap {
	e.once.Do(func() {
		e.chars = Compile(e.layout)
	})
	return e.chars
}

// Registry holds named layouts and compiles each one at most once, on first use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewRegistry(layouts ...KeyboardLayout) (*Registry, error) {
	r := &Registry{entries: make(map[string]*entry)}
	for _, l := range layouts {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default holds the built-in layouts.
var Default = mustRegistry(Remington, Inscript)

func mustRegistry(layouts ...KeyboardLayout) *Registry {
	r, err := NewRegistry(layouts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Register(l KeyboardLayout) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[l.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLayout, l.Name)
	}
	r.entries[l.Name] = &entry{layout: l}
	return nil
}

func (r *Registry) get(name string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

func (r *Registry) Layout(name string) (KeyboardLayout, bool) {
	e, ok := r.get(name)
	if !ok {
		return KeyboardLayout{}, false
	}
	return e.layout, true
}

// CharMap returns the compiled map for name, compiling it on first use.
func (r *Registry) CharMap(name string) (CharMap, bool) {
	e, ok := r.get(name)
	if !ok {
		return nil, false
	}
	return e.charMap(), true
}

// Names returns the registered layout names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.entries)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
