package keymap

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds keymap profiles by name.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]*Layout
}

// NewRegistry creates a registry pre-populated with the built-in layouts.
func NewRegistry() *Registry {
	r := &Registry{
		layouts: make(map[string]*Layout),
	}
	r.Register(US())
	return r
}

// Register adds a layout to the registry.
// A layout with the same name is replaced.
func (r *Registry) Register(l *Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[l.Name] = l
}

// Get returns the layout for a profile name.
func (r *Registry) Get(name string) (*Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown keymap profile: %s", name)
	}
	return l, nil
}

// Names returns the registered profile names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
