package admin

import (
	"fmt"
	"sync"
)

// Registry maps entity names to views. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	views map[string]ModelView
	order []string
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]ModelView)}
}

// Register adds v under v.Name(). Names are unique.
func (r *Registry) Register(v ModelView) error {
	name := v.Name()
	if name == "" {
		return ErrEmptyViewName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateView, name)
	}
	r.views[name] = v
	r.order = append(r.order, name)

	return nil
}

// View returns the view registered under name or ErrUnknownEntity.
func (r *Registry) View(name string) (ModelView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
	}
	return v, nil
}

// Names returns the registered entity names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
