// Package registry provides constructor registries keyed by stable type
// identifiers. Entity and item kinds register at startup, so spawning from a
// level file or a corpse never depends on runtime type lookup.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when no constructor is registered for an id.
var ErrNotFound = errors.New("registry: not found")

// Info contains metadata about a registered constructor.
type Info[K ~string] struct {
	ID    K
	Title string
}

// Registry maps ids to constructors of T built from arguments A.
type Registry[K ~string, A any, T any] struct {
	mu        sync.RWMutex
	factories map[K]func(A) (T, error)
	titles    map[K]string
}

// New creates an empty registry.
func New[K ~string, A any, T any]() *Registry[K, A, T] {
	return &Registry[K, A, T]{
		factories: make(map[K]func(A) (T, error)),
		titles:    make(map[K]string),
	}
}

// Register adds a constructor.
// Panics if a constructor with the same id is already registered.
func (r *Registry[K, A, T]) Register(id K, title string, f func(A) (T, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: %q already registered", id))
	}
	r.factories[id] = f
	r.titles[id] = title
}

// List returns information about all registered constructors, sorted by id.
func (r *Registry[K, A, T]) List() []Info[K] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info[K], 0, len(r.factories))
	for id := range r.factories {
		result = append(result, Info[K]{ID: id, Title: r.titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new instance by id.
// Returns an error wrapping ErrNotFound if the id is not registered.
func (r *Registry[K, A, T]) Create(id K, args A) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return f(args)
}

// Exists checks if an id is registered.
func (r *Registry[K, A, T]) Exists(id K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}
