// Package registry provides a small generic name-to-item registry. The
// properties package uses it to bind property identities to factory
// functions.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/props/pkg/errors"
)

// Registry is a thread-safe store of items keyed by name
type Registry[T any] interface {
	// Register adds an item under the given name
	Register(name string, item T) error

	// Get retrieves an item by name
	Get(name string) (T, error)

	// Has reports whether an item is registered
	Has(name string) bool

	// List returns all registered names in sorted order
	List() []string

	// Count returns the number of registered items
	Count() int

	// Clear removes all items
	Clear()
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}

// MustRegister registers an item and panics if registration fails.
// Intended for init() bindings where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
