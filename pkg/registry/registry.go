package registry

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/dictator/pkg/errors"
)

// Registry maps names to items and remembers registration order. Predicate
// evaluation and work creation both depend on that order.
type Registry[T any] interface {
	Register(name string, item T) error
	Get(name string) (T, error)

	// List returns all registered names in registration order
	List() []string

	// Each calls fn for every item in registration order until fn
	// returns false
	Each(fn func(name string, item T) bool)

	Has(name string) bool
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates a new Registry instance
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
	r.order = append(r.order, name)
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}
	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *registry[T]) Each(fn func(name string, item T) bool) {
	r.mu.RLock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	items := make([]T, len(names))
	for i, n := range names {
		items[i] = r.items[n]
	}
	r.mu.RUnlock()

	for i, n := range names {
		if !fn(n, items[i]) {
			return
		}
	}
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister is Register for init functions, where a failure is a bug
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet panics when name is not registered
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
