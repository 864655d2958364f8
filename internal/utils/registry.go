package utils

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Check vets an entry before Register stores it. existing must not be
// modified.
type Check[K cmp.Ordered, V any] func(key K, value V, existing map[K]V) error

// Registry is a concurrency-safe keyed table filled at init time and read
// afterwards, such as the language policies.
type Registry[K cmp.Ordered, V any] struct {
	name   string
	checks []Check[K, V]

	mu    sync.RWMutex
	items map[K]V
}

// NewRegistry creates an empty registry. name prefixes registration errors.
func NewRegistry[K cmp.Ordered, V any](name string, checks ...Check[K, V]) *Registry[K, V] {
	return &Registry[K, V]{name: name, checks: checks, items: make(map[K]V)}
}

// Register stores value under key once every check passed.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, check := range r.checks {
		if err := check(key, value, r.items); err != nil {
			return fmt.Errorf("%s registry: %w", r.name, err)
		}
	}
	r.items[key] = value
	return nil
}

func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.items[key]
	return value, ok
}

func (r *Registry[K, V]) Has(key K) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the registered keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Unique rejects a key that is already registered.
func Unique[K cmp.Ordered, V any]() Check[K, V] {
	return func(key K, _ V, existing map[K]V) error {
		if _, ok := existing[key]; ok {
			return fmt.Errorf("%v is already registered", key)
		}
		return nil
	}
}
