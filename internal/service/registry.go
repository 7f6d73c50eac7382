package service

import (
	"fmt"
	"sort"
)

// Registry maps strategy keys to implementations. It is populated once at
// startup and read-only afterwards, so call-time lookups need no locking.
// Several versions of a strategy may be registered side by side to stage a
// rollout without touching the orchestrator.
type Registry[S any] struct {
	entries map[string]S
}

// NewRegistry creates an empty registry.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{entries: make(map[string]S)}
}

// Register adds a strategy under key. Registering the same key twice is a
// wiring mistake and returns an error.
func (r *Registry[S]) Register(key string, strategy S) error {
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("strategy already registered for key %q", key)
	}
	r.entries[key] = strategy
	return nil
}

// Resolve returns the strategy registered under key.
func (r *Registry[S]) Resolve(key string) (S, bool) {
	strategy, ok := r.entries[key]
	return strategy, ok
}

// MustResolve returns the strategy under key or panics. A missing key is a
// configuration error, only acceptable during startup wiring.
func (r *Registry[S]) MustResolve(key string) S {
	strategy, ok := r.entries[key]
	if !ok {
		panic(fmt.Sprintf("no strategy registered for key %q", key))
	}
	return strategy
}

// Keys lists registered keys in sorted order.
func (r *Registry[S]) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
