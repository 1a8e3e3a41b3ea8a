/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package rpcsource

import (
	"fmt"
	"reflect"
	"sync"
)

// TypedSources provides type-safe registration and lookup for sources of a
// specific concrete type T, resolved once at composition time.
type TypedSources[T any] struct {
	mu      sync.RWMutex
	sources map[string]T
}

// NewTypedSources creates a new TypedSources for type T.
func NewTypedSources[T any]() *TypedSources[T] {
	return &TypedSources[T]{
		sources: make(map[string]T),
	}
}

// Register adds a source with the given key.
func (ts *TypedSources[T]) Register(key string, src T) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.sources[key]; exists {
		return fmt.Errorf("source with key %q already registered", key)
	}

	ts.sources[key] = src
	return nil
}

// Get retrieves a source by key.
func (ts *TypedSources[T]) Get(key string) (T, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	src, exists := ts.sources[key]
	if !exists {
		var zero T
		return zero, fmt.Errorf("source with key %q not found", key)
	}

	return src, nil
}

// Remove deletes a source by key.
func (ts *TypedSources[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.sources[key]; !exists {
		return fmt.Errorf("source with key %q not found", key)
	}

	delete(ts.sources, key)
	return nil
}

// List returns all registered source keys.
func (ts *TypedSources[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.sources))
	for k := range ts.sources {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeSources manages TypedSources instances for different types.
type MultiTypeSources struct {
	mu       sync.RWMutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeSources creates a new MultiTypeSources.
func NewMultiTypeSources() *MultiTypeSources {
	return &MultiTypeSources{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedSources returns a TypedSources for the specified type, creating
// it if necessary.
func GetTypedSources[T any](mts *MultiTypeSources) *TypedSources[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedSources[T])
	}

	newStorage := NewTypedSources[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterSource is a convenience function to register a source of type T.
func RegisterSource[T any](mts *MultiTypeSources, key string, src T) error {
	return GetTypedSources[T](mts).Register(key, src)
}

// GetSource is a convenience function to get a source of type T.
func GetSource[T any](mts *MultiTypeSources, key string) (T, error) {
	return GetTypedSources[T](mts).Get(key)
}

// RemoveSource is a convenience function to remove a source of type T.
func RemoveSource[T any](mts *MultiTypeSources, key string) error {
	return GetTypedSources[T](mts).Remove(key)
}

// ListSources is a convenience function to list all sources of type T.
func ListSources[T any](mts *MultiTypeSources) []string {
	return GetTypedSources[T](mts).List()
}
