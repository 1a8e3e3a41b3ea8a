/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package rpcsource

import (
	"fmt"
	"sort"
	"sync"

	"github.com/meridianapps/rpcsource/provider"
)

// Source is the behavior shared by every source in this library: it exposes
// the provider it dispatches calls through. *source.Remote, *source.RPC and
// *bls.Source all satisfy it; callers type-assert the concrete source they
// registered when they need the full operation surface.
type Source interface {
	Provider() *provider.Provider
}

// SourceManager holds named sources for an application, typically one per
// remote contract ("Orders", "Invoices"). Registration happens at
// composition time; lookups are safe from any goroutine.
type SourceManager struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewSourceManager returns an empty manager.
func NewSourceManager() *SourceManager {
	return &SourceManager{
		sources: make(map[string]Source),
	}
}

// RegisterSource stores a source under a name. Registering the same name
// twice is a composition mistake and is rejected.
func (sm *SourceManager) RegisterSource(name string, src Source) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sources[name]; exists {
		return fmt.Errorf("source %q already registered", name)
	}
	sm.sources[name] = src
	return nil
}

// GetSource resolves a source by name.
func (sm *SourceManager) GetSource(name string) (Source, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	src, exists := sm.sources[name]
	if !exists {
		return nil, fmt.Errorf("no source registered as %q", name)
	}
	return src, nil
}

// RemoveSourceByName drops a registered source.
func (sm *SourceManager) RemoveSourceByName(name string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sources[name]; !exists {
		return fmt.Errorf("no source registered as %q", name)
	}
	delete(sm.sources, name)
	return nil
}

// Names returns the registered source names, sorted.
func (sm *SourceManager) Names() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	names := make([]string, 0, len(sm.sources))
	for name := range sm.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
