/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package registry

import (
	"sync"
)

// Binding presets map a logical operation name (create, read, ...) to the
// concrete remote method name a contract uses for it. Presets registered
// here are resolved once when a source is composed.

var (
	bindingRegistry = make(map[string]map[string]string)
	mu              sync.RWMutex
)

// RegisterBinding associates a contract name with a binding preset.
func RegisterBinding(contract string, binding map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	bindingRegistry[contract] = binding
}

// GetBinding retrieves the binding preset for a contract, if any.
func GetBinding(contract string) (map[string]string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := bindingRegistry[contract]
	return b, ok
}
