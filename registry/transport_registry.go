/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/meridianapps/rpcsource/transport"
)

// TransportFactory constructs a transport bound to a service address.
type TransportFactory func(address string) (transport.Transport, error)

// transportRegistry holds the mapping from a transport name (like "jsonrpc")
// to its factory.
var transportRegistry = make(map[string]TransportFactory)

// RegisterTransport registers a factory for a given transport name.
// If a factory is already registered for the name, it panics to prevent
// accidental overrides.
func RegisterTransport(name string, fn TransportFactory) {
	if _, exists := transportRegistry[name]; exists {
		panic(fmt.Sprintf("transport registry: transport %q already registered", name))
	}
	transportRegistry[name] = fn
}

// GetTransportFactory returns the registered factory for the given name.
// If no factory is registered, it returns an error.
func GetTransportFactory(name string) (TransportFactory, error) {
	fn, ok := transportRegistry[name]
	if !ok {
		return nil, fmt.Errorf("transport registry: no transport registered for %q", name)
	}
	return fn, nil
}
