/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package registry

import (
	"context"
	"testing"

	"github.com/meridianapps/rpcsource/transport"
)

type nopTransport struct{}

func (nopTransport) CallMethod(ctx context.Context, method string, args any, opts ...transport.CallOption) (transport.RawData, error) {
	return nil, nil
}

func (nopTransport) Abort() {}

func TestTransportRegistry(t *testing.T) {
	factory := func(address string) (transport.Transport, error) {
		return nopTransport{}, nil
	}

	RegisterTransport("test-transport", factory)

	fn, err := GetTransportFactory("test-transport")
	if err != nil {
		t.Fatalf("Failed to get factory: %v", err)
	}
	tr, err := fn("http://svc")
	if err != nil || tr == nil {
		t.Fatalf("Factory failed: %v", err)
	}

	if _, err := GetTransportFactory("unknown"); err == nil {
		t.Fatal("Expected error for unregistered transport")
	}
}

func TestTransportRegistryDuplicatePanics(t *testing.T) {
	factory := func(address string) (transport.Transport, error) {
		return nopTransport{}, nil
	}

	RegisterTransport("dup-transport", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic on duplicate registration")
		}
	}()
	RegisterTransport("dup-transport", factory)
}

func TestBindingRegistry(t *testing.T) {
	RegisterBinding("Legacy", map[string]string{"read": "Fetch"})

	preset, ok := GetBinding("Legacy")
	if !ok {
		t.Fatal("Expected a registered preset")
	}
	if preset["read"] != "Fetch" {
		t.Errorf("Expected read bound to Fetch, got %q", preset["read"])
	}

	if _, ok := GetBinding("Unknown"); ok {
		t.Fatal("Expected no preset for unknown contract")
	}

	// Re-registration replaces the preset.
	RegisterBinding("Legacy", map[string]string{"read": "Fetch2"})
	preset, _ = GetBinding("Legacy")
	if preset["read"] != "Fetch2" {
		t.Errorf("Expected replaced preset, got %q", preset["read"])
	}
}
