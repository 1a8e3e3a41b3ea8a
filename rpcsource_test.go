/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package rpcsource

import (
	"reflect"
	"testing"

	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/source"
	"github.com/meridianapps/rpcsource/transport/mock"
)

func newManagedSource(t *testing.T, contract string) *source.RPC {
	t.Helper()
	p, err := provider.New(provider.Endpoint{Address: "http://svc", Contract: contract},
		provider.WithTransport(mock.New()))
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	return source.NewRPC(p)
}

func TestSourceManager(t *testing.T) {
	sm := NewSourceManager()

	orders := newManagedSource(t, "Orders")
	if err := sm.RegisterSource("orders", orders); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if err := sm.RegisterSource("orders", newManagedSource(t, "Orders")); err == nil {
		t.Fatal("Expected duplicate registration error")
	}

	got, err := sm.GetSource("orders")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if got.Provider().Endpoint().Contract != "Orders" {
		t.Fatalf("Retrieved wrong source: %+v", got)
	}
	if _, ok := got.(*source.RPC); !ok {
		t.Fatalf("Expected the registered concrete type, got %T", got)
	}

	if _, err := sm.GetSource("missing"); err == nil {
		t.Fatal("Expected error for unknown name")
	}
}

func TestSourceManagerNamesAndRemoval(t *testing.T) {
	sm := NewSourceManager()

	for _, name := range []string{"invoices", "orders"} {
		if err := sm.RegisterSource(name, newManagedSource(t, name)); err != nil {
			t.Fatalf("Failed to register %q: %v", name, err)
		}
	}

	if got := sm.Names(); !reflect.DeepEqual(got, []string{"invoices", "orders"}) {
		t.Fatalf("Expected sorted names, got %v", got)
	}

	if err := sm.RemoveSourceByName("invoices"); err != nil {
		t.Fatalf("Failed to remove: %v", err)
	}
	if err := sm.RemoveSourceByName("invoices"); err == nil {
		t.Fatal("Expected error removing an unknown name")
	}
	if got := sm.Names(); !reflect.DeepEqual(got, []string{"orders"}) {
		t.Fatalf("Expected remaining names [orders], got %v", got)
	}
}
