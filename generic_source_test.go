/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package rpcsource

import (
	"fmt"
	"testing"
)

// Distinct source flavors for the type-keyed tests. Real callers register
// *bls.Source or *source.RPC here; any concrete type works.
type orderSource struct {
	Contract string
}

type reportSource struct {
	Command string
}

func TestTypedSources(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		sources := NewTypedSources[*orderSource]()

		err := sources.Register("orders", &orderSource{Contract: "Orders"})
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		retrieved, err := sources.Get("orders")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil || retrieved.Contract != "Orders" {
			t.Fatalf("Retrieved wrong source: %+v", retrieved)
		}

		keys := sources.List()
		if len(keys) != 1 || keys[0] != "orders" {
			t.Fatalf("Expected [orders], got %v", keys)
		}

		err = sources.Remove("orders")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		_, err = sources.Get("orders")
		if err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		sources := NewTypedSources[*orderSource]()

		err := sources.Register("orders", &orderSource{})
		if err != nil {
			t.Fatalf("First registration failed: %v", err)
		}

		err = sources.Register("orders", &orderSource{})
		if err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})
}

func TestMultiTypeSources(t *testing.T) {
	mts := NewMultiTypeSources()

	t.Run("DifferentTypes", func(t *testing.T) {
		err := RegisterSource(mts, "orders", &orderSource{Contract: "Orders"})
		if err != nil {
			t.Fatalf("Failed to register order source: %v", err)
		}

		err = RegisterSource(mts, "reports", &reportSource{Command: "BuildReport"})
		if err != nil {
			t.Fatalf("Failed to register report source: %v", err)
		}

		orders, err := GetSource[*orderSource](mts, "orders")
		if err != nil || orders == nil {
			t.Fatalf("Failed to get order source: %v", err)
		}

		reports, err := GetSource[*reportSource](mts, "reports")
		if err != nil || reports == nil {
			t.Fatalf("Failed to get report source: %v", err)
		}

		orderKeys := ListSources[*orderSource](mts)
		if len(orderKeys) != 1 || orderKeys[0] != "orders" {
			t.Fatalf("Expected order keys [orders], got %v", orderKeys)
		}

		reportKeys := ListSources[*reportSource](mts)
		if len(reportKeys) != 1 || reportKeys[0] != "reports" {
			t.Fatalf("Expected report keys [reports], got %v", reportKeys)
		}
	})

	t.Run("SameKeyDifferentTypes", func(t *testing.T) {
		err := RegisterSource(mts, "items", &orderSource{})
		if err != nil {
			t.Fatalf("Failed to register order source: %v", err)
		}

		err = RegisterSource(mts, "items", &reportSource{})
		if err != nil {
			t.Fatalf("Failed to register report source: %v", err)
		}

		// Both succeed because they live in different typed namespaces.
		orderItems, err := GetSource[*orderSource](mts, "items")
		if err != nil || orderItems == nil {
			t.Fatal("Failed to get order items")
		}

		reportItems, err := GetSource[*reportSource](mts, "items")
		if err != nil || reportItems == nil {
			t.Fatal("Failed to get report items")
		}
	})
}

func TestThreadSafety(t *testing.T) {
	mts := NewMultiTypeSources()
	done := make(chan bool)

	// Concurrent writes
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := fmt.Sprintf("source%d", id)
			RegisterSource(mts, key, &orderSource{})
			done <- true
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 10; i++ {
		go func() {
			ListSources[*orderSource](mts)
			done <- true
		}()
	}

	// Wait for completion
	for i := 0; i < 20; i++ {
		<-done
	}

	keys := ListSources[*orderSource](mts)
	if len(keys) != 10 {
		t.Fatalf("Expected 10 sources, got %d", len(keys))
	}
}
