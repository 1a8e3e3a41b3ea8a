/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package mock provides a scripted Transport implementation for testing
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/transport"
)

// Call records one CallMethod invocation.
type Call struct {
	Method  string
	Args    any
	Options transport.CallOptions
}

// Transport is a scripted transport for tests: results and errors are keyed
// by method name, every call is recorded, and an optional delay simulates a
// slow service.
type Transport struct {
	mu       sync.Mutex
	calls    []Call
	results  map[string]transport.RawData
	failures map[string]error
	handler  func(method string, args any) (transport.RawData, error)
	delay    time.Duration
	aborted  bool
	resolved map[string]int
}

// New creates a new mock Transport.
func New() *Transport {
	return &Transport{
		results:  make(map[string]transport.RawData),
		failures: make(map[string]error),
		resolved: make(map[string]int),
	}
}

// WithResult scripts a raw result for a method.
func (m *Transport) WithResult(method string, raw transport.RawData) *Transport {
	m.results[method] = raw
	return m
}

// WithFailure scripts a rejection for a method.
func (m *Transport) WithFailure(method string, err error) *Transport {
	m.failures[method] = err
	return m
}

// WithHandler sets a catch-all handler consulted when no scripted result or
// failure matches.
func (m *Transport) WithHandler(f func(method string, args any) (transport.RawData, error)) *Transport {
	m.handler = f
	return m
}

// WithDelay makes every call take at least d before answering. The delay is
// served with a timer, not the context, so a caller that gives up early
// still leaves the call running to completion.
func (m *Transport) WithDelay(d time.Duration) *Transport {
	m.delay = d
	return m
}

// CallMethod answers from the scripted results.
func (m *Transport) CallMethod(ctx context.Context, method string, args any, opts ...transport.CallOption) (transport.RawData, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Args: args, Options: transport.NewCallOptions(opts...)})
	m.mu.Unlock()

	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	raw, hasResult := m.results[method]
	err, hasFailure := m.failures[method]
	m.resolved[method]++
	m.mu.Unlock()

	if hasFailure {
		return nil, err
	}
	if hasResult {
		return raw, nil
	}
	if m.handler != nil {
		return m.handler(method, args)
	}
	return nil, errors.NewRemoteCallError(method, errors.ErrRemoteCall)
}

// Resolved returns how many calls to the method have run to completion.
// With a delay configured this lags Calls, which records dispatch time;
// the gap is what lets tests observe a call outliving a client-side
// timeout.
func (m *Transport) Resolved(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolved[method]
}

// Abort marks the transport aborted.
func (m *Transport) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aborted = true
}

// Aborted reports whether Abort was invoked.
func (m *Transport) Aborted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aborted
}

// Calls returns the recorded calls in order.
func (m *Transport) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls for one method.
func (m *Transport) CallsTo(method string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
