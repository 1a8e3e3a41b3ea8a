/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package transport

import (
	"context"
	"time"
)

// RawData is an untyped response payload as decoded from the wire.
type RawData = any

// CacheParameters is an opaque caching hint passed through to the transport.
// This layer never interprets it.
type CacheParameters map[string]any

// CallOptions carries the optional parts of a call: a recency hint, a
// protocol version and a cache hint.
type CallOptions struct {
	Recency         time.Time
	ProtocolVersion int
	Cache           CacheParameters
}

// CallOption configures a single call.
type CallOption func(*CallOptions)

// WithRecency sets the recency hint.
func WithRecency(t time.Time) CallOption {
	return func(o *CallOptions) { o.Recency = t }
}

// WithProtocolVersion sets the protocol version.
func WithProtocolVersion(v int) CallOption {
	return func(o *CallOptions) { o.ProtocolVersion = v }
}

// WithCache sets the cache hint.
func WithCache(c CacheParameters) CallOption {
	return func(o *CallOptions) { o.Cache = c }
}

// NewCallOptions folds options into a CallOptions value.
func NewCallOptions(opts ...CallOption) CallOptions {
	var o CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Transport sends named calls to the business-logic service.
//
// CallMethod blocks until the service responds or the call fails. A
// rejection surfaces as a RemoteCallError; a transport-level cancellation
// surfaces as a CancellationError so callers can tell the two apart.
//
// Abort cancels in-flight calls on a best-effort basis.
type Transport interface {
	CallMethod(ctx context.Context, method string, args any, opts ...CallOption) (RawData, error)
	Abort()
}
