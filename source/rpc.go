/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

import (
	"context"

	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/transport"
)

// RPC is a thin source exposing a single generic named-command call on top
// of the remote machinery: qualification, before-call observers, cache
// hints and failure logging all apply.
type RPC struct {
	*Remote
}

// NewRPC constructs an RPC source over the provider.
func NewRPC(p *provider.Provider, opts ...Option) *RPC {
	return &RPC{Remote: NewRemote(p, opts...)}
}

// Call invokes a named command with the given arguments and returns the raw
// result.
func (r *RPC) Call(ctx context.Context, command string, args any) (transport.RawData, error) {
	return r.Invoke(ctx, OpCall, command, args)
}
