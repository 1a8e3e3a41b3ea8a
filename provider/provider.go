/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package provider

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/registry"
	"github.com/meridianapps/rpcsource/transport"
)

// Separator splits an object name from a method name in a qualified call
// like "Orders.Read".
const Separator = "."

// DefaultMoveContract is the sentinel contract that answers move calls when
// the endpoint does not name one.
const DefaultMoveContract = "IndexNumber"

// DefaultTransport is the registry name resolved when no transport is
// supplied.
const DefaultTransport = "jsonrpc"

// Endpoint addresses one business-logic contract on one service.
type Endpoint struct {
	Address      string
	Contract     string
	MoveContract string
}

// Qualify prefixes a method with an object name. A method already carrying
// the separator is used verbatim.
func Qualify(object, method string) string {
	if strings.Contains(method, Separator) {
		return method
	}
	return object + Separator + method
}

// Provider owns a transport and dispatches qualified calls through it,
// racing each call against an optional client-side timeout budget.
type Provider struct {
	endpoint    Endpoint
	transport   transport.Transport
	callTimeout time.Duration
	logger      *zap.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithTransport supplies the transport instance, bypassing registry
// resolution.
func WithTransport(t transport.Transport) Option {
	return func(p *Provider) { p.transport = t }
}

// WithCallTimeout sets the client-side wait budget per call. Zero disables
// the race.
func WithCallTimeout(d time.Duration) Option {
	return func(p *Provider) { p.callTimeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// New constructs a Provider for the endpoint. When no transport is supplied,
// the platform default is resolved from the registry; failing that, the
// provider is unresolvable.
func New(endpoint Endpoint, opts ...Option) (*Provider, error) {
	if endpoint.MoveContract == "" {
		endpoint.MoveContract = DefaultMoveContract
	}

	p := &Provider{
		endpoint: endpoint,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.transport == nil {
		factory, err := registry.GetTransportFactory(DefaultTransport)
		if err != nil {
			return nil, errors.NewProviderUnresolvedError(endpoint.Contract)
		}
		t, err := factory(endpoint.Address)
		if err != nil {
			return nil, errors.NewProviderUnresolvedError(endpoint.Contract)
		}
		p.transport = t
	}
	return p, nil
}

// Endpoint returns the configured endpoint.
func (p *Provider) Endpoint() Endpoint {
	return p.endpoint
}

// Transport returns the owned transport.
func (p *Provider) Transport() transport.Transport {
	return p.transport
}

// Call qualifies the method with the endpoint's contract and dispatches it.
//
// With a positive timeout budget the call races a timer. On expiry the
// caller sees a TimeoutError, but the transport call is NOT cancelled: it
// keeps running and may still complete or fail in the background. This is a
// give-up, not a deadline.
func (p *Provider) Call(ctx context.Context, method string, args any, opts ...transport.CallOption) (transport.RawData, error) {
	name := Qualify(p.endpoint.Contract, method)

	if p.callTimeout <= 0 {
		return p.transport.CallMethod(ctx, name, args, opts...)
	}

	type outcome struct {
		raw transport.RawData
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		raw, err := p.transport.CallMethod(ctx, name, args, opts...)
		done <- outcome{raw: raw, err: err}
	}()

	select {
	case o := <-done:
		return o.raw, o.err
	case <-time.After(p.callTimeout):
		p.logger.Warn("remote call exceeded wait budget, giving up",
			zap.String("method", name),
			zap.Duration("budget", p.callTimeout))
		return nil, errors.NewTimeoutError(name, p.callTimeout)
	}
}
