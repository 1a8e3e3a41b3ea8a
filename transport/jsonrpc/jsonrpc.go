/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/rpc/v2/json2"
	"go.uber.org/zap"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/registry"
	"github.com/meridianapps/rpcsource/transport"
)

// Name is the registry name of this transport. It is the platform default.
const Name = "jsonrpc"

func init() {
	registry.RegisterTransport(Name, func(address string) (transport.Transport, error) {
		return New(address), nil
	})
}

// Transport speaks JSON-RPC 2.0 over HTTP POST. Every call is one request;
// Abort cancels whatever requests are in flight at that moment.
type Transport struct {
	address string
	client  *http.Client
	logger  *zap.Logger

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

// Option configures the transport.
type Option func(*Transport)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) { t.client = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transport) { t.logger = l }
}

// New constructs a transport for the given service address.
func New(address string, opts ...Option) *Transport {
	t := &Transport{
		address:  address,
		client:   &http.Client{},
		logger:   zap.NewNop(),
		inflight: make(map[string]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CallMethod posts one JSON-RPC request and decodes the response payload.
func (t *Transport) CallMethod(ctx context.Context, method string, args any, opts ...transport.CallOption) (transport.RawData, error) {
	options := transport.NewCallOptions(opts...)

	body, err := json2.EncodeClientRequest(method, args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for %q: %w", method, err)
	}

	callCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()
	t.track(id, cancel)
	defer t.untrack(id)

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, t.address, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", id)
	if !options.Recency.IsZero() {
		req.Header.Set("X-Recency", options.Recency.Format(time.RFC3339))
	}
	if options.ProtocolVersion > 0 {
		req.Header.Set("X-Protocol-Version", strconv.Itoa(options.ProtocolVersion))
	}
	if options.Cache != nil {
		hint, err := json.Marshal(options.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cache hint for %q: %w", method, err)
		}
		req.Header.Set("X-Cache-Params", string(hint))
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if stderrors.Is(callCtx.Err(), context.Canceled) {
			t.logger.Debug("call cancelled", zap.String("method", method), zap.String("requestId", id))
			return nil, errors.NewCancellationError(method)
		}
		return nil, errors.NewRemoteCallError(method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRemoteCallError(method, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var raw transport.RawData
	if err := json2.DecodeClientResponse(resp.Body, &raw); err != nil {
		return nil, errors.NewRemoteCallError(method, err)
	}
	return raw, nil
}

// Abort cancels every in-flight request. Best effort: requests already
// answered are unaffected.
func (t *Transport) Abort() {
	t.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(t.inflight))
	for _, cancel := range t.inflight {
		cancels = append(cancels, cancel)
	}
	t.inflight = make(map[string]context.CancelFunc)
	t.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (t *Transport) track(id string, cancel context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inflight[id] = cancel
}

func (t *Transport) untrack(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, id)
}
