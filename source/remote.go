/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

import (
	"context"

	"go.uber.org/zap"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
	"github.com/meridianapps/rpcsource/transport"
)

// DataSet is the typed result of a query: the materialized members plus the
// service's has-more flag. Raw keeps the undecoded payload for callers that
// need out-of-band metadata.
type DataSet struct {
	All     *record.RecordSet
	HasMore bool
	Raw     transport.RawData
}

// Remote is the generic remote CRUD source. Binding, passing and cache
// parameters are configuration: operations never mutate them mid-call,
// though the whole structure may be re-assigned between calls.
type Remote struct {
	provider          *provider.Provider
	binding           Binding
	passing           Passing
	factory           record.Factory
	keyProperty       string
	updateOnlyChanged bool
	cache             transport.CacheParameters
	debug             bool
	logger            *zap.Logger
	before            Notifier
}

// Option configures a Remote.
type Option func(*Remote)

// WithBinding replaces the binding table.
func WithBinding(b Binding) Option {
	return func(r *Remote) { r.binding = b }
}

// WithPassing replaces the passing strategy table wholesale.
func WithPassing(p Passing) Option {
	return func(r *Remote) { r.passing = p }
}

// WithFactory replaces the record construction factory.
func WithFactory(f record.Factory) Option {
	return func(r *Remote) { r.factory = f }
}

// WithKeyProperty names the identifier field of records handled by this
// source.
func WithKeyProperty(field string) Option {
	return func(r *Remote) { r.keyProperty = field }
}

// WithUpdateOnlyChanged narrows update payloads to changed fields/members.
func WithUpdateOnlyChanged() Option {
	return func(r *Remote) { r.updateOnlyChanged = true }
}

// WithCacheParameters sets the opaque cache hint passed through to the
// transport on every call.
func WithCacheParameters(c transport.CacheParameters) Option {
	return func(r *Remote) { r.cache = c }
}

// WithDebug enables failure logging.
func WithDebug() Option {
	return func(r *Remote) { r.debug = true }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Remote) { r.logger = l }
}

// NewRemote constructs a source over the provider.
func NewRemote(p *provider.Provider, opts ...Option) *Remote {
	r := &Remote{
		provider: p,
		binding:  DefaultBinding(),
		factory:  record.MapFactory{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.passing.Create == nil {
		r.passing = defaultPassing(r)
	}
	return r
}

// Provider returns the underlying provider.
func (r *Remote) Provider() *provider.Provider {
	return r.provider
}

// Binding returns the current binding table.
func (r *Remote) Binding() Binding {
	return r.binding
}

// SetBinding re-assigns the whole binding table.
func (r *Remote) SetBinding(b Binding) {
	r.binding = b
}

// Passing returns the current passing table.
func (r *Remote) Passing() Passing {
	return r.passing
}

// SetPassing re-assigns the whole passing table.
func (r *Remote) SetPassing(p Passing) {
	r.passing = p
}

// KeyProperty returns the identifier field name, if configured.
func (r *Remote) KeyProperty() string {
	return r.keyProperty
}

// Factory returns the record construction factory.
func (r *Remote) Factory() record.Factory {
	return r.factory
}

// Logger returns the source logger.
func (r *Remote) Logger() *zap.Logger {
	return r.logger
}

// OnBeforeCall subscribes an observer that may rewrite the method and
// arguments of every outgoing call.
func (r *Remote) OnBeforeCall(fn func(*CallEvent)) {
	r.before.Subscribe(fn)
}

// Invoke runs the before-call notification and dispatches one call through
// the provider. Failures are logged when debug is set, a cancellation kind
// apart from any other failure, and returned to the caller unchanged.
func (r *Remote) Invoke(ctx context.Context, op Operation, method string, args Args) (transport.RawData, error) {
	ev := &CallEvent{Op: op, Method: method, Args: args}
	r.before.notify(ev)

	var opts []transport.CallOption
	if r.cache != nil {
		opts = append(opts, transport.WithCache(r.cache))
	}

	raw, err := r.provider.Call(ctx, ev.Method, ev.Args, opts...)
	if err != nil {
		if r.debug {
			if errors.IsCancelled(err) {
				r.logger.Debug("remote call cancelled",
					zap.String("op", string(ev.Op)),
					zap.String("method", ev.Method))
			} else {
				r.logger.Error("remote call failed",
					zap.String("op", string(ev.Op)),
					zap.String("method", ev.Method),
					zap.Error(err))
			}
		}
		return nil, err
	}
	return raw, nil
}

// Create asks the service for a new record primed with meta.
func (r *Remote) Create(ctx context.Context, meta map[string]any) (*record.Record, error) {
	args, err := r.passing.Create(meta)
	if err != nil {
		return nil, err
	}
	raw, err := r.Invoke(ctx, OpCreate, r.binding.Create, args)
	if err != nil {
		return nil, err
	}
	return r.factory.Record(raw)
}

// Read fetches one record by key.
func (r *Remote) Read(ctx context.Context, key any, meta map[string]any) (*record.Record, error) {
	args, err := r.passing.Read(key, meta)
	if err != nil {
		return nil, err
	}
	raw, err := r.Invoke(ctx, OpRead, r.binding.Read, args)
	if err != nil {
		return nil, err
	}
	return r.factory.Record(raw)
}

// Update persists a record or record set and resolves the written key.
func (r *Remote) Update(ctx context.Context, data any, meta map[string]any) (any, error) {
	args, err := r.passing.Update(data, meta)
	if err != nil {
		return nil, err
	}
	raw, err := r.Invoke(ctx, OpUpdate, r.binding.Update, args)
	if err != nil {
		return nil, err
	}
	return r.resolveUpdateKey(raw, data), nil
}

// Destroy removes the records named by keys.
func (r *Remote) Destroy(ctx context.Context, keys []any, meta map[string]any) error {
	args, err := r.passing.Destroy(keys, meta)
	if err != nil {
		return err
	}
	_, err = r.Invoke(ctx, OpDestroy, r.binding.Destroy, args)
	return err
}

// Query runs an abstract query and materializes the result set.
func (r *Remote) Query(ctx context.Context, q *query.Query) (*DataSet, error) {
	args, err := r.passing.Query(q)
	if err != nil {
		return nil, err
	}
	raw, err := r.Invoke(ctx, OpQuery, r.binding.Query, args)
	if err != nil {
		return nil, err
	}
	return r.buildDataSet(q, raw)
}

// Copy clones the record named by key and returns the clone.
func (r *Remote) Copy(ctx context.Context, key any, meta map[string]any) (*record.Record, error) {
	args, err := r.passing.Copy(key, meta)
	if err != nil {
		return nil, err
	}
	raw, err := r.Invoke(ctx, OpCopy, r.binding.Copy, args)
	if err != nil {
		return nil, err
	}
	return r.factory.Record(raw)
}

// Merge folds the record named by from into the record named by to.
func (r *Remote) Merge(ctx context.Context, from, to any) error {
	args, err := r.passing.Merge(from, to)
	if err != nil {
		return err
	}
	_, err = r.Invoke(ctx, OpMerge, r.binding.Merge, args)
	return err
}

// Move reorders the records named by from relative to to.
func (r *Remote) Move(ctx context.Context, from []any, to any, meta map[string]any) error {
	args, err := r.passing.Move(from, to, meta)
	if err != nil {
		return err
	}
	_, err = r.Invoke(ctx, OpMove, r.binding.Move, args)
	return err
}

// resolveUpdateKey picks the written key out of the raw update result,
// falling back to the payload's own identifier field.
func (r *Remote) resolveUpdateKey(raw transport.RawData, data any) any {
	switch v := raw.(type) {
	case nil:
		// fall through to the payload
	case map[string]any:
		if r.keyProperty != "" {
			if key, ok := v[r.keyProperty]; ok {
				return key
			}
		}
	default:
		return v
	}
	if rec, ok := data.(*record.Record); ok && r.keyProperty != "" {
		if key, ok := rec.Get(r.keyProperty); ok {
			return key
		}
	}
	return nil
}

// buildDataSet materializes a raw query payload. The service answers either
// a bare member list or an envelope {"Items": ..., "HasMore": ...}.
func (r *Remote) buildDataSet(q *query.Query, raw transport.RawData) (*DataSet, error) {
	switch v := raw.(type) {
	case map[string]any:
		all, err := r.factory.RecordSet(v["Items"])
		if err != nil {
			return nil, err
		}
		hasMore := q.HasMore()
		if b, ok := v["HasMore"].(bool); ok {
			hasMore = b
		}
		return &DataSet{All: all, HasMore: hasMore, Raw: raw}, nil
	default:
		all, err := r.factory.RecordSet(raw)
		if err != nil {
			return nil, err
		}
		return &DataSet{All: all, HasMore: q.HasMore(), Raw: raw}, nil
	}
}
