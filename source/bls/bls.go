/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package bls

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
	"github.com/meridianapps/rpcsource/registry"
	"github.com/meridianapps/rpcsource/source"
)

// DefaultOrderProperty is the field the service orders movable records by
// when the source does not name one.
const DefaultOrderProperty = "OrderNum"

// DefaultBinding binds each operation to the service's literal method
// names. The batch-update method is disabled until bound explicitly.
func DefaultBinding() source.Binding {
	return source.Binding{
		Create:  "Create",
		Read:    "Read",
		Update:  "Update",
		Destroy: "Delete",
		Query:   "List",
		Copy:    "Copy",
		Merge:   "Merge",
		Move:    "Move",
	}
}

// Source is the business-logic specialization of the remote CRUD source.
type Source struct {
	*source.Remote

	navigationMode query.NavigationMode
	orderProperty  string
	hierarchyField string
	legacyMove     bool

	remoteOpts []source.Option
}

// Option configures a Source.
type Option func(*Source)

// WithNavigationMode sets the source-level navigation mode. Per-query
// metadata still overrides it.
func WithNavigationMode(m query.NavigationMode) Option {
	return func(s *Source) { s.navigationMode = m }
}

// WithOrderProperty names the ordering field sent with move calls.
func WithOrderProperty(field string) Option {
	return func(s *Source) { s.orderProperty = field }
}

// WithHierarchyField names the hierarchy field sent with move calls.
func WithHierarchyField(field string) Option {
	return func(s *Source) { s.hierarchyField = field }
}

// WithLegacyMove switches move to the deprecated two-method protocol
// against the endpoint's move contract.
func WithLegacyMove() Option {
	return func(s *Source) { s.legacyMove = true }
}

// WithRemoteOptions forwards options to the underlying remote source.
func WithRemoteOptions(opts ...source.Option) Option {
	return func(s *Source) { s.remoteOpts = append(s.remoteOpts, opts...) }
}

// New composes a business-logic source over the provider. The binding
// starts from the protocol defaults, overlaid with any preset registered
// for the endpoint's contract.
func New(p *provider.Provider, opts ...Option) *Source {
	s := &Source{
		navigationMode: query.NavigationPage,
		orderProperty:  DefaultOrderProperty,
	}
	for _, opt := range opts {
		opt(s)
	}

	binding := DefaultBinding()
	if preset, ok := registry.GetBinding(p.Endpoint().Contract); ok {
		binding = binding.ApplyPreset(preset)
	}

	remoteOpts := append([]source.Option{source.WithBinding(binding)}, s.remoteOpts...)
	s.Remote = source.NewRemote(p, remoteOpts...)
	s.SetPassing(s.passing())
	return s
}

func (s *Source) contract() string {
	return s.Provider().Endpoint().Contract
}

// Update persists a record. When a batch-update method is bound and the
// payload is a record set, it sends the set's diff triple instead of the
// whole set.
func (s *Source) Update(ctx context.Context, data any, meta map[string]any) (any, error) {
	if batch := s.Binding().UpdateBatch; batch != "" {
		switch set := data.(type) {
		case *record.RecordSet:
			args := map[string]any{
				"Changed": rawMembers(set.Changed()),
				"Added":   rawMembers(set.Added()),
				"Removed": set.RemovedKeys(),
			}
			_, err := s.Invoke(ctx, source.OpUpdate, batch, args)
			return nil, err
		case *record.Record:
			// single records take the regular path
		default:
			return nil, errors.NewShapeError("update", data)
		}
	}
	return s.Remote.Update(ctx, data, meta)
}

// Destroy groups the identifiers by object name and issues one remote call
// per group, concurrently. The first rejection fails the whole operation;
// sibling calls are neither retracted nor compensated.
func (s *Source) Destroy(ctx context.Context, keys []any, meta map[string]any) error {
	groups := GroupByObject(keys, s.contract())

	var eg errgroup.Group
	for _, g := range groups {
		g := g
		eg.Go(func() error {
			args, err := s.Passing().Destroy(anyKeys(g.Keys), meta)
			if err != nil {
				return err
			}
			method := provider.Qualify(g.ObjectName, s.Binding().Destroy)
			_, err = s.Invoke(ctx, source.OpDestroy, method, args)
			return err
		})
	}
	return eg.Wait()
}

// Move reorders records relative to a destination, one remote call per
// object-name group, concurrently. With legacy move enabled the deprecated
// two-method protocol is used instead.
func (s *Source) Move(ctx context.Context, from []any, to any, meta map[string]any) error {
	if s.legacyMove {
		return s.moveLegacy(ctx, from, to, meta)
	}

	groups := GroupByObject(from, s.contract())

	var eg errgroup.Group
	for _, g := range groups {
		g := g
		eg.Go(func() error {
			method := provider.Qualify(g.ObjectName, s.Binding().Move)
			_, err := s.Invoke(ctx, source.OpMove, method, s.moveArgs(g, to, meta))
			return err
		})
	}
	return eg.Wait()
}

func (s *Source) moveArgs(g Group, to any, meta map[string]any) map[string]any {
	var hierarchy any
	if s.hierarchyField != "" {
		hierarchy = s.hierarchyField
	}
	return map[string]any{
		"IndexNumber":   s.orderProperty,
		"HierarchyName": hierarchy,
		"ObjectName":    g.ObjectName,
		"ObjectId":      g.Keys,
		"DestinationId": s.destinationKey(to),
		"Order":         movePosition(meta),
		"ReadMethod":    provider.Qualify(g.ObjectName, s.Binding().Read),
		"UpdateMethod":  provider.Qualify(g.ObjectName, s.Binding().Update),
	}
}

// moveLegacy issues a distinct move-before or move-after call against the
// endpoint's move contract, on a single complex identifier, without
// grouping.
//
// Deprecated protocol, kept for services predating the unified move method.
func (s *Source) moveLegacy(ctx context.Context, from []any, to any, meta map[string]any) error {
	s.Logger().Warn("two-method move is deprecated, bind the unified move method instead",
		zap.String("contract", s.contract()))

	if len(from) != 1 {
		return errors.NewArgumentError("move", "legacy move operates on exactly one identifier")
	}

	id := ParseComplexID(fmt.Sprint(from[0]), s.contract())

	method := "MoveBefore"
	if movePosition(meta) == "after" {
		method = "MoveAfter"
	}
	qualified := provider.Qualify(s.Provider().Endpoint().MoveContract, method)

	args := map[string]any{
		"Id":            id.Key,
		"ObjectName":    id.ObjectName,
		"DestinationId": s.destinationKey(to),
		"IndexNumber":   s.orderProperty,
	}
	_, err := s.Invoke(ctx, source.OpMove, qualified, args)
	return err
}

func (s *Source) destinationKey(to any) any {
	if to == nil {
		return nil
	}
	return ParseComplexID(fmt.Sprint(to), s.contract()).Key
}

func movePosition(meta map[string]any) string {
	if meta != nil {
		if p, ok := meta[query.MetaPosition].(string); ok && p != "" {
			return p
		}
	}
	return "on"
}

func rawMembers(members []*record.Record) []map[string]any {
	out := make([]map[string]any, len(members))
	for i, m := range members {
		out[i] = m.Raw()
	}
	return out
}

func anyKeys(keys []string) []any {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}
