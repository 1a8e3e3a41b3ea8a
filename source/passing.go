/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

import (
	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
)

// Args is the wire-level argument shape produced by a passing strategy:
// a positional list for the base layer, a named map for protocol
// specializations.
type Args = any

// Passing holds one strategy function per CRUD operation. The whole table
// is replaceable; protocol specializations swap it wholesale.
type Passing struct {
	Create  func(meta map[string]any) (Args, error)
	Read    func(key any, meta map[string]any) (Args, error)
	Update  func(data any, meta map[string]any) (Args, error)
	Destroy func(keys []any, meta map[string]any) (Args, error)
	Query   func(q *query.Query) (Args, error)
	Copy    func(key any, meta map[string]any) (Args, error)
	Merge   func(from, to any) (Args, error)
	Move    func(from []any, to any, meta map[string]any) (Args, error)
}

// defaultPassing is the documented base strategy table: positional argument
// lists, with change narrowing on update when the source asks for it.
func defaultPassing(r *Remote) Passing {
	return Passing{
		Create: func(meta map[string]any) (Args, error) {
			return []any{meta}, nil
		},
		Read: func(key any, meta map[string]any) (Args, error) {
			return []any{key, meta}, nil
		},
		Update: func(data any, meta map[string]any) (Args, error) {
			payload := data
			if r.updateOnlyChanged {
				narrowed, err := r.narrowToChanged(data)
				if err != nil {
					return nil, err
				}
				payload = narrowed
			}
			return []any{payload, meta}, nil
		},
		Destroy: func(keys []any, meta map[string]any) (Args, error) {
			return []any{keys, meta}, nil
		},
		Query: func(q *query.Query) (Args, error) {
			return []any{q}, nil
		},
		Copy: func(key any, meta map[string]any) (Args, error) {
			return []any{key, meta}, nil
		},
		Merge: func(from, to any) (Args, error) {
			return []any{from, to}, nil
		},
		Move: func(from []any, to any, meta map[string]any) (Args, error) {
			return []any{from, to, meta}, nil
		},
	}
}

// narrowToChanged reduces an update payload to what actually changed: a
// record becomes its identifier field plus changed fields, a record set
// becomes its new and changed members. Anything else passes through.
func (r *Remote) narrowToChanged(data any) (any, error) {
	switch v := data.(type) {
	case *record.Record:
		kp := r.keyProperty
		if kp == "" {
			return nil, errors.NewArgumentError("update", "no identifier property configured for change-only updates")
		}
		id, ok := v.Get(kp)
		if !ok || id == nil {
			return nil, errors.NewArgumentError("update", "no usable identifier property for change-only updates")
		}
		fields := []string{kp}
		for _, f := range v.Changed() {
			if f != kp {
				fields = append(fields, f)
			}
		}
		return v.Project(fields...), nil
	case *record.RecordSet:
		members := append(v.Added(), v.Changed()...)
		narrowed := make([]map[string]any, len(members))
		for i, m := range members {
			narrowed[i] = m.Raw()
		}
		return narrowed, nil
	default:
		return data, nil
	}
}
