/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package bls

import (
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
	"github.com/meridianapps/rpcsource/source"
)

// passing is the protocol strategy table. It replaces the base table
// wholesale: every operation produces the named wire argument shape of the
// business-logic service.
func (s *Source) passing() source.Passing {
	return source.Passing{
		Create: func(meta map[string]any) (source.Args, error) {
			return map[string]any{"Filter": meta}, nil
		},
		Read: func(key any, meta map[string]any) (source.Args, error) {
			return map[string]any{"Id": key, "Fields": meta}, nil
		},
		Update: func(data any, meta map[string]any) (source.Args, error) {
			return map[string]any{"Record": rawPayload(data), "Fields": meta}, nil
		},
		Destroy: func(keys []any, meta map[string]any) (source.Args, error) {
			return map[string]any{"Id": keys, "Fields": meta}, nil
		},
		Query: s.buildQueryArgs,
		Copy: func(key any, meta map[string]any) (source.Args, error) {
			return map[string]any{"Id": key, "Fields": meta}, nil
		},
		Merge: func(from, to any) (source.Args, error) {
			return map[string]any{"Id": from, "TargetId": to}, nil
		},
		Move: func(from []any, to any, meta map[string]any) (source.Args, error) {
			// Single-group shape; the Move override dispatches per group.
			group := Group{ObjectName: s.contract()}
			for _, c := range GroupByObject(from, s.contract()) {
				group.Keys = append(group.Keys, c.Keys...)
			}
			return s.moveArgs(group, to, meta), nil
		},
	}
}

func rawPayload(data any) any {
	switch v := data.(type) {
	case *record.Record:
		return v.Raw()
	case *record.RecordSet:
		return v.Raw()
	case query.Where:
		return map[string]any(v)
	default:
		return data
	}
}
