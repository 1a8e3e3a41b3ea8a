/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package record

import (
	"github.com/meridianapps/rpcsource/errors"
)

// Factory materializes raw call results into records and record sets. The
// source layer depends on this interface only; MapFactory is the default.
type Factory interface {
	Record(raw any) (*Record, error)
	RecordSet(raw any) (*RecordSet, error)
}

// MapFactory builds records from plain JSON-shaped payloads.
type MapFactory struct{}

// Record converts a raw payload into a Record in loaded state. A nil
// payload yields an empty record.
func (MapFactory) Record(raw any) (*Record, error) {
	switch v := raw.(type) {
	case nil:
		return New(), nil
	case *Record:
		return v, nil
	case map[string]any:
		return FromMap(v), nil
	default:
		return nil, errors.NewShapeError("record", raw)
	}
}

// RecordSet converts a raw payload into a RecordSet in loaded state. A nil
// payload yields an empty set.
func (MapFactory) RecordSet(raw any) (*RecordSet, error) {
	switch v := raw.(type) {
	case nil:
		return NewSet(), nil
	case *RecordSet:
		return v, nil
	case []map[string]any:
		items := make([]*Record, len(v))
		for i, m := range v {
			items[i] = FromMap(m)
		}
		return NewSet(items...), nil
	case []any:
		items := make([]*Record, 0, len(v))
		for _, raw := range v {
			r, err := (MapFactory{}).Record(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, r)
		}
		return NewSet(items...), nil
	default:
		return nil, errors.NewShapeError("recordset", raw)
	}
}
