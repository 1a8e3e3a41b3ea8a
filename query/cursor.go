/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package query

import (
	"regexp"
	"sort"
	"strings"
)

// CursorDirection is the navigation direction of a position cursor.
type CursorDirection string

const (
	Forward  CursorDirection = "forward"
	Backward CursorDirection = "backward"
	Bothways CursorDirection = "bothways"
)

// Cursor is the position/direction pair used by position-mode navigation.
// Position is a field-to-value map, or a list of such maps when the
// consumed filter value was array-shaped.
type Cursor struct {
	Position  any
	Direction CursorDirection
}

var cursorOpPattern = regexp.MustCompile(`(>=|<=|~|>|<)$`)

// ExtractCursor scans a filter expression for cursor operands: keys carrying
// a trailing comparison operator. Matched keys are consumed into the cursor
// and excluded from the returned remaining filter; non-null values populate
// the position under the bare field name, null values only signal ordering.
// The first matched operand (in lexical key order) fixes the direction:
// "<" and "<=" mean backward, "~" means bothways, anything else forward.
//
// The input filter is never modified; callers use the returned remainder.
// Returns a nil cursor when no key matches.
func ExtractCursor(where Where) (*Cursor, Where) {
	remaining := make(Where, len(where))
	for k, v := range where {
		remaining[k] = v
	}

	keys := make([]string, 0, len(where))
	for k := range where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var cursor *Cursor
	position := make(map[string]any)
	var listPosition []map[string]any

	for _, key := range keys {
		op := cursorOpPattern.FindString(key)
		if op == "" {
			continue
		}
		field := strings.TrimSuffix(key, op)
		value := where[key]

		if cursor == nil {
			cursor = &Cursor{Direction: directionFor(op)}
		}
		if value != nil {
			if maps, ok := asMapList(value); ok {
				listPosition = maps
			} else {
				position[field] = value
			}
		}
		delete(remaining, key)
	}

	if cursor == nil {
		return nil, remaining
	}
	if listPosition != nil && len(position) == 0 {
		cursor.Position = listPosition
	} else {
		cursor.Position = position
	}
	return cursor, remaining
}

func directionFor(op string) CursorDirection {
	switch op {
	case "<", "<=":
		return Backward
	case "~":
		return Bothways
	default:
		return Forward
	}
}

// asMapList reports whether v is a non-empty list whose members are all
// field maps, converting it when so.
func asMapList(v any) ([]map[string]any, bool) {
	switch list := v.(type) {
	case []map[string]any:
		return list, len(list) > 0
	case []any:
		if len(list) == 0 {
			return nil, false
		}
		maps := make([]map[string]any, 0, len(list))
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			maps = append(maps, m)
		}
		return maps, true
	default:
		return nil, false
	}
}
