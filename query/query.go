/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package query

// NavigationMode selects the pagination strategy for a query. The three
// modes are mutually exclusive and produce different wire payloads.
type NavigationMode string

const (
	// NavigationPage paginates by page index and page size.
	NavigationPage NavigationMode = "page"

	// NavigationOffset paginates by offset and limit.
	NavigationOffset NavigationMode = "offset"

	// NavigationPosition paginates by cursor position and direction.
	NavigationPosition NavigationMode = "position"
)

// NullPolicy controls where null values sort within a term.
type NullPolicy string

const (
	NullsDefault NullPolicy = "default"
	NullsFirst   NullPolicy = "first"
	NullsLast    NullPolicy = "last"
)

// SortOrder is one sort term: field, direction and null placement.
type SortOrder struct {
	Field      string
	Descending bool
	NullPolicy NullPolicy
}

// Expansion selects which hierarchy levels a query expands into.
type Expansion string

const (
	ExpansionNone   Expansion = "none"
	ExpansionNodes  Expansion = "nodes"
	ExpansionLeaves Expansion = "leaves"
	ExpansionAll    Expansion = "all"
)

// Metadata keys interpreted by the source layer. Everything else in Meta is
// passed through untouched.
const (
	// MetaNavigationMode overrides the source-level navigation mode for one
	// sub-query.
	MetaNavigationMode = "navigationMode"

	// MetaHasMore explicitly sets the has-more flag of the navigation payload.
	MetaHasMore = "hasMore"

	// MetaExpansion requests hierarchy expansion; value is an Expansion.
	MetaExpansion = "expansion"

	// MetaPosition hints where a moved target lands relative to the
	// destination: "before", "after" or "on".
	MetaPosition = "position"
)

// Where is a filter expression tree: field (optionally carrying a trailing
// comparison operator) to value, where a value may itself be a nested Where.
type Where map[string]any

// Flatten collapses nested sub-expressions into a single field-to-value map.
// The receiver is not modified.
func (w Where) Flatten() Where {
	flat := make(Where, len(w))
	w.flattenInto(flat)
	return flat
}

func (w Where) flattenInto(dst Where) {
	for k, v := range w {
		switch sub := v.(type) {
		case Where:
			sub.flattenInto(dst)
		case map[string]any:
			Where(sub).flattenInto(dst)
		default:
			dst[k] = v
		}
	}
}

// PrimaryKey tags a filter value as a primary-key value. Multi-section
// navigation uses the first tagged entry of each section as the section id.
type PrimaryKey struct {
	Value any
}

// PK wraps a value as a PrimaryKey tag.
func PK(v any) PrimaryKey {
	return PrimaryKey{Value: v}
}

// Query describes one abstract read: filter, order, slice and metadata.
// Where holds either a Where map or an opaque structured record that the
// source passes through unchanged. Union lists further sub-queries of the
// same shape whose results the service combines.
type Query struct {
	Where   any
	OrderBy []SortOrder
	Offset  int
	Limit   *int
	Meta    map[string]any
	Union   []*Query
	Select  any
}

// New returns an empty query.
func New() *Query {
	return &Query{}
}

// Int returns a pointer to n, for use as a query limit.
func Int(n int) *int {
	return &n
}

// Mode resolves the navigation mode for this sub-query: explicit metadata
// wins over the source-level default.
func (q *Query) Mode(fallback NavigationMode) NavigationMode {
	if q.Meta != nil {
		if m, ok := q.Meta[MetaNavigationMode].(NavigationMode); ok {
			return m
		}
		if s, ok := q.Meta[MetaNavigationMode].(string); ok {
			return NavigationMode(s)
		}
	}
	return fallback
}

// HasMore resolves the has-more flag: the explicit metadata flag if present,
// otherwise whether the offset is non-negative.
func (q *Query) HasMore() bool {
	if q.Meta != nil {
		if b, ok := q.Meta[MetaHasMore].(bool); ok {
			return b
		}
	}
	return q.Offset >= 0
}

// Sections returns the query followed by every transitively unioned
// sub-query, in declaration order.
func (q *Query) Sections() []*Query {
	sections := []*Query{q}
	for _, u := range q.Union {
		sections = append(sections, u.Sections()...)
	}
	return sections
}
