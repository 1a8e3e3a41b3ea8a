/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package bls

import (
	"sort"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
	"github.com/meridianapps/rpcsource/source"
)

// sectionState carries one sub-query through argument construction. The
// filter starts as a flattened copy (or the caller's opaque record) and
// loses entries consumed by cursor extraction and section-id lookup; the
// caller's query is never touched.
type sectionState struct {
	sec    *query.Query
	filter any // query.Where or *record.Record
	nav    map[string]any
}

// buildQueryArgs converts a query and its unioned sub-queries into the
// service's List argument shape: Filter, Sorting, Navigation,
// AdditionalFields.
func (s *Source) buildQueryArgs(q *query.Query) (source.Args, error) {
	sections := q.Sections()

	states := make([]*sectionState, 0, len(sections))
	for _, sec := range sections {
		st := &sectionState{sec: sec}

		switch w := sec.Where.(type) {
		case nil:
			st.filter = query.Where{}
		case *record.Record:
			st.filter = w
		case query.Where:
			st.filter = w.Flatten()
		case map[string]any:
			st.filter = query.Where(w).Flatten()
		default:
			return nil, errors.NewShapeError("query", sec.Where)
		}

		nav, err := s.sectionNavigation(sec, st)
		if err != nil {
			return nil, err
		}
		st.nav = nav

		if err := applyExpansion(sec, st); err != nil {
			return nil, err
		}
		states = append(states, st)
	}

	navigation := resolveNavigation(states)

	sorting := flattenSorting(sections)

	additional, err := flattenAdditional(sections)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"Filter":           mergeFilters(states),
		"Sorting":          sorting,
		"Navigation":       navigation,
		"AdditionalFields": additional,
	}, nil
}

// sectionNavigation derives one sub-query's navigation payload. Page and
// offset modes are suppressed entirely for an unsliced query; position mode
// applies only when a limit is set and consumes cursor operands out of the
// section filter.
func (s *Source) sectionNavigation(sec *query.Query, st *sectionState) (map[string]any, error) {
	switch mode := sec.Mode(s.navigationMode); mode {
	case query.NavigationPage:
		if sec.Offset == 0 && sec.Limit == nil {
			return nil, nil
		}
		page := 0
		if sec.Limit != nil && *sec.Limit > 0 {
			page = sec.Offset / *sec.Limit
		}
		return map[string]any{
			"Page":     page,
			"PageSize": limitValue(sec),
			"HasMore":  sec.HasMore(),
		}, nil

	case query.NavigationOffset:
		if sec.Offset == 0 && sec.Limit == nil {
			return nil, nil
		}
		return map[string]any{
			"Offset":  sec.Offset,
			"Limit":   limitValue(sec),
			"HasMore": sec.HasMore(),
		}, nil

	case query.NavigationPosition:
		if sec.Limit == nil {
			return nil, nil
		}
		nav := map[string]any{
			"HasMore":   sec.HasMore(),
			"Limit":     *sec.Limit,
			"Direction": string(query.Forward),
			"Position":  record.New(),
		}
		if w, ok := st.filter.(query.Where); ok {
			cursor, remaining := query.ExtractCursor(w)
			st.filter = remaining
			if cursor != nil {
				nav["Direction"] = string(cursor.Direction)
				switch pos := cursor.Position.(type) {
				case map[string]any:
					nav["Position"] = record.FromMap(pos)
				case []map[string]any:
					items := make([]*record.Record, len(pos))
					for i, m := range pos {
						items[i] = record.FromMap(m)
					}
					nav["Position"] = record.NewSet(items...)
				}
			}
		}
		return nav, nil

	default:
		return nil, errors.NewArgumentError("query", "unknown navigation mode "+string(mode))
	}
}

// resolveNavigation picks the wire payload: the single section's payload,
// or, when several sections navigate, an ordered list of
// {SectionId, Navigation} pairs. The section id is the first filter entry
// tagged as a primary-key value, consumed from that section's filter.
func resolveNavigation(states []*sectionState) any {
	active := 0
	var single map[string]any
	for _, st := range states {
		if st.nav != nil {
			active++
			single = st.nav
		}
	}

	switch active {
	case 0:
		return nil
	case 1:
		return single
	}

	list := make([]map[string]any, 0, active)
	for _, st := range states {
		if st.nav == nil {
			continue
		}
		list = append(list, map[string]any{
			"SectionId":  takeSectionID(st),
			"Navigation": st.nav,
		})
	}
	return list
}

func takeSectionID(st *sectionState) any {
	w, ok := st.filter.(query.Where)
	if !ok {
		return nil
	}
	for _, k := range sortedWhereKeys(w) {
		if pk, ok := w[k].(query.PrimaryKey); ok {
			delete(w, k)
			return pk.Value
		}
	}
	return nil
}

// applyExpansion maps the four hierarchy-expansion variants onto the two
// wire-level control fields of the section filter.
func applyExpansion(sec *query.Query, st *sectionState) error {
	if sec.Meta == nil {
		return nil
	}
	raw, present := sec.Meta[query.MetaExpansion]
	if !present {
		return nil
	}

	var exp query.Expansion
	switch v := raw.(type) {
	case query.Expansion:
		exp = v
	case string:
		exp = query.Expansion(v)
	default:
		return errors.NewShapeError("query", raw)
	}

	expansion, viewMode := "Deep", "All"
	switch exp {
	case query.ExpansionNone:
		expansion = "None"
	case query.ExpansionNodes:
		viewMode = "Nodes"
	case query.ExpansionLeaves:
		viewMode = "Leaves"
	case query.ExpansionAll:
	default:
		return errors.NewArgumentError("query", "unknown expansion "+string(exp))
	}

	switch f := st.filter.(type) {
	case query.Where:
		f["Expansion"] = expansion
		f["ViewMode"] = viewMode
	case *record.Record:
		clone := f.Clone()
		clone.Set("Expansion", expansion)
		clone.Set("ViewMode", viewMode)
		st.filter = clone
	}
	return nil
}

// mergeFilters folds the per-section filters into one payload, preferring
// structured-record semantics whenever any side is a record.
func mergeFilters(states []*sectionState) any {
	if len(states) == 1 {
		return unwrapFilter(states[0].filter)
	}

	anyRecord := false
	for _, st := range states {
		if _, ok := st.filter.(*record.Record); ok {
			anyRecord = true
			break
		}
	}

	if anyRecord {
		merged := record.New()
		for _, st := range states {
			switch f := st.filter.(type) {
			case *record.Record:
				for _, field := range f.Fields() {
					v, _ := f.Get(field)
					merged.Set(field, v)
				}
			case query.Where:
				for _, k := range sortedWhereKeys(f) {
					merged.Set(k, unwrapPK(f[k]))
				}
			}
		}
		merged.AcceptChanges()
		return merged
	}

	merged := query.Where{}
	for _, st := range states {
		if f, ok := st.filter.(query.Where); ok {
			for k, v := range f {
				merged[k] = unwrapPK(v)
			}
		}
	}
	return merged
}

func unwrapFilter(filter any) any {
	w, ok := filter.(query.Where)
	if !ok {
		return filter
	}
	out := make(query.Where, len(w))
	for k, v := range w {
		out[k] = unwrapPK(v)
	}
	return out
}

func unwrapPK(v any) any {
	if pk, ok := v.(query.PrimaryKey); ok {
		return pk.Value
	}
	return v
}

// flattenSorting collects the sort terms of all sections into one ordered
// list of wire triples.
func flattenSorting(sections []*query.Query) []map[string]any {
	var out []map[string]any
	for _, sec := range sections {
		for _, term := range sec.OrderBy {
			direction := "asc"
			if term.Descending {
				direction = "desc"
			}
			policy := term.NullPolicy
			if policy == "" {
				policy = query.NullsDefault
			}
			out = append(out, map[string]any{
				"Field":      term.Field,
				"Direction":  direction,
				"NullPolicy": string(policy),
			})
		}
	}
	return out
}

// flattenAdditional folds the sections' select specs into a single ordered
// value list. A record flattens in field order, a plain map in sorted key
// order, a list as-is; anything else is a construction-time error.
func flattenAdditional(sections []*query.Query) ([]any, error) {
	var out []any
	for _, sec := range sections {
		if sec.Select == nil {
			continue
		}
		switch v := sec.Select.(type) {
		case []any:
			out = append(out, v...)
		case []string:
			for _, item := range v {
				out = append(out, item)
			}
		case *record.Record:
			for _, f := range v.Fields() {
				val, _ := v.Get(f)
				out = append(out, val)
			}
		case query.Where:
			for _, k := range sortedWhereKeys(v) {
				out = append(out, v[k])
			}
		case map[string]any:
			for _, k := range sortedWhereKeys(v) {
				out = append(out, v[k])
			}
		default:
			return nil, errors.NewShapeError("query", sec.Select)
		}
	}
	return out, nil
}

func limitValue(sec *query.Query) any {
	if sec.Limit == nil {
		return nil
	}
	return *sec.Limit
}

func sortedWhereKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
