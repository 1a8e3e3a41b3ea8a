/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package record

import "encoding/json"

// Record is an ordered field-to-value map with change tracking. Fields keep
// their first-set order, which is also the order of Raw and Changed output.
type Record struct {
	order   []string
	values  map[string]any
	changed map[string]struct{}
}

// New returns an empty record with no tracked changes.
func New() *Record {
	return &Record{
		values:  make(map[string]any),
		changed: make(map[string]struct{}),
	}
}

// FromMap builds a record in loaded state: values are present but not
// marked changed. Field order is lexically sorted for determinism.
func FromMap(m map[string]any) *Record {
	r := New()
	for _, k := range sortedKeys(m) {
		r.order = append(r.order, k)
		r.values[k] = m[k]
	}
	return r
}

// Set assigns a field value and marks the field changed.
func (r *Record) Set(field string, value any) {
	if _, exists := r.values[field]; !exists {
		r.order = append(r.order, field)
	}
	r.values[field] = value
	r.changed[field] = struct{}{}
}

// Get returns the field value and whether the field exists.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the field exists.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Changed returns the changed field names in insertion order.
func (r *Record) Changed() []string {
	out := make([]string, 0, len(r.changed))
	for _, f := range r.order {
		if _, ok := r.changed[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// IsChanged reports whether the record has any tracked change.
func (r *Record) IsChanged() bool {
	return len(r.changed) > 0
}

// AcceptChanges clears the change tracking state.
func (r *Record) AcceptChanges() {
	r.changed = make(map[string]struct{})
}

// Raw returns the record as a plain map.
func (r *Record) Raw() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy, change tracking included.
func (r *Record) Clone() *Record {
	c := New()
	c.order = append(c.order, r.order...)
	for k, v := range r.values {
		c.values[k] = v
	}
	for k := range r.changed {
		c.changed[k] = struct{}{}
	}
	return c
}

// MarshalJSON serializes the record as a plain object.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}

// Project returns a plain map holding only the named fields, skipping ones
// the record does not carry.
func (r *Record) Project(fields ...string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := r.values[f]; ok {
			out[f] = v
		}
	}
	return out
}
