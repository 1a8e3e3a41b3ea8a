/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package record

import (
	"encoding/json"
	"sort"
)

// RecordSet is an ordered collection of records with mutation tracking:
// members added after construction, members with changed fields, and keys
// of removed members.
type RecordSet struct {
	items   []*Record
	added   map[*Record]struct{}
	removed []any
}

// NewSet builds a record set in loaded state; the given records are neither
// added nor changed.
func NewSet(items ...*Record) *RecordSet {
	return &RecordSet{
		items: append([]*Record(nil), items...),
		added: make(map[*Record]struct{}),
	}
}

// Add appends a record and tracks it as a new member.
func (s *RecordSet) Add(r *Record) {
	s.items = append(s.items, r)
	s.added[r] = struct{}{}
}

// Remove drops the first member whose keyProperty field equals key and
// tracks the key as removed. Returns whether a member was dropped.
func (s *RecordSet) Remove(keyProperty string, key any) bool {
	for i, r := range s.items {
		if v, ok := r.Get(keyProperty); ok && v == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if _, wasAdded := s.added[r]; wasAdded {
				// A member that never reached the server leaves no trace.
				delete(s.added, r)
			} else {
				s.removed = append(s.removed, key)
			}
			return true
		}
	}
	return false
}

// Len returns the member count.
func (s *RecordSet) Len() int {
	return len(s.items)
}

// At returns the member at index i.
func (s *RecordSet) At(i int) *Record {
	return s.items[i]
}

// Items returns the members in order.
func (s *RecordSet) Items() []*Record {
	out := make([]*Record, len(s.items))
	copy(out, s.items)
	return out
}

// Added returns members added since construction, in set order.
func (s *RecordSet) Added() []*Record {
	out := make([]*Record, 0, len(s.added))
	for _, r := range s.items {
		if _, ok := s.added[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Changed returns pre-existing members with changed fields, in set order.
func (s *RecordSet) Changed() []*Record {
	var out []*Record
	for _, r := range s.items {
		if _, isNew := s.added[r]; isNew {
			continue
		}
		if r.IsChanged() {
			out = append(out, r)
		}
	}
	return out
}

// RemovedKeys returns the keys of removed members in removal order.
func (s *RecordSet) RemovedKeys() []any {
	out := make([]any, len(s.removed))
	copy(out, s.removed)
	return out
}

// AcceptChanges clears all mutation tracking, members included.
func (s *RecordSet) AcceptChanges() {
	s.added = make(map[*Record]struct{})
	s.removed = nil
	for _, r := range s.items {
		r.AcceptChanges()
	}
}

// Raw returns the members as plain maps, in order.
func (s *RecordSet) Raw() []map[string]any {
	out := make([]map[string]any, len(s.items))
	for i, r := range s.items {
		out[i] = r.Raw()
	}
	return out
}

// MarshalJSON serializes the set as a plain array of objects.
func (s *RecordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
