/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package bls

import (
	"fmt"
	"regexp"
	"strings"
)

// complexIDPattern recognizes a composite identifier: a numeric key and an
// owning object name joined by a comma.
var complexIDPattern = regexp.MustCompile(`^[0-9]+,[A-Za-z0-9]+$`)

// ComplexID is a textual identifier optionally carrying the name of the
// object that owns it. The object name decides which remote contract
// receives a destroy or move sub-call.
type ComplexID struct {
	Key        string
	ObjectName string

	composite bool
}

// ParseComplexID splits a composite identifier into key and object name.
// A plain identifier keeps the whole text as key and takes the supplied
// default object name.
func ParseComplexID(id, defaultObject string) ComplexID {
	if complexIDPattern.MatchString(id) {
		i := strings.IndexByte(id, ',')
		return ComplexID{Key: id[:i], ObjectName: id[i+1:], composite: true}
	}
	return ComplexID{Key: id, ObjectName: defaultObject}
}

// IsComposite reports whether the identifier was parsed from the composite
// wire form.
func (c ComplexID) IsComposite() bool {
	return c.composite
}

// Pair returns the key and object name as a two-element list.
func (c ComplexID) Pair() []string {
	return []string{c.Key, c.ObjectName}
}

// String serializes back to the wire form: "<key>,<objectName>" for a
// composite identifier, the bare key otherwise.
func (c ComplexID) String() string {
	if c.composite {
		return c.Key + "," + c.ObjectName
	}
	return c.Key
}

// Group is a batch of plain keys sharing an object name, dispatched as one
// remote call.
type Group struct {
	ObjectName string
	Keys       []string
}

// GroupByObject partitions identifiers by owning object name, preserving
// first-seen insertion order per group and across groups. Plain identifiers
// fall into the default group.
func GroupByObject(ids []any, defaultObject string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, raw := range ids {
		c := ParseComplexID(fmt.Sprint(raw), defaultObject)
		if i, ok := index[c.ObjectName]; ok {
			groups[i].Keys = append(groups[i].Keys, c.Key)
			continue
		}
		index[c.ObjectName] = len(groups)
		groups = append(groups, Group{ObjectName: c.ObjectName, Keys: []string{c.Key}})
	}
	return groups
}
