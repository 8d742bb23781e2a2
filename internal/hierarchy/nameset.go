// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package hierarchy

import "sort"

// NameSet is a set of identifiers of one kind (instance members,
// method names, static names) known for a type, including inherited
// ones. Once resolved it is the complete closure reachable through the
// embedding graph, with no duplicates.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains name.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s NameSet) Len() int {
	return len(s)
}

// Names returns the set contents in sorted order.
func (s NameSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
