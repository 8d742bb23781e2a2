// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package candidates scans a directory tree for methods that touch
// another struct's members more than their own and ranks them as
// move-method candidates. Ranking combines the per-method reference
// imbalance with a PageRank score of the destination type, so moves
// toward central types surface first.
package candidates

import (
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
)

const (
	longNameThreshold = 8
	longNameWeight    = 1.0
	shortNameWeight   = 0.5
	underscoreWeight  = 0.1
	commonThreshold   = 5
	commonFactor      = 0.1
)

// Edge is a directed edge in the type dependency graph: a method of
// From referenced a member of To.
type Edge struct {
	From   string  // type owning the referring method
	To     string  // type owning the referenced member
	Member string  // referenced member name
	Weight float64 // reference count scaled by identifier quality
}

// Graph is a directed multigraph over the struct types of a scanned
// tree. Edges aggregate cross-type member references.
type Graph struct {
	Nodes []string // all struct type names, sorted
	Edges []Edge
	decls map[string]hierarchy.NameSet // member name → types declaring it
}

// memberUse records one method body referencing one member of a type.
type memberUse struct {
	fromType string
	toType   string
	member   string
}

// buildGraph aggregates member uses into weighted edges. Member names
// declared on many types carry less signal and are downweighted, as
// are short or underscore-prefixed names.
func buildGraph(typeNames []string, members map[string]hierarchy.NameSet, uses []memberUse) *Graph {
	g := &Graph{
		Nodes: typeNames,
		decls: make(map[string]hierarchy.NameSet),
	}

	for typeName, set := range members {
		for _, m := range set.Names() {
			owners, ok := g.decls[m]
			if !ok {
				owners = hierarchy.NewNameSet()
				g.decls[m] = owners
			}
			owners.Add(typeName)
		}
	}

	type edgeKey struct {
		from, to, member string
	}
	counts := make(map[edgeKey]int)
	for _, u := range uses {
		if u.fromType == u.toType {
			continue
		}
		counts[edgeKey{from: u.fromType, to: u.toType, member: u.member}]++
	}

	for key, n := range counts {
		weight := float64(n) * identifierWeight(key.member) * g.commonWeight(key.member)
		g.Edges = append(g.Edges, Edge{
			From:   key.from,
			To:     key.to,
			Member: key.member,
			Weight: weight,
		})
	}

	return g
}

// identifierWeight scores a member name by length and prefix. Long
// names are unambiguous references; short ones collide often.
func identifierWeight(name string) float64 {
	if len(name) > 0 && name[0] == '_' {
		return underscoreWeight
	}
	if len(name) >= longNameThreshold {
		return longNameWeight
	}
	return shortNameWeight
}

// commonWeight reduces weight for members declared on many types.
func (g *Graph) commonWeight(name string) float64 {
	if owners, ok := g.decls[name]; ok && owners.Len() >= commonThreshold {
		return commonFactor
	}
	return 1.0
}
