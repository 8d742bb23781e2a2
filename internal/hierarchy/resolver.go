// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package hierarchy computes the transitive closure of member names
// visible to a type through its embedding graph: embedded structs play
// the role of base classes, embedded interfaces the role of base
// interfaces. The traversal is breadth-first and cycle-safe.
package hierarchy

import (
	"go/ast"
	"go/token"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
)

// Kind selects which member names Resolve collects.
type Kind int

const (
	// InstanceMembers collects field and method names reachable on an
	// instance, including inherited ones.
	InstanceMembers Kind = iota
	// MethodNames collects method names only.
	MethodNames
	// StaticFields collects package-level var names of the compilation
	// unit. It never traverses the embedding graph.
	StaticFields
)

// Index pre-indexes every struct and interface declaration of one
// compilation unit by simple name, plus methods by receiver type.
// Build it once per file and resolve any number of times.
type Index struct {
	file    *ast.File
	structs map[string]structNode
	ifaces  map[string]ifaceNode
	methods map[string][]*ast.FuncDecl
}

// NewIndex builds the declaration index for a compilation unit.
func NewIndex(file *ast.File) *Index {
	idx := &Index{
		file:    file,
		structs: make(map[string]structNode),
		ifaces:  make(map[string]ifaceNode),
		methods: make(map[string][]*ast.FuncDecl),
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if recv := astx.ReceiverTypeName(d); recv != "" {
				idx.methods[recv] = append(idx.methods[recv], d)
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				switch t := ts.Type.(type) {
				case *ast.StructType:
					idx.structs[ts.Name.Name] = structNode{spec: ts, st: t}
				case *ast.InterfaceType:
					idx.ifaces[ts.Name.Name] = ifaceNode{spec: ts, it: t}
				}
			}
		}
	}

	return idx
}

// HasStruct reports whether the compilation unit declares a struct type
// with the given name.
func (idx *Index) HasStruct(name string) bool {
	_, ok := idx.structs[name]
	return ok
}

// StructNames returns the names of all struct types in the unit.
func (idx *Index) StructNames() NameSet {
	s := make(NameSet, len(idx.structs))
	for name := range idx.structs {
		s.Add(name)
	}
	return s
}

// Resolve computes the complete set of names of the given kind visible
// to the named type, walking embedded structs and interfaces
// breadth-first. A visited set seeded with the origin name guards
// against interface diamonds and self-referential declarations, so
// every declaration contributes exactly once. Embedded types with no
// declaration in the unit are skipped; they contribute no members.
// Resolve never fails: an unknown type yields an empty set.
func (idx *Index) Resolve(typeName string, kind Kind) NameSet {
	result := make(NameSet)

	if kind == StaticFields {
		// Intentional asymmetry: static names are the unit's own
		// package-level vars, with no hierarchy walk.
		idx.collectPackageVars(result)
		return result
	}

	visited := NewNameSet(typeName)
	queue := idx.nodesFor(typeName)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		n.collect(kind, idx, result)

		for _, ref := range n.baseRefs() {
			name := astx.BaseTypeName(ref)
			if name == "" || visited.Has(name) {
				continue
			}
			visited.Add(name)
			queue = append(queue, idx.nodesFor(name)...)
		}
	}

	return result
}

// nodesFor returns the declarations a simple name resolves to. A name
// may resolve to both a struct and an interface; both are traversed.
func (idx *Index) nodesFor(name string) []node {
	var nodes []node
	if sn, ok := idx.structs[name]; ok {
		nodes = append(nodes, sn)
	}
	if in, ok := idx.ifaces[name]; ok {
		nodes = append(nodes, in)
	}
	return nodes
}

// collectPackageVars accumulates package-level var names.
func (idx *Index) collectPackageVars(into NameSet) {
	for _, decl := range idx.file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				for _, name := range vs.Names {
					into.Add(name.Name)
				}
			}
		}
	}
}

// FieldType finds the declared type expression of a field visible on
// the named struct, searching the struct itself first and then its
// embedded struct ancestors breadth-first. Returns nil when no struct
// in the unit declares the field.
func (idx *Index) FieldType(typeName, fieldName string) ast.Expr {
	visited := NewNameSet(typeName)
	queue := []string{typeName}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		sn, ok := idx.structs[name]
		if !ok {
			continue
		}
		if sn.st.Fields != nil {
			for _, field := range sn.st.Fields.List {
				for _, n := range field.Names {
					if n.Name == fieldName {
						return field.Type
					}
				}
			}
		}
		for _, ref := range sn.baseRefs() {
			base := astx.BaseTypeName(ref)
			if base == "" || visited.Has(base) {
				continue
			}
			visited.Add(base)
			queue = append(queue, base)
		}
	}

	return nil
}
