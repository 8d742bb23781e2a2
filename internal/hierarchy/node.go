// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package hierarchy

import (
	"go/ast"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
)

// node is the uniform view of a type declaration the traversal walks
// over. Structs and interfaces expose their base references and member
// names the same way, so the walk loop never switches on declaration
// kind.
type node interface {
	// baseRefs returns the type expressions this declaration embeds.
	baseRefs() []ast.Expr
	// collect accumulates this declaration's own member names of the
	// requested kind into the set.
	collect(kind Kind, idx *Index, into NameSet)
}

// structNode wraps a struct type declaration.
type structNode struct {
	spec *ast.TypeSpec
	st   *ast.StructType
}

func (n structNode) baseRefs() []ast.Expr {
	if n.st.Fields == nil {
		return nil
	}
	var refs []ast.Expr
	for _, field := range n.st.Fields.List {
		if len(field.Names) == 0 {
			refs = append(refs, field.Type)
		}
	}
	return refs
}

func (n structNode) collect(kind Kind, idx *Index, into NameSet) {
	switch kind {
	case InstanceMembers:
		if n.st.Fields != nil {
			for _, field := range n.st.Fields.List {
				for _, name := range field.Names {
					into.Add(name.Name)
				}
				// An embedded type is itself addressable as a member by
				// its simple name.
				if len(field.Names) == 0 {
					if base := astx.BaseTypeName(field.Type); base != "" {
						into.Add(base)
					}
				}
			}
		}
		for _, m := range idx.methods[n.spec.Name.Name] {
			into.Add(m.Name.Name)
		}
	case MethodNames:
		for _, m := range idx.methods[n.spec.Name.Name] {
			into.Add(m.Name.Name)
		}
	case StaticFields:
		// Static names never come from the hierarchy; Resolve handles
		// them without traversal.
	}
}

// ifaceNode wraps an interface type declaration.
type ifaceNode struct {
	spec *ast.TypeSpec
	it   *ast.InterfaceType
}

func (n ifaceNode) baseRefs() []ast.Expr {
	if n.it.Methods == nil {
		return nil
	}
	var refs []ast.Expr
	for _, m := range n.it.Methods.List {
		if len(m.Names) == 0 {
			refs = append(refs, m.Type)
		}
	}
	return refs
}

func (n ifaceNode) collect(kind Kind, _ *Index, into NameSet) {
	if n.it.Methods == nil {
		return
	}
	switch kind {
	case InstanceMembers, MethodNames:
		for _, m := range n.it.Methods.List {
			for _, name := range m.Names {
				into.Add(name.Name)
			}
		}
	case StaticFields:
	}
}
