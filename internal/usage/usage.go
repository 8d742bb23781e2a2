// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package usage answers questions about what a single method body
// touches: receiver members, known methods, package-level state. Each
// function is a single-purpose walk, so callers compose exactly the
// checks they need without re-walking the tree for unrelated
// information. All walkers are stateless aside from accumulated
// results and safe to run once per method.
package usage

import (
	"go/ast"
	"go/token"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
)

// HasInstanceMemberUsage reports whether the method body references,
// through its receiver, any name in known. Short-circuits on the first
// match. Methods with an unnamed receiver cannot reference instance
// state and always yield false.
func HasInstanceMemberUsage(fn *ast.FuncDecl, known hierarchy.NameSet) bool {
	recv := astx.ReceiverName(fn)
	if recv == "" || fn.Body == nil {
		return false
	}

	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if found {
			return false
		}
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && id.Name == recv && known.Has(sel.Sel.Name) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// HasMethodCalls reports whether any invocation in the method body
// targets a name in known, either as a receiver-qualified call or a
// bare call. Short-circuits on the first match.
func HasMethodCalls(fn *ast.FuncDecl, known hierarchy.NameSet) bool {
	if fn.Body == nil {
		return false
	}
	recv := astx.ReceiverName(fn)

	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if found {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			if known.Has(fun.Name) {
				found = true
			}
		case *ast.SelectorExpr:
			if id, ok := fun.X.(*ast.Ident); ok && id.Name == recv && known.Has(fun.Sel.Name) {
				found = true
			}
		}
		return !found
	})
	return found
}

// HasStaticFieldReferences reports whether the method body references
// any unqualified identifier in known, the package-level var names of
// the compilation unit. Identifiers on the right of a selector are not
// unqualified and do not count.
func HasStaticFieldReferences(fn *ast.FuncDecl, known hierarchy.NameSet) bool {
	if fn.Body == nil {
		return false
	}

	found := false
	var walk func(n ast.Node) bool
	walk = func(n ast.Node) bool {
		if found {
			return false
		}
		switch e := n.(type) {
		case *ast.SelectorExpr:
			// Only the qualifier side can hold an unqualified reference.
			ast.Inspect(e.X, walk)
			return false
		case *ast.Ident:
			if known.Has(e.Name) {
				found = true
			}
		}
		return true
	}
	ast.Inspect(fn.Body, walk)
	return found
}

// UsedPrivateFields collects every name from known that the method body
// touches through its receiver. Unlike the boolean predicates this is a
// full collection, not short-circuited, because the mover needs the
// complete set to build the moved method's parameter list.
func UsedPrivateFields(fn *ast.FuncDecl, known hierarchy.NameSet) hierarchy.NameSet {
	result := make(hierarchy.NameSet)
	recv := astx.ReceiverName(fn)
	if recv == "" || fn.Body == nil {
		return result
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && id.Name == recv && known.Has(sel.Sel.Name) {
				result.Add(sel.Sel.Name)
			}
		}
		return true
	})
	return result
}

// MutatedInstanceMembers collects every member name the method body
// writes through its receiver: assignment targets, inc/dec operands,
// and members whose address is taken. A member that only appears on
// the right-hand side of expressions is not collected.
func MutatedInstanceMembers(fn *ast.FuncDecl) hierarchy.NameSet {
	result := make(hierarchy.NameSet)
	recv := astx.ReceiverName(fn)
	if recv == "" || fn.Body == nil {
		return result
	}

	record := func(e ast.Expr) {
		if sel, ok := e.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && id.Name == recv {
				result.Add(sel.Sel.Name)
			}
		}
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch s := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range s.Lhs {
				record(lhs)
			}
		case *ast.IncDecStmt:
			record(s.X)
		case *ast.UnaryExpr:
			if s.Op == token.AND {
				record(s.X)
			}
		}
		return true
	})
	return result
}

// ImplicitInstanceMembers collects every member name the method body
// reaches through its receiver, with no prior knowledge of the
// receiver type's member set.
func ImplicitInstanceMembers(fn *ast.FuncDecl) hierarchy.NameSet {
	result := make(hierarchy.NameSet)
	recv := astx.ReceiverName(fn)
	if recv == "" || fn.Body == nil {
		return result
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && id.Name == recv {
				result.Add(sel.Sel.Name)
			}
		}
		return true
	})
	return result
}
