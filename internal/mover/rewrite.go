// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mover

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
)

// rewriteMethod produces the moved form of the method in place:
// receiver-qualified references to stay-behind fields become plain
// parameter references, calls to already-moved batch-mates gain the
// mates' appended arguments, the parameter list grows by the
// stay-behind fields, and the receiver rebinds to the destination
// type. With named false the receiver loses its identifier; that is
// the static form.
func rewriteMethod(fset *token.FileSet, fn *ast.FuncDecl, a *analysis, targetType string, named bool) *ast.FuncDecl {
	recv := astx.ReceiverName(fn)

	astutil.Apply(fn.Body, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			if id, ok := n.X.(*ast.Ident); ok && id.Name == recv && a.hasParam(n.Sel.Name) {
				c.Replace(ast.NewIdent(n.Sel.Name))
				return false
			}
		case *ast.CallExpr:
			if sel, ok := n.Fun.(*ast.SelectorExpr); ok {
				if id, ok := sel.X.(*ast.Ident); ok && id.Name == recv {
					if params, ok := a.mateCalls[sel.Sel.Name]; ok {
						for _, p := range params {
							n.Args = append(n.Args, ast.NewIdent(p))
						}
					}
				}
			}
		}
		return true
	}, nil)

	for _, p := range a.params {
		typ, err := astx.ParseTypeExpr(fset, p.typeStr)
		if err != nil {
			// The type text came from a parsed tree; re-parsing it
			// cannot fail for valid input. Fall back to an identifier.
			typ = ast.NewIdent(p.typeStr)
		}
		fn.Type.Params.List = append(fn.Type.Params.List, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(p.name)},
			Type:  typ,
		})
	}

	rebindReceiver(fn, targetType, named)
	return fn
}

// rebindReceiver swaps the method's receiver type for the destination
// type. With named true pointerness carries over. With named false the
// receiver keeps neither identifier nor pointer, which is the static
// form: call sites use a Target{} literal, and a pointer receiver on a
// non-addressable literal would not compile.
func rebindReceiver(fn *ast.FuncDecl, targetType string, named bool) *ast.FuncDecl {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn
	}

	field := fn.Recv.List[0]
	var typ ast.Expr = ast.NewIdent(targetType)
	if _, isPtr := field.Type.(*ast.StarExpr); isPtr && named {
		typ = &ast.StarExpr{X: ast.NewIdent(targetType)}
	}
	field.Type = typ
	if !named {
		field.Names = nil
	}
	return fn
}
