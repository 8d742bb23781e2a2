// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

// ExtractSymbols extracts function, method, struct, and interface
// symbols from a parsed Go file. Each symbol carries its name,
// position, and a human-readable signature.
func ExtractSymbols(fset *token.FileSet, filePath string, file *ast.File) []types.Symbol {
	var symbols []types.Symbol

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			pos := fset.Position(d.Pos())
			kind := types.Function
			if d.Recv != nil {
				kind = types.Method
			}
			symbols = append(symbols, types.Symbol{
				Name:      d.Name.Name,
				Receiver:  ReceiverTypeName(d),
				Kind:      kind,
				FilePath:  filePath,
				Line:      pos.Line,
				Column:    pos.Column,
				Signature: FuncSignature(d),
			})
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				kind := types.Struct
				if _, isIface := ts.Type.(*ast.InterfaceType); isIface {
					kind = types.Interface
				}
				pos := fset.Position(ts.Pos())
				symbols = append(symbols, types.Symbol{
					Name:     ts.Name.Name,
					Kind:     kind,
					FilePath: filePath,
					Line:     pos.Line,
					Column:   pos.Column,
				})
			}
		}
	}

	return symbols
}

// FuncSignature builds a human-readable signature string for a function
// or method declaration.
func FuncSignature(fn *ast.FuncDecl) string {
	var b strings.Builder
	b.WriteString("func")

	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		b.WriteString("(")
		b.WriteString(ExprString(fn.Recv.List[0].Type))
		b.WriteString(") ")
	} else {
		b.WriteString(" ")
	}

	b.WriteString(fn.Name.Name)
	b.WriteString("(")
	b.WriteString(fieldListString(fn.Type.Params))
	b.WriteString(")")

	if fn.Type.Results != nil && len(fn.Type.Results.List) > 0 {
		results := fieldListString(fn.Type.Results)
		if len(fn.Type.Results.List) == 1 && len(fn.Type.Results.List[0].Names) == 0 {
			b.WriteString(" ")
			b.WriteString(results)
		} else {
			b.WriteString(" (")
			b.WriteString(results)
			b.WriteString(")")
		}
	}

	return b.String()
}

// fieldListString renders a field list as a comma-separated string.
func fieldListString(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	var parts []string
	for _, field := range fl.List {
		typeStr := ExprString(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typeStr)
		} else {
			for _, name := range field.Names {
				parts = append(parts, name.Name+" "+typeStr)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// ExprString renders an AST expression as a string.
func ExprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return ExprString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + ExprString(e.X)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + ExprString(e.Elt)
		}
		return "[" + ExprString(e.Len) + "]" + ExprString(e.Elt)
	case *ast.MapType:
		return "map[" + ExprString(e.Key) + "]" + ExprString(e.Value)
	case *ast.FuncType:
		sig := "func(" + fieldListString(e.Params) + ")"
		if e.Results != nil && len(e.Results.List) > 0 {
			sig += " (" + fieldListString(e.Results) + ")"
		}
		return sig
	case *ast.Ellipsis:
		return "..." + ExprString(e.Elt)
	case *ast.BasicLit:
		return e.Value
	case *ast.ParenExpr:
		return "(" + ExprString(e.X) + ")"
	case *ast.IndexExpr:
		return ExprString(e.X) + "[" + ExprString(e.Index) + "]"
	case *ast.IndexListExpr:
		parts := make([]string, len(e.Indices))
		for i, idx := range e.Indices {
			parts[i] = ExprString(idx)
		}
		return ExprString(e.X) + "[" + strings.Join(parts, ", ") + "]"
	case *ast.ChanType:
		switch e.Dir {
		case ast.SEND:
			return "chan<- " + ExprString(e.Value)
		case ast.RECV:
			return "<-chan " + ExprString(e.Value)
		default:
			return "chan " + ExprString(e.Value)
		}
	case *ast.InterfaceType:
		if e.Methods == nil || len(e.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{...}"
	case *ast.StructType:
		if e.Fields == nil || len(e.Fields.List) == 0 {
			return "struct{}"
		}
		return "struct{...}"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
