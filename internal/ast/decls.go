// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"go/ast"
	"go/token"
)

// BaseTypeName extracts the simple name of a type reference expression:
// a plain identifier, the right part of a qualified name, the base
// identifier of a generic instantiation, or any of those behind a
// pointer. Returns "" for anything else.
func BaseTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.StarExpr:
		return BaseTypeName(e.X)
	case *ast.IndexExpr:
		return BaseTypeName(e.X)
	case *ast.IndexListExpr:
		return BaseTypeName(e.X)
	default:
		return ""
	}
}

// ReceiverTypeName returns the simple name of a method's receiver type,
// or "" for plain functions.
func ReceiverTypeName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	return BaseTypeName(fn.Recv.List[0].Type)
}

// ReceiverName returns the receiver identifier of a method, or "" when
// the method has an unnamed receiver or is a plain function.
func ReceiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	names := fn.Recv.List[0].Names
	if len(names) == 0 || names[0].Name == "_" {
		return ""
	}
	return names[0].Name
}

// FindStruct locates a struct type declaration by name. Returns the
// type spec and its struct type, or nils when absent.
func FindStruct(file *ast.File, name string) (*ast.TypeSpec, *ast.StructType) {
	ts := findTypeSpec(file, name)
	if ts == nil {
		return nil, nil
	}
	if st, ok := ts.Type.(*ast.StructType); ok {
		return ts, st
	}
	return nil, nil
}

// FindInterface locates an interface type declaration by name.
func FindInterface(file *ast.File, name string) (*ast.TypeSpec, *ast.InterfaceType) {
	ts := findTypeSpec(file, name)
	if ts == nil {
		return nil, nil
	}
	if it, ok := ts.Type.(*ast.InterfaceType); ok {
		return ts, it
	}
	return nil, nil
}

// FindMethod locates a method declaration by receiver type and name.
func FindMethod(file *ast.File, typeName, methodName string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if ok && fd.Name.Name == methodName && ReceiverTypeName(fd) == typeName {
			return fd
		}
	}
	return nil
}

// FindMethodAnyReceiver locates the first method declaration with the
// given name regardless of receiver type.
func FindMethodAnyReceiver(file *ast.File, methodName string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if ok && fd.Recv != nil && fd.Name.Name == methodName {
			return fd
		}
	}
	return nil
}

// MethodsOf returns every method declared on the named type, in source
// order.
func MethodsOf(file *ast.File, typeName string) []*ast.FuncDecl {
	var methods []*ast.FuncDecl
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && ReceiverTypeName(fd) == typeName {
			methods = append(methods, fd)
		}
	}
	return methods
}

// RemoveDecl removes a top-level declaration from the file. Returns
// false when the declaration is not present.
func RemoveDecl(file *ast.File, target ast.Decl) bool {
	for i, decl := range file.Decls {
		if decl == target {
			file.Decls = append(file.Decls[:i], file.Decls[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCommentGroup removes a specific comment group from the file's
// Comments slice.
func RemoveCommentGroup(file *ast.File, cg *ast.CommentGroup) {
	for i, c := range file.Comments {
		if c == cg {
			file.Comments = append(file.Comments[:i], file.Comments[i+1:]...)
			return
		}
	}
}

// findTypeSpec locates a type spec by name among the file's type
// declarations.
func findTypeSpec(file *ast.File, name string) *ast.TypeSpec {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == name {
				return ts
			}
		}
	}
	return nil
}
