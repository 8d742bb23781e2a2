// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ast provides parsing, formatting, and declaration-level
// helpers over Go compilation units for the refactoring engine.
package ast

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// ParseSource parses a complete compilation unit from source text.
// The filename is used only for positions and error messages.
func ParseSource(fset *token.FileSet, filename, src string) (*ast.File, error) {
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return file, nil
}

// ParseTypeExpr parses a Go type expression string into an ast.Expr by
// wrapping it in a var declaration.
func ParseTypeExpr(fset *token.FileSet, typeStr string) (ast.Expr, error) {
	src := "package _\nvar _ " + typeStr
	f, err := parser.ParseFile(fset, "", src, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing type %q: %w", typeStr, err)
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				return vs.Type, nil
			}
		}
	}

	return nil, fmt.Errorf("failed to parse type expression: %s", typeStr)
}

// ParseFuncDecl parses the source text of a single function or method
// declaration. The declaration gets fresh positions within fset, so it
// can be appended to any file parsed with the same fset.
func ParseFuncDecl(fset *token.FileSet, funcSource string) (*ast.FuncDecl, error) {
	wrapped := "package _\n\n" + funcSource
	parsed, err := parser.ParseFile(fset, "", wrapped, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing function source: %w", err)
	}

	for _, decl := range parsed.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			return fd, nil
		}
	}

	return nil, fmt.Errorf("no function declaration in source")
}

// NewCommentMap builds an ast.CommentMap that tracks comment attachment
// before any mutation, so comments can be re-filtered afterward.
func NewCommentMap(fset *token.FileSet, file *ast.File) ast.CommentMap {
	return ast.NewCommentMap(fset, file, file.Comments)
}
