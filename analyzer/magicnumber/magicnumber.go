// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package magicnumber reports numeric literals that appear in function
// bodies without a named constant. Zero and one are allowed by
// default; further values can be allowed per invocation.
package magicnumber

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	name = "magicnumber"
	doc  = `magicnumber reports numeric literals that should be named constants

Literals inside const declarations, array lengths, and the values 0 and
1 are not reported. Additional values can be allowed with -allow.`
)

// New creates a magicnumber analyzer instance with its own flag set,
// so independent configurations can coexist in one process.
func New() *analysis.Analyzer {
	r := &runner{allowed: "0,1"}

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      "https://pkg.go.dev/github.com/petar-djukic/go-refactor/analyzer/magicnumber",
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
	a.Flags.StringVar(&r.allowed, "allow", r.allowed, "comma-separated literal values to allow")
	return a
}

// Analyzer is a pre-configured magicnumber instance.
var Analyzer = New()

type runner struct {
	allowed string
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	allowed := make(map[string]bool)
	for _, v := range strings.Split(r.allowed, ",") {
		if v = strings.TrimSpace(v); v != "" {
			allowed[v] = true
		}
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.BasicLit)(nil)}
	ins.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return false
		}
		lit := n.(*ast.BasicLit)
		if lit.Kind != token.INT && lit.Kind != token.FLOAT {
			return false
		}
		if allowed[lit.Value] || exemptContext(stack) {
			return false
		}

		pass.Reportf(lit.Pos(), "magic number %s; extract it into a named constant", lit.Value)
		return false
	})

	return nil, nil
}

// exemptContext reports whether the literal sits in a position where a
// bare number is conventional: a const declaration, an array length,
// or outside any function body.
func exemptContext(stack []ast.Node) bool {
	inFunc := false
	for _, n := range stack {
		switch e := n.(type) {
		case *ast.GenDecl:
			if e.Tok == token.CONST {
				return true
			}
		case *ast.ArrayType:
			return true
		case *ast.FuncDecl:
			inFunc = true
		}
	}
	return !inFunc
}
