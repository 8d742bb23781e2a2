// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package consolecall reports direct fmt.Print-family calls in library
// code, where output belongs on a logger or an injected writer.
package consolecall

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	name = "consolecall"
	doc  = `consolecall reports fmt.Print-family and builtin println calls

Library packages should write to a logger or an injected io.Writer
rather than straight to standard output. Package main is skipped
unless -include-main is set.`
)

// printFuncs are the fmt functions that write to standard output.
var printFuncs = map[string]bool{
	"Print":   true,
	"Println": true,
	"Printf":  true,
}

// builtinPrints are the predeclared print functions.
var builtinPrints = map[string]bool{
	"print":   true,
	"println": true,
}

// New creates a consolecall analyzer instance with its own flag set.
func New() *analysis.Analyzer {
	r := &runner{}

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      "https://pkg.go.dev/github.com/petar-djukic/go-refactor/analyzer/consolecall",
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
	a.Flags.BoolVar(&r.includeMain, "include-main", false, "also report calls in package main")
	return a
}

// Analyzer is a pre-configured consolecall instance.
var Analyzer = New()

type runner struct {
	includeMain bool
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() == "main" && !r.includeMain {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	ins.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			if builtinPrints[fun.Name] {
				pass.Reportf(call.Pos(), "direct console output via builtin %s; write to a logger instead", fun.Name)
			}
		case *ast.SelectorExpr:
			if !printFuncs[fun.Sel.Name] {
				return
			}
			pkg, ok := fun.X.(*ast.Ident)
			if !ok || pkg.Name != "fmt" {
				return
			}
			pass.Reportf(call.Pos(), "direct console output via fmt.%s; write to a logger instead", fun.Sel.Name)
		}
	})

	return nil, nil
}
