// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mover

import (
	"fmt"
	"go/ast"
	"sort"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
	"github.com/petar-djukic/go-refactor/internal/usage"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// fieldParam is a stay-behind field that becomes a parameter of the
// moved method. The type is carried as rendered source text so the
// parameter gets fresh AST nodes instead of sharing the struct field's.
type fieldParam struct {
	name    string
	typeStr string
}

// analysis is the outcome of the analyze phase for one method.
type analysis struct {
	params    []fieldParam        // stay-behind fields, sorted by name
	mateCalls map[string][]string // called batch-mate -> its appended parameters
}

// paramNames returns the parameter names in order.
func (a *analysis) paramNames() []string {
	names := make([]string, len(a.params))
	for i, p := range a.params {
		names[i] = p.name
	}
	return names
}

// analyzeMethod classifies every member the method reaches through its
// receiver. Fields of the source struct (own or inherited from an
// embedded struct) become parameters: the member stays, the moved
// method receives its value. A field the body writes cannot survive
// that by-value hand-off and fails the move. Calls to batch-mates
// already moved rebind
// with the receiver. Anything else still living on the source — a
// method staying behind, an interface member, a batch-mate that moves
// later — cannot be redirected and fails the move.
func analyzeMethod(idx *hierarchy.Index, fn *ast.FuncDecl, req types.MoveRequest, batch *batchState) (*analysis, error) {
	a := &analysis{mateCalls: make(map[string][]string)}

	members := usage.ImplicitInstanceMembers(fn)
	mutated := usage.MutatedInstanceMembers(fn)
	targetMethods := idx.Resolve(req.TargetType, hierarchy.MethodNames)

	for _, name := range members.Names() {
		if name == fn.Name.Name {
			// Recursive call; travels with the method.
			continue
		}
		if params, moved := batch.moved[name]; moved {
			a.mateCalls[name] = params
			continue
		}
		if targetMethods.Has(name) {
			// Already lives on the destination; the rebound receiver
			// covers it.
			continue
		}
		if typ := idx.FieldType(req.SourceType, name); typ != nil {
			if mutated.Has(name) {
				// The field becomes a by-value parameter, so a write
				// would vanish at the call site.
				return nil, fmt.Errorf("%w: %s writes to %s.%s, which stays behind",
					ErrUnsupportedMove, fn.Name.Name, req.SourceType, name)
			}
			a.params = append(a.params, fieldParam{name: name, typeStr: astx.ExprString(typ)})
			continue
		}
		if batch.all.Has(name) {
			return nil, fmt.Errorf("%w: %s calls batch-mate %s before it is moved; reorder the batch",
				ErrUnsupportedMove, fn.Name.Name, name)
		}
		return nil, fmt.Errorf("%w: %s depends on %s.%s, which stays behind",
			ErrUnsupportedMove, fn.Name.Name, req.SourceType, name)
	}

	// Parameters a batch-mate needs must be in scope at its call sites
	// inside this method, so they join this method's own parameters.
	for _, mateParams := range a.mateCalls {
		for _, p := range mateParams {
			if a.hasParam(p) {
				continue
			}
			if typ := idx.FieldType(req.SourceType, p); typ != nil {
				a.params = append(a.params, fieldParam{name: p, typeStr: astx.ExprString(typ)})
			}
		}
	}

	sort.Slice(a.params, func(i, j int) bool { return a.params[i].name < a.params[j].name })
	return a, nil
}

func (a *analysis) hasParam(name string) bool {
	for _, p := range a.params {
		if p.name == name {
			return true
		}
	}
	return false
}
