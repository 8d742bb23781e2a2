// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mover relocates methods between struct types within one
// compilation unit. A move runs in three phases per method: analyze
// (which members does the body touch), rewrite (stay-behind fields
// become parameters, the receiver rebinds to the destination type),
// and splice (remove the declaration, ensure the access member,
// redirect call sites, insert the rewritten declaration).
//
// Batches are strictly sequential: each method's analysis sees the
// tree as mutated by the previous method, so an access member inserted
// for the first method is reused, never duplicated. On error the file
// may be partially rewritten; callers must discard it and keep the
// original text.
package mover

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/accessmember"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// Error values reported by move operations.
var (
	// ErrSourceNotFound means the requested source struct does not exist
	// in the compilation unit.
	ErrSourceNotFound = errors.New("source struct not found")

	// ErrTargetNotFound means the requested destination struct does not
	// exist in the compilation unit.
	ErrTargetNotFound = errors.New("target struct not found")

	// ErrMethodNotFound means a requested method does not exist on the
	// source struct.
	ErrMethodNotFound = errors.New("method not found")

	// ErrUnsupportedMove means the method body depends on source members
	// that can neither travel nor become parameters.
	ErrUnsupportedMove = errors.New("unsupported move")

	// ErrNoChange means the request would leave the tree untouched,
	// which is reported rather than silently ignored.
	ErrNoChange = errors.New("move changes nothing")
)

// MoveStatic relocates a method that requires no instance state. The
// source struct is inferred from the method's receiver; the method ends
// up on the destination with an unnamed receiver, and remaining source
// call sites are redirected to a destination value.
func MoveStatic(fset *token.FileSet, file *ast.File, methodName, targetType string) (*types.MoveResult, error) {
	idx := hierarchy.NewIndex(file)
	if !idx.HasStruct(targetType) {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, targetType)
	}

	fn := astx.FindMethodAnyReceiver(file, methodName)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, methodName)
	}
	sourceType := astx.ReceiverTypeName(fn)
	if sourceType == targetType {
		return nil, fmt.Errorf("%w: %s already belongs to %s", ErrNoChange, methodName, targetType)
	}

	if identUsed(fn.Body, astx.ReceiverName(fn)) {
		return nil, fmt.Errorf("%w: %s uses instance state of %s", ErrUnsupportedMove, methodName, sourceType)
	}

	comments := removeMethod(fset, file, fn)
	rewritten := rebindReceiver(fn, targetType, false)
	rewrites := redirectCallSites(file, sourceType, methodName, callRoute{
		targetType: targetType,
		static:     true,
	})
	if err := insertMethod(fset, file, rewritten, comments); err != nil {
		return nil, err
	}
	sweepOrphans(fset, file, targetType, sourceType)

	return &types.MoveResult{
		Package:      file.Name.Name,
		Moved:        []string{methodName},
		MadeStatic:   []string{methodName},
		RewrittenUse: rewrites,
	}, nil
}

// MoveInstance relocates one or more methods from the request's source
// struct to its destination, creating or reusing the access member for
// every method that retains an instance dependency. The methods are
// applied in order against the evolving tree.
func MoveInstance(fset *token.FileSet, file *ast.File, req types.MoveRequest) (*types.MoveResult, error) {
	if len(req.Methods) == 0 {
		return nil, fmt.Errorf("%w: no methods requested", ErrNoChange)
	}
	if req.SourceType == req.TargetType {
		return nil, fmt.Errorf("%w: source and target are both %s", ErrNoChange, req.SourceType)
	}

	idx := hierarchy.NewIndex(file)
	if !idx.HasStruct(req.SourceType) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, req.SourceType)
	}
	if !idx.HasStruct(req.TargetType) {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, req.TargetType)
	}

	accessName := req.AccessName
	if accessName == "" {
		existing := idx.Resolve(req.SourceType, hierarchy.InstanceMembers)
		for name := range idx.Resolve(req.SourceType, hierarchy.StaticFields) {
			existing.Add(name)
		}
		accessName = accessmember.GenerateName(existing, req.TargetType)
	}

	result := &types.MoveResult{Package: file.Name.Name}
	batch := newBatchState(req.Methods)

	for _, methodName := range req.Methods {
		if err := moveOne(fset, file, req, methodName, accessName, batch, result); err != nil {
			return nil, err
		}
	}

	if batch.usedAccess {
		result.AccessName = accessName
	}
	sweepOrphans(fset, file, req.TargetType, req.SourceType)
	return result, nil
}

// moveOne applies all three phases for a single method of a batch.
func moveOne(fset *token.FileSet, file *ast.File, req types.MoveRequest, methodName, accessName string, batch *batchState, result *types.MoveResult) error {
	idx := hierarchy.NewIndex(file)

	fn := astx.FindMethod(file, req.SourceType, methodName)
	if fn == nil {
		return fmt.Errorf("%w: %s.%s", ErrMethodNotFound, req.SourceType, methodName)
	}

	// A method that never touches its receiver needs no access to the
	// original instance: it moves in static form and no access member
	// is synthesized for it.
	needsInstance := identUsed(fn.Body, astx.ReceiverName(fn))

	a, err := analyzeMethod(idx, fn, req, batch)
	if err != nil {
		return err
	}

	if needsInstance {
		inserted, err := ensureAccessMember(fset, file, idx, req, accessName)
		if err != nil {
			return err
		}
		if inserted {
			result.AccessAdded = true
		}
		batch.usedAccess = true
	}

	comments := removeMethod(fset, file, fn)
	rewritten := rewriteMethod(fset, fn, a, req.TargetType, needsInstance)
	result.RewrittenUse += redirectCallSites(file, req.SourceType, methodName, callRoute{
		targetType: req.TargetType,
		accessName: accessName,
		accessKind: req.AccessKind,
		fieldArgs:  a.paramNames(),
		static:     !needsInstance,
		skip:       batch.pending(methodName),
	})
	if err := insertMethod(fset, file, rewritten, comments); err != nil {
		return err
	}

	batch.markMoved(methodName, a.paramNames())
	result.Moved = append(result.Moved, methodName)
	if !needsInstance {
		result.MadeStatic = append(result.MadeStatic, methodName)
	}
	return nil
}

// batchState tracks batch-mates across a multi-method move.
type batchState struct {
	order      []string            // request order
	all        hierarchy.NameSet   // every method in the request
	moved      map[string][]string // moved method -> appended field parameters
	usedAccess bool                // some method routed through the access member
}

func newBatchState(methods []string) *batchState {
	return &batchState{
		order: methods,
		all:   hierarchy.NewNameSet(methods...),
		moved: make(map[string][]string),
	}
}

func (b *batchState) markMoved(name string, params []string) {
	b.moved[name] = params
}

// pending returns the batch methods that have not moved yet, excluding
// current. Their bodies are rewritten when their own turn comes.
func (b *batchState) pending(current string) hierarchy.NameSet {
	s := make(hierarchy.NameSet)
	for _, name := range b.order {
		if name == current {
			continue
		}
		if _, done := b.moved[name]; !done {
			s.Add(name)
		}
	}
	return s
}

// identUsed reports whether name occurs as an unqualified identifier
// anywhere under n. Selector members do not count.
func identUsed(n ast.Node, name string) bool {
	if n == nil || name == "" {
		return false
	}
	found := false
	var walk func(ast.Node) bool
	walk = func(n ast.Node) bool {
		if found {
			return false
		}
		switch e := n.(type) {
		case *ast.SelectorExpr:
			ast.Inspect(e.X, walk)
			return false
		case *ast.Ident:
			if e.Name == name {
				found = true
			}
		}
		return true
	}
	ast.Inspect(n, walk)
	return found
}
