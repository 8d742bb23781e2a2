// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package refactor defines the public interface of the go-refactor
// Move Method engine. The boundary is pure text: callers pass a
// complete, syntactically valid compilation unit and receive the
// re-formatted rewritten unit. No state persists between calls, and a
// failed move never returns partially rewritten text — the input is
// parsed fresh per invocation and discarded on error.
package refactor

import (
	"errors"
	"fmt"
	"go/token"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/mover"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// Error values for the refactor API. The mover's sentinels are
// re-exported so callers can match with errors.Is without importing
// internal packages.
var (
	ErrSourceNotFound    = mover.ErrSourceNotFound
	ErrTargetNotFound    = mover.ErrTargetNotFound
	ErrMethodNotFound    = mover.ErrMethodNotFound
	ErrUnsupportedMove   = mover.ErrUnsupportedMove
	ErrNoChange          = mover.ErrNoChange
	ErrInvalidAccessKind = errors.New("invalid access member kind")
)

// MoveStaticMethod moves a method known to require no instance state
// onto the target struct. The source struct is inferred from the
// method's receiver.
func MoveStaticMethod(sourceText, methodName, targetClassName string) (string, error) {
	fset := token.NewFileSet()
	file, err := astx.ParseSource(fset, "source.go", sourceText)
	if err != nil {
		return "", err
	}

	if _, err := mover.MoveStatic(fset, file, methodName, targetClassName); err != nil {
		return "", err
	}

	out, err := astx.Format(fset, file)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// MoveInstanceMethod moves a single instance method, creating or
// reusing the named access member. The accessMemberKind token is
// "field" or "property".
func MoveInstanceMethod(sourceText, sourceClassName, methodName, targetClassName, accessMemberName, accessMemberKind string) (string, error) {
	return MoveMultipleInstanceMethods(sourceText, sourceClassName, []string{methodName},
		targetClassName, accessMemberName, accessMemberKind)
}

// MoveMultipleInstanceMethods moves several methods from the same
// source struct to the same target in one batch. The methods are
// applied in order against the evolving tree, so one generated access
// member serves the whole batch. Formatting runs once, after the last
// method is spliced.
func MoveMultipleInstanceMethods(sourceText, sourceClassName string, methodNames []string, targetClassName, accessMemberName, accessMemberKind string) (string, error) {
	out, _, err := Apply(sourceText, types.MoveRequest{
		SourceType: sourceClassName,
		Methods:    methodNames,
		TargetType: targetClassName,
		AccessName: accessMemberName,
	}, accessMemberKind)
	return out, err
}

// Apply runs an instance move request and returns the rewritten text
// together with the detailed result. The kind token must be one of the
// two literal spellings, "field" or "property"; anything else,
// including the empty string, is ErrInvalidAccessKind.
func Apply(sourceText string, req types.MoveRequest, kindToken string) (string, *types.MoveResult, error) {
	kind, err := types.ParseAccessMemberKind(kindToken)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAccessKind, err)
	}
	req.AccessKind = kind

	fset := token.NewFileSet()
	file, err := astx.ParseSource(fset, "source.go", sourceText)
	if err != nil {
		return "", nil, err
	}

	result, err := mover.MoveInstance(fset, file, req)
	if err != nil {
		return "", nil, err
	}

	out, err := astx.Format(fset, file)
	if err != nil {
		return "", nil, err
	}
	return string(out), result, nil
}
