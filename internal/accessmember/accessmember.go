// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package accessmember generates the member a source struct uses to
// reach an instance of the target struct after a move: either a value
// field of the target type or an accessor method returning a pointer
// to it.
package accessmember

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
)

// GenerateName derives an access member name from the target type name:
// underscore, lowercased first letter, remainder unchanged. When the
// candidate collides with a name in existing, an integer suffix starting
// at 1 is appended until no collision remains. Pure and deterministic.
func GenerateName(existing hierarchy.NameSet, targetType string) string {
	base := baseName(targetType)
	if !existing.Has(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !existing.Has(candidate) {
			return candidate
		}
	}
}

// MatchesGenerated reports whether name follows the generated pattern
// for the target type: the base candidate or the base candidate with an
// integer suffix.
func MatchesGenerated(name, targetType string) bool {
	base := baseName(targetType)
	if name == base {
		return true
	}
	if !strings.HasPrefix(name, base) {
		return false
	}
	suffix := name[len(base):]
	_, err := strconv.Atoi(suffix)
	return err == nil
}

// NewFieldMember builds a struct field of the target type. The zero
// value of the field stands in for a parameterless construction.
func NewFieldMember(name, targetType string) *ast.Field {
	return &ast.Field{
		Names: []*ast.Ident{ast.NewIdent(name)},
		Type:  ast.NewIdent(targetType),
	}
}

// NewAccessorMethod builds a method on the source type returning a
// pointer to a fresh target instance. This is the property rendition:
// Go has no auto-properties, so the accessor method takes their place.
func NewAccessorMethod(fset *token.FileSet, name, sourceType, targetType string) (*ast.FuncDecl, error) {
	recv := receiverVar(sourceType, name)
	src := fmt.Sprintf("func (%s *%s) %s() *%s {\n\treturn &%s{}\n}",
		recv, sourceType, name, targetType, targetType)
	return astx.ParseFuncDecl(fset, src)
}

// baseName lowercases the first rune of the type name and prefixes an
// underscore.
func baseName(targetType string) string {
	r, size := utf8.DecodeRuneInString(targetType)
	if r == utf8.RuneError {
		return "_" + targetType
	}
	return "_" + string(unicode.ToLower(r)) + targetType[size:]
}

// receiverVar picks a one-letter receiver identifier that does not
// collide with the member name.
func receiverVar(sourceType, memberName string) string {
	r, _ := utf8.DecodeRuneInString(sourceType)
	v := string(unicode.ToLower(r))
	if v == memberName || v == "_" {
		v = "recv"
	}
	return v
}
