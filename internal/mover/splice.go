// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mover

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/accessmember"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// ensureAccessMember makes the access member exist on the source
// struct. Whether one already exists is decided through the resolver,
// so an access member inherited from an embedded struct also counts.
// Returns true when a member was newly inserted.
func ensureAccessMember(fset *token.FileSet, file *ast.File, idx *hierarchy.Index, req types.MoveRequest, accessName string) (bool, error) {
	if idx.Resolve(req.SourceType, hierarchy.InstanceMembers).Has(accessName) {
		return false, nil
	}

	switch req.AccessKind {
	case types.AccessField:
		_, st := astx.FindStruct(file, req.SourceType)
		if st == nil {
			return false, fmt.Errorf("%w: %s", ErrSourceNotFound, req.SourceType)
		}
		st.Fields.List = append(st.Fields.List, accessmember.NewFieldMember(accessName, req.TargetType))
	case types.AccessProperty:
		fd, err := accessmember.NewAccessorMethod(fset, accessName, req.SourceType, req.TargetType)
		if err != nil {
			return false, err
		}
		file.Decls = append(file.Decls, fd)
	default:
		return false, fmt.Errorf("unknown access member kind %d", req.AccessKind)
	}
	return true, nil
}

// removeMethod splices the method declaration out of the file and
// strips the comment groups attached to it, returning the stripped
// groups so they can travel with the method. Attachment is decided by
// the comment map, so doc comments, trailing comments, and comments on
// statements inside the body all travel.
func removeMethod(fset *token.FileSet, file *ast.File, fn *ast.FuncDecl) []*ast.CommentGroup {
	cmap := astx.NewCommentMap(fset, file)
	astx.RemoveDecl(file, fn)

	stripped := cmap.Filter(fn).Comments()
	for _, cg := range stripped {
		astx.RemoveCommentGroup(file, cg)
	}
	return stripped
}

// callRoute describes how redirected call sites reach the moved method.
type callRoute struct {
	targetType string
	accessName string
	accessKind types.AccessMemberKind
	fieldArgs  []string          // stay-behind fields appended as arguments
	static     bool              // route through a destination value, no access member
	skip       hierarchy.NameSet // methods whose bodies must not be rewritten yet
}

// redirectCallSites rewrites every remaining source-struct method that
// calls the moved method so the call routes through the access member
// (or a destination value for static moves), appending the stay-behind
// field arguments. Returns the number of call sites rewritten.
func redirectCallSites(file *ast.File, sourceType, methodName string, route callRoute) int {
	count := 0

	for _, method := range astx.MethodsOf(file, sourceType) {
		if route.skip.Has(method.Name.Name) {
			continue
		}
		recv := astx.ReceiverName(method)
		if recv == "" || method.Body == nil {
			continue
		}

		astutil.Apply(method.Body, func(c *astutil.Cursor) bool {
			call, ok := c.Node().(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			id, ok := sel.X.(*ast.Ident)
			if !ok || id.Name != recv || sel.Sel.Name != methodName {
				return true
			}

			call.Fun = &ast.SelectorExpr{
				X:   routeBase(recv, route),
				Sel: ast.NewIdent(methodName),
			}
			for _, f := range route.fieldArgs {
				call.Args = append(call.Args, &ast.SelectorExpr{
					X:   ast.NewIdent(recv),
					Sel: ast.NewIdent(f),
				})
			}
			count++
			return true
		}, nil)
	}

	return count
}

// routeBase builds the expression the redirected call dereferences:
// Target{} for static moves, recv.access for a field member,
// recv.access() for an accessor method.
func routeBase(recv string, route callRoute) ast.Expr {
	if route.static {
		return &ast.CompositeLit{Type: ast.NewIdent(route.targetType)}
	}
	access := &ast.SelectorExpr{
		X:   ast.NewIdent(recv),
		Sel: ast.NewIdent(route.accessName),
	}
	if route.accessKind == types.AccessProperty {
		return &ast.CallExpr{Fun: access}
	}
	return access
}

// insertMethod appends the rewritten declaration to the file and
// normalizes the whole unit: the current file and the moved method are
// rendered to text, gofmt'ed, and re-parsed as one compilation unit
// which replaces the tree in place. Rewritten nodes carry no positions
// and the moved declaration's positions predate the move, so printing
// the mutated tree directly would mangle the layout and misplace
// comments; a round trip through text leaves every node of the
// resulting tree with consistent positions in a single token file.
func insertMethod(fset *token.FileSet, file *ast.File, fn *ast.FuncDecl, comments []*ast.CommentGroup) error {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return fmt.Errorf("rendering file: %w", err)
	}
	buf.WriteString("\n")
	cn := &printer.CommentedNode{Node: fn, Comments: comments}
	if err := printer.Fprint(&buf, fset, cn); err != nil {
		return fmt.Errorf("rendering moved method: %w", err)
	}
	buf.WriteString("\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting spliced file: %w", err)
	}

	parsed, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("re-parsing spliced file: %w", err)
	}

	*file = *parsed
	return nil
}

// sweepOrphans removes generated access members on the destination
// struct that point back at the origin and are no longer referenced
// anywhere in the unit. This keeps a move/move-back pair from
// accumulating stale members. User-written fields never match the
// generated naming pattern check.
func sweepOrphans(fset *token.FileSet, file *ast.File, destType, originType string) {
	_, st := astx.FindStruct(file, destType)
	if st != nil && st.Fields != nil {
		var kept []*ast.Field
		for _, field := range st.Fields.List {
			if len(field.Names) == 1 {
				name := field.Names[0].Name
				if accessmember.MatchesGenerated(name, originType) &&
					astx.BaseTypeName(field.Type) == originType &&
					!memberReferenced(file, name) {
					continue
				}
			}
			kept = append(kept, field)
		}
		st.Fields.List = kept
	}

	for _, method := range astx.MethodsOf(file, destType) {
		name := method.Name.Name
		if !accessmember.MatchesGenerated(name, originType) {
			continue
		}
		if !accessorReturns(method, originType) || memberReferenced(file, name) {
			continue
		}
		removeMethod(fset, file, method)
	}
}

// accessorReturns reports whether the method has the generated accessor
// shape: no parameters, single pointer result of the given type.
func accessorReturns(fn *ast.FuncDecl, typeName string) bool {
	if fn.Type.Params != nil && len(fn.Type.Params.List) > 0 {
		return false
	}
	results := fn.Type.Results
	if results == nil || len(results.List) != 1 {
		return false
	}
	star, ok := results.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	return astx.BaseTypeName(star.X) == typeName
}

// memberReferenced reports whether any function body in the unit still
// mentions the name, either as a selector member or as a bare
// identifier.
func memberReferenced(file *ast.File, name string) bool {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}
		found := false
		ast.Inspect(fd.Body, func(n ast.Node) bool {
			if found {
				return false
			}
			switch e := n.(type) {
			case *ast.SelectorExpr:
				if e.Sel.Name == name {
					found = true
				}
			case *ast.Ident:
				if e.Name == name {
					found = true
				}
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}
