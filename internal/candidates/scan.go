// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package candidates

import (
	"fmt"
	"go/ast"
	"io"
	"sort"

	"github.com/schollz/progressbar/v3"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// Options controls a candidate scan.
type Options struct {
	// Concurrency bounds the parser worker pool; <= 0 uses NumCPU.
	Concurrency int
	// Exclude lists extra directory names to skip.
	Exclude []string
	// MinForeignRefs is the minimum number of foreign member references
	// before a method is reported. Zero means 2.
	MinForeignRefs int
	// Focus lists type names whose PageRank weight is boosted, pulling
	// candidates that move toward them up the list.
	Focus []string
	// Progress, when non-nil, receives a progress bar during the scan.
	Progress io.Writer
}

// Scan parses every Go file under dir and returns move-method
// candidates sorted by score, highest first. A method is a candidate
// when its body references another struct's members at least as often
// as its own receiver's.
func Scan(dir string, opts Options) ([]types.MoveCandidate, error) {
	minForeign := opts.MinForeignRefs
	if minForeign == 0 {
		minForeign = 2
	}

	result, err := astx.ScanDir(dir, opts.Concurrency, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	paths := make([]string, 0, len(result.Files))
	for p := range result.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	bar := newBar(opts.Progress, len(paths))

	// First pass: member sets per struct type, across all files.
	members := make(map[string]hierarchy.NameSet)
	for _, p := range paths {
		idx := hierarchy.NewIndex(result.Files[p])
		for _, s := range idx.StructNames().Names() {
			set, ok := members[s]
			if !ok {
				set = hierarchy.NewNameSet()
				members[s] = set
			}
			for _, m := range idx.Resolve(s, hierarchy.InstanceMembers).Names() {
				set.Add(m)
			}
		}
	}

	typeNames := make([]string, 0, len(members))
	for t := range members {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	// Second pass: count own vs foreign member references per method.
	// The symbol table built per file supplies each candidate's
	// position and signature.
	var uses []memberUse
	var raw []types.MoveCandidate
	for _, p := range paths {
		file := result.Files[p]
		syms := methodSymbols(astx.ExtractSymbols(result.FileSet, p, file))
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || fn.Body == nil {
				continue
			}
			fromType := astx.ReceiverTypeName(fn)
			own, ok := members[fromType]
			if !ok {
				continue
			}

			counts := countRefs(fn, fromType, own, members)
			uses = append(uses, counts.uses...)

			toType, foreign := counts.dominant()
			if toType == "" || foreign < minForeign || foreign <= counts.own {
				continue
			}

			sym := syms[fromType+"."+fn.Name.Name]
			raw = append(raw, types.MoveCandidate{
				FilePath:    sym.FilePath,
				Line:        sym.Line,
				Method:      fn.Name.Name,
				FromType:    fromType,
				ToType:      toType,
				OwnRefs:     counts.own,
				ForeignRefs: foreign,
				Signature:   sym.Signature,
			})
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	// Rank destination types and fold their centrality into the score.
	scores := rank(buildGraph(typeNames, members, uses), rankConfig{focus: opts.Focus})
	for i := range raw {
		imbalance := float64(raw[i].ForeignRefs) / float64(raw[i].OwnRefs+1)
		raw[i].Score = imbalance * (1.0 + scores[raw[i].ToType])
	}

	sort.Slice(raw, func(i, j int) bool {
		if raw[i].Score != raw[j].Score {
			return raw[i].Score > raw[j].Score
		}
		if raw[i].FilePath != raw[j].FilePath {
			return raw[i].FilePath < raw[j].FilePath
		}
		return raw[i].Line < raw[j].Line
	})

	return raw, nil
}

// methodSymbols indexes a file's method symbols by "Receiver.Name".
func methodSymbols(syms []types.Symbol) map[string]types.Symbol {
	out := make(map[string]types.Symbol, len(syms))
	for _, s := range syms {
		if s.Kind == types.Method {
			out[s.Receiver+"."+s.Name] = s
		}
	}
	return out
}

// refCounts accumulates member references from one method body.
type refCounts struct {
	own     int
	foreign map[string]int
	uses    []memberUse
}

// dominant returns the foreign type with the most references, breaking
// ties by name for determinism.
func (c refCounts) dominant() (string, int) {
	best, bestN := "", 0
	for t, n := range c.foreign {
		if n > bestN || (n == bestN && (best == "" || t < best)) {
			best, bestN = t, n
		}
	}
	return best, bestN
}

// countRefs walks the method body counting receiver-qualified member
// references against the receiver's own type and, via parameters of
// known struct types, against foreign types.
func countRefs(fn *ast.FuncDecl, fromType string, own hierarchy.NameSet, members map[string]hierarchy.NameSet) refCounts {
	recv := astx.ReceiverName(fn)
	paramTypes := structParams(fn, members)

	counts := refCounts{foreign: make(map[string]int)}
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		switch {
		case id.Name == recv && own.Has(sel.Sel.Name):
			counts.own++
		default:
			if to, ok := paramTypes[id.Name]; ok && members[to].Has(sel.Sel.Name) {
				counts.foreign[to]++
				counts.uses = append(counts.uses, memberUse{
					fromType: fromType,
					toType:   to,
					member:   sel.Sel.Name,
				})
			}
		}
		return true
	})
	return counts
}

// structParams maps parameter names to known struct type names,
// looking through one level of pointer.
func structParams(fn *ast.FuncDecl, members map[string]hierarchy.NameSet) map[string]string {
	out := make(map[string]string)
	if fn.Type.Params == nil {
		return out
	}
	for _, field := range fn.Type.Params.List {
		typeName := astx.BaseTypeName(field.Type)
		if _, ok := members[typeName]; !ok {
			continue
		}
		for _, name := range field.Names {
			out[name.Name] = typeName
		}
	}
	return out
}

// newBar builds the scan progress bar, discarding output when the
// caller did not ask for it.
func newBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil {
		return progressbar.NewOptions(total, progressbar.OptionSetWriter(io.Discard))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("[scan]"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}
