// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

const shopSource = `package shop

// Order tracks a purchase.
type Order struct {
	id    string
	total int
}

type Pricer interface {
	Price() int
}

// Total returns the order total.
func (o *Order) Total() int {
	return o.total
}

func (Order) Kind() string { return "order" }

func NewOrder(id string) *Order {
	return &Order{id: id}
}
`

func TestParseSourceReportsErrors(t *testing.T) {
	fset := token.NewFileSet()

	_, err := ParseSource(fset, "bad.go", "package shop\nfunc {")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.go")
}

func TestParseTypeExpr(t *testing.T) {
	fset := token.NewFileSet()

	for _, typeStr := range []string{"int", "*Order", "[]string", "map[string][]byte", "chan<- int"} {
		expr, err := ParseTypeExpr(fset, typeStr)
		require.NoError(t, err, typeStr)
		assert.Equal(t, typeStr, ExprString(expr))
	}

	_, err := ParseTypeExpr(fset, "not a type!")
	assert.Error(t, err)
}

func TestParseFuncDecl(t *testing.T) {
	fset := token.NewFileSet()

	fd, err := ParseFuncDecl(fset, "func (o *Order) Total() int {\n\treturn o.total\n}")
	require.NoError(t, err)
	assert.Equal(t, "Total", fd.Name.Name)
	assert.Equal(t, "Order", ReceiverTypeName(fd))

	_, err = ParseFuncDecl(fset, "var x int")
	assert.Error(t, err)
}

func TestFormatIdempotent(t *testing.T) {
	fset := token.NewFileSet()
	file, err := ParseSource(fset, "shop.go", shopSource)
	require.NoError(t, err)

	first, err := Format(fset, file)
	require.NoError(t, err)

	// Re-parse the formatted output and format again.
	fset2 := token.NewFileSet()
	file2, err := ParseSource(fset2, "shop.go", string(first))
	require.NoError(t, err)
	second, err := Format(fset2, file2)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestWriteFilePreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.go")
	require.NoError(t, os.WriteFile(path, []byte("package old\n"), 0o600))

	fset := token.NewFileSet()
	file, err := ParseSource(fset, "shop.go", shopSource)
	require.NoError(t, err)

	require.NoError(t, WriteFile(fset, file, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package shop")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteTextCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.go")

	require.NoError(t, WriteText(path, []byte("package out\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package out\n", string(content))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.go"), []byte("package p\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package p\nfunc {"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "dep.go"), []byte("package dep\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gen"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen", "skip.go"), []byte("package gen\n"), 0o644))

	result, err := ScanDir(dir, 2, []string{"gen"})
	require.NoError(t, err)

	assert.Contains(t, result.Files, filepath.Join(dir, "good.go"))
	assert.NotContains(t, result.Files, filepath.Join(dir, "vendor", "dep.go"))
	assert.NotContains(t, result.Files, filepath.Join(dir, "gen", "skip.go"))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, filepath.Join(dir, "broken.go"), result.Errors[0].FilePath)
}

func TestBaseTypeName(t *testing.T) {
	fset := token.NewFileSet()

	cases := map[string]string{
		"Order":        "Order",
		"*Order":       "Order",
		"pkg.Type":     "Type",
		"*pkg.Type":    "Type",
		"List[int]":    "List",
		"Pair[int, T]": "Pair",
	}
	for typeStr, want := range cases {
		expr, err := ParseTypeExpr(fset, typeStr)
		require.NoError(t, err, typeStr)
		assert.Equal(t, want, BaseTypeName(expr), typeStr)
	}
}

func TestReceiverHelpers(t *testing.T) {
	fset := token.NewFileSet()

	named, err := ParseFuncDecl(fset, "func (o *Order) M() {}")
	require.NoError(t, err)
	assert.Equal(t, "Order", ReceiverTypeName(named))
	assert.Equal(t, "o", ReceiverName(named))

	unnamed, err := ParseFuncDecl(fset, "func (Order) M() {}")
	require.NoError(t, err)
	assert.Equal(t, "Order", ReceiverTypeName(unnamed))
	assert.Equal(t, "", ReceiverName(unnamed))

	blank, err := ParseFuncDecl(fset, "func (_ Order) M() {}")
	require.NoError(t, err)
	assert.Equal(t, "", ReceiverName(blank))

	plain, err := ParseFuncDecl(fset, "func M() {}")
	require.NoError(t, err)
	assert.Equal(t, "", ReceiverTypeName(plain))
}

func TestFindHelpers(t *testing.T) {
	fset := token.NewFileSet()
	file, err := ParseSource(fset, "shop.go", shopSource)
	require.NoError(t, err)

	ts, st := FindStruct(file, "Order")
	require.NotNil(t, ts)
	require.NotNil(t, st)
	assert.Len(t, st.Fields.List, 2)

	_, it := FindInterface(file, "Pricer")
	assert.NotNil(t, it)
	_, none := FindStruct(file, "Pricer")
	assert.Nil(t, none, "interface is not a struct")

	assert.NotNil(t, FindMethod(file, "Order", "Total"))
	assert.Nil(t, FindMethod(file, "Order", "NewOrder"), "plain function is not a method")
	assert.NotNil(t, FindMethodAnyReceiver(file, "Kind"))

	methods := MethodsOf(file, "Order")
	assert.Len(t, methods, 2)
}

func TestRemoveDecl(t *testing.T) {
	fset := token.NewFileSet()
	file, err := ParseSource(fset, "shop.go", shopSource)
	require.NoError(t, err)

	fn := FindMethod(file, "Order", "Total")
	require.NotNil(t, fn)

	assert.True(t, RemoveDecl(file, fn))
	assert.Nil(t, FindMethod(file, "Order", "Total"))
	assert.False(t, RemoveDecl(file, fn), "already removed")
}

func TestExtractSymbols(t *testing.T) {
	fset := token.NewFileSet()
	file, err := ParseSource(fset, "shop.go", shopSource)
	require.NoError(t, err)

	symbols := ExtractSymbols(fset, "shop.go", file)

	byName := make(map[string]types.Symbol, len(symbols))
	for _, s := range symbols {
		byName[s.Name] = s
	}

	assert.Equal(t, types.Struct, byName["Order"].Kind)
	assert.Equal(t, types.Interface, byName["Pricer"].Kind)
	assert.Equal(t, types.Function, byName["NewOrder"].Kind)

	total := byName["Total"]
	assert.Equal(t, types.Method, total.Kind)
	assert.Equal(t, "Order", total.Receiver)
	assert.Equal(t, "func(*Order) Total() int", total.Signature)
	assert.Positive(t, total.Line)
}

func TestFuncSignature(t *testing.T) {
	fset := token.NewFileSet()

	fd, err := ParseFuncDecl(fset, "func Sum(a, b int, tags []string) (int, error) { return 0, nil }")
	require.NoError(t, err)
	assert.Equal(t, "func Sum(a int, b int, tags []string) (int, error)", FuncSignature(fd))
}
