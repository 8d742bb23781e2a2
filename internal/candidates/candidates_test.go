// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package candidates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-refactor/internal/hierarchy"
)

const orderSource = `package shop

type Order struct {
	id    string
	total int
}

func (o *Order) ShippingLabel(c *Customer) string {
	return c.Name + "\n" + c.Street + "\n" + c.City + " " + o.id
}

func (o *Order) Total() int {
	return o.total
}
`

const customerSource = `package shop

type Customer struct {
	Name   string
	Street string
	City   string
}
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestScanFindsEnviousMethod(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"order.go":    orderSource,
		"customer.go": customerSource,
	})

	got, err := Scan(dir, Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "ShippingLabel", c.Method)
	assert.Equal(t, "Order", c.FromType)
	assert.Equal(t, "Customer", c.ToType)
	assert.Equal(t, 1, c.OwnRefs)
	assert.Equal(t, 3, c.ForeignRefs)
	assert.Positive(t, c.Score)
	assert.Equal(t, filepath.Join(dir, "order.go"), c.FilePath)
	assert.Equal(t, 8, c.Line)
	assert.Equal(t, "func(*Order) ShippingLabel(c *Customer) string", c.Signature)
}

func TestScanSkipsBalancedMethods(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"shop.go": `package shop

type Order struct {
	id    string
	total int
}

type Customer struct {
	Name string
}

func (o *Order) Describe(c *Customer) string {
	return o.id + c.Name
}
`,
	})

	got, err := Scan(dir, Options{})
	require.NoError(t, err)
	assert.Empty(t, got, "one foreign ref against one own is not envy")
}

func TestScanMinForeignRefs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"order.go":    orderSource,
		"customer.go": customerSource,
	})

	got, err := Scan(dir, Options{MinForeignRefs: 4})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanFocusBoostsScore(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"order.go":    orderSource,
		"customer.go": customerSource,
	})

	plain, err := Scan(dir, Options{})
	require.NoError(t, err)
	require.Len(t, plain, 1)

	focused, err := Scan(dir, Options{Focus: []string{"Customer"}})
	require.NoError(t, err)
	require.Len(t, focused, 1)

	assert.Greater(t, focused[0].Score, plain[0].Score)
}

func TestRankEmptyGraph(t *testing.T) {
	assert.Nil(t, rank(&Graph{}, rankConfig{}))
}

func TestIdentifierWeight(t *testing.T) {
	assert.Equal(t, longNameWeight, identifierWeight("ShippingAddress"))
	assert.Equal(t, shortNameWeight, identifierWeight("Name"))
	assert.Equal(t, underscoreWeight, identifierWeight("_hidden"))
}

func TestCommonWeightDownweightsSharedNames(t *testing.T) {
	members := map[string]hierarchy.NameSet{
		"A": hierarchy.NewNameSet("Reset"),
		"B": hierarchy.NewNameSet("Reset"),
		"C": hierarchy.NewNameSet("Reset"),
		"D": hierarchy.NewNameSet("Reset"),
		"E": hierarchy.NewNameSet("Reset", "Unique"),
	}
	g := buildGraph([]string{"A", "B", "C", "D", "E"}, members, nil)

	assert.Equal(t, commonFactor, g.commonWeight("Reset"))
	assert.Equal(t, 1.0, g.commonWeight("Unique"))
}
