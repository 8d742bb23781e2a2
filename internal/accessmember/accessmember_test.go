// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package accessmember

import (
	"bytes"
	"go/printer"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/hierarchy"
)

func TestGenerateNameDeterministic(t *testing.T) {
	existing := hierarchy.NewNameSet("total", "Print")

	first := GenerateName(existing, "Customer")
	second := GenerateName(existing, "Customer")

	assert.Equal(t, "_customer", first)
	assert.Equal(t, first, second, "same inputs, same name")
}

func TestGenerateNameSuffixesOnCollision(t *testing.T) {
	existing := hierarchy.NewNameSet("_customer")
	assert.Equal(t, "_customer1", GenerateName(existing, "Customer"))

	existing.Add("_customer1")
	existing.Add("_customer2")
	assert.Equal(t, "_customer3", GenerateName(existing, "Customer"))
}

func TestMatchesGenerated(t *testing.T) {
	assert.True(t, MatchesGenerated("_customer", "Customer"))
	assert.True(t, MatchesGenerated("_customer7", "Customer"))
	assert.False(t, MatchesGenerated("customer", "Customer"))
	assert.False(t, MatchesGenerated("_customerX", "Customer"))
	assert.False(t, MatchesGenerated("_order", "Customer"))
}

func TestNewFieldMember(t *testing.T) {
	f := NewFieldMember("_customer", "Customer")

	require.Len(t, f.Names, 1)
	assert.Equal(t, "_customer", f.Names[0].Name)
	assert.Equal(t, "Customer", astx.ExprString(f.Type), "value field, not a pointer")
}

func TestNewAccessorMethod(t *testing.T) {
	fset := token.NewFileSet()

	fd, err := NewAccessorMethod(fset, "_customer", "Order", "Customer")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, fset, fd))

	src := buf.String()
	assert.Contains(t, src, "func (o *Order) _customer() *Customer")
	assert.Contains(t, src, "return &Customer{}")
}

func TestReceiverVarAvoidsCollision(t *testing.T) {
	// A source type whose natural receiver letter equals the member
	// name falls back to a safe identifier.
	fset := token.NewFileSet()

	fd, err := NewAccessorMethod(fset, "x", "X", "Y")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, fset, fd))
	assert.Contains(t, buf.String(), "func (recv *X) x() *Y")
}
