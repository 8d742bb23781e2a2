// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package refactor

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

const ledgerSource = `package ledger

type Account struct {
	owner   string
	balance int
}

type Statement struct{}

func (a *Account) Header() string {
	return "statement for " + a.owner
}

func (a *Account) Footer() string {
	return "end of statement"
}

func (a *Account) Render() string {
	return a.Header() + "\n" + a.Footer()
}
`

func TestMoveStaticMethod(t *testing.T) {
	out, err := MoveStaticMethod(ledgerSource, "Footer", "Statement")
	require.NoError(t, err)

	assert.Contains(t, out, "func (Statement) Footer() string")
	assert.Contains(t, out, "Statement{}.Footer()")
	assert.NotContains(t, out, "func (a *Account) Footer")
}

func TestMoveStaticMethodRejectsInstanceState(t *testing.T) {
	_, err := MoveStaticMethod(ledgerSource, "Header", "Statement")
	assert.ErrorIs(t, err, ErrUnsupportedMove)
}

func TestMoveInstanceMethodFieldAccess(t *testing.T) {
	out, err := MoveInstanceMethod(ledgerSource, "Account", "Header", "Statement", "", "field")
	require.NoError(t, err)

	assert.Contains(t, out, "func (a *Statement) Header(owner string) string")
	assert.Contains(t, out, "_statement Statement")
	assert.Contains(t, out, "a._statement.Header(a.owner)")
}

func TestMoveInstanceMethodPropertyAccess(t *testing.T) {
	out, err := MoveInstanceMethod(ledgerSource, "Account", "Header", "Statement", "stmt", "property")
	require.NoError(t, err)

	assert.Contains(t, out, "func (a *Account) stmt() *Statement")
	assert.Contains(t, out, "a.stmt().Header(a.owner)")
}

func TestMoveInstanceMethodInvalidKind(t *testing.T) {
	for _, kind := range []string{"virtual", ""} {
		_, err := MoveInstanceMethod(ledgerSource, "Account", "Header", "Statement", "", kind)
		assert.ErrorIs(t, err, ErrInvalidAccessKind, "kind %q", kind)
	}
}

func TestMoveMultipleInstanceMethods(t *testing.T) {
	out, err := MoveMultipleInstanceMethods(ledgerSource, "Account",
		[]string{"Header", "Footer"}, "Statement", "", "field")
	require.NoError(t, err)

	assert.Contains(t, out, "func (a *Statement) Header(owner string) string")
	assert.Contains(t, out, "func (Statement) Footer() string")
	assert.Contains(t, out, "a._statement.Header(a.owner)")
	assert.Contains(t, out, "Statement{}.Footer()")
}

func TestApplyReturnsResult(t *testing.T) {
	out, result, err := Apply(ledgerSource, types.MoveRequest{
		SourceType: "Account",
		Methods:    []string{"Header"},
		TargetType: "Statement",
	}, "field")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "ledger", result.Package)
	assert.Equal(t, []string{"Header"}, result.Moved)
	assert.Equal(t, "_statement", result.AccessName)
	assert.True(t, result.AccessAdded)
	assert.Equal(t, 1, result.RewrittenUse)
	assert.NotEmpty(t, out)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		req  types.MoveRequest
		want error
	}{
		{"unknown source", types.MoveRequest{SourceType: "Bank", Methods: []string{"Header"}, TargetType: "Statement"}, ErrSourceNotFound},
		{"unknown target", types.MoveRequest{SourceType: "Account", Methods: []string{"Header"}, TargetType: "Bank"}, ErrTargetNotFound},
		{"unknown method", types.MoveRequest{SourceType: "Account", Methods: []string{"Nope"}, TargetType: "Statement"}, ErrMethodNotFound},
		{"empty batch", types.MoveRequest{SourceType: "Account", TargetType: "Statement"}, ErrNoChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Apply(ledgerSource, tt.req, "field")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyRejectsBrokenSource(t *testing.T) {
	_, _, err := Apply("package broken\nfunc {", types.MoveRequest{
		SourceType: "A",
		Methods:    []string{"M"},
		TargetType: "B",
	}, "field")
	assert.Error(t, err)
}

func TestOutputIsGofmtStable(t *testing.T) {
	out, err := MoveMultipleInstanceMethods(ledgerSource, "Account",
		[]string{"Header", "Footer"}, "Statement", "", "field")
	require.NoError(t, err)

	formatted, err := format.Source([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, string(formatted), out)
}
