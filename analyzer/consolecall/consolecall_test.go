// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package consolecall_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/petar-djukic/go-refactor/analyzer/consolecall"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name string
		dir  string
	}{
		{name: "Library", dir: "a"},
		{name: "MainExempt", dir: "mainpkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			analysistest.Run(t, testdata, consolecall.New(), tt.dir)
		})
	}
}
