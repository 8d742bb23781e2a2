// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diff renders line diffs between the original and rewritten
// source, for previewing a move before writing it out.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stats summarizes a diff.
type Stats struct {
	Added   int
	Removed int
}

// Render produces a line diff between before and after. Unchanged
// lines are prefixed with two spaces, removals with "- ", additions
// with "+ ". Identical inputs yield an empty string.
func Render(before, after string) string {
	if before == after {
		return ""
	}

	var buf strings.Builder
	for _, d := range lineDiffs(before, after) {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Count returns the number of added and removed lines between before
// and after.
func Count(before, after string) Stats {
	var s Stats
	if before == after {
		return s
	}
	for _, d := range lineDiffs(before, after) {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		case diffmatchpatch.DiffInsert:
			s.Added += n
		}
	}
	return s
}

// lineDiffs runs diff-match-patch in line mode so whole lines are the
// unit of change.
func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// splitLines splits text into lines without a trailing empty entry.
func splitLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
