// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

const maxSubjectLength = 72

// GenerateMessage creates a conventional commit message for an applied
// move. The subject names the methods and structs involved; the body
// records what the rewrite produced so the commit stands on its own.
func GenerateMessage(req types.MoveRequest, result *types.MoveResult, modifiedFiles []string) string {
	msg := buildSubject(req, result)
	if body := buildBody(result, modifiedFiles); body != "" {
		msg += "\n\n" + body
	}
	msg += "\n\n" + refactorTrailer

	return msg
}

// buildSubject creates the first line of the commit message.
// Format: "refactor: move X to Y" (max 72 chars).
func buildSubject(req types.MoveRequest, result *types.MoveResult) string {
	var subject string
	switch {
	case len(result.Moved) == 1 && req.SourceType != "":
		subject = fmt.Sprintf("refactor: move %s.%s to %s", req.SourceType, result.Moved[0], req.TargetType)
	case len(result.Moved) == 1:
		subject = fmt.Sprintf("refactor: move %s to %s", result.Moved[0], req.TargetType)
	default:
		subject = fmt.Sprintf("refactor: move %d methods from %s to %s",
			len(result.Moved), req.SourceType, req.TargetType)
	}

	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}
	return subject
}

// buildBody lists the moved methods, the access member if one was
// added, and the rewritten files.
func buildBody(result *types.MoveResult, modifiedFiles []string) string {
	var buf strings.Builder

	static := make(map[string]bool, len(result.MadeStatic))
	for _, m := range result.MadeStatic {
		static[m] = true
	}

	buf.WriteString("Moved methods:\n")
	for _, m := range result.Moved {
		if static[m] {
			buf.WriteString(fmt.Sprintf("- %s (static)\n", m))
		} else {
			buf.WriteString(fmt.Sprintf("- %s\n", m))
		}
	}

	if result.AccessAdded {
		buf.WriteString(fmt.Sprintf("\nAdded access member %s.\n", result.AccessName))
	}
	if result.RewrittenUse > 0 {
		buf.WriteString(fmt.Sprintf("\nRedirected %d call sites.\n", result.RewrittenUse))
	}

	if len(modifiedFiles) > 0 {
		buf.WriteString("\nModified files:\n")
		for _, f := range modifiedFiles {
			buf.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}

	return strings.TrimRight(buf.String(), "\n")
}
