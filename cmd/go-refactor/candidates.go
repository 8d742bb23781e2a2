// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-refactor/internal/candidates"
)

// newCandidatesCmd creates the "candidates" command.
func newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates [dir]",
		Short: "Scan for move-method candidates",
		Long:  "Candidates parses every Go file under the directory and reports methods that reference another struct's members more than their own, ranked by score.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCandidates,
	}

	cmd.Flags().Int("min-refs", 0, "Minimum foreign member references (0 = config value)")
	cmd.Flags().StringArray("focus", nil, "Boost candidates moving toward these types")
	cmd.Flags().StringArray("exclude", nil, "Extra directory names to skip")
	cmd.Flags().Int("concurrency", 0, "Parser workers (0 = config value)")
	cmd.Flags().Int("top", 20, "Show at most this many candidates (0 = all)")
	cmd.Flags().Bool("json", false, "Emit candidates as JSON")

	return cmd
}

func runCandidates(cmd *cobra.Command, args []string) error {
	dir := cfg.WorkDir
	if len(args) == 1 {
		dir = args[0]
	}

	minRefs, _ := cmd.Flags().GetInt("min-refs")
	focus, _ := cmd.Flags().GetStringArray("focus")
	exclude, _ := cmd.Flags().GetStringArray("exclude")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	top, _ := cmd.Flags().GetInt("top")
	asJSON, _ := cmd.Flags().GetBool("json")

	if minRefs == 0 {
		minRefs = cfg.Scan.MinForeignRefs
	}
	if concurrency == 0 {
		concurrency = cfg.Scan.Concurrency
	}
	exclude = append(exclude, cfg.Scan.Exclude...)

	found, err := candidates.Scan(dir, candidates.Options{
		Concurrency:    concurrency,
		Exclude:        exclude,
		MinForeignRefs: minRefs,
		Focus:          focus,
		Progress:       os.Stderr,
	})
	if err != nil {
		return err
	}

	if top > 0 && len(found) > top {
		found = found[:top]
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "no move candidates found")
		return nil
	}

	for _, c := range found {
		fmt.Fprintf(out, "%6.2f  %s.%s -> %s  (own %d, foreign %d)\n",
			c.Score, c.FromType, c.Method, c.ToType, c.OwnRefs, c.ForeignRefs)
		fmt.Fprintf(out, "        %s:%d  %s\n", c.FilePath, c.Line, c.Signature)
	}
	return nil
}
