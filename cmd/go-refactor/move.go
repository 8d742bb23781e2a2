// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	astx "github.com/petar-djukic/go-refactor/internal/ast"
	"github.com/petar-djukic/go-refactor/internal/diff"
	gitpkg "github.com/petar-djukic/go-refactor/internal/git"
	"github.com/petar-djukic/go-refactor/internal/logger"
	"github.com/petar-djukic/go-refactor/pkg/refactor"
	"github.com/petar-djukic/go-refactor/pkg/types"
)

// newMoveCmd creates the "move" command.
func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <file.go>",
		Short: "Move instance methods to another struct",
		Long:  "Move rewrites the file so the named methods live on the target struct, adding an access member and redirecting call sites as needed.",
		Args:  cobra.ExactArgs(1),
		RunE:  runMove,
	}

	cmd.Flags().String("from", "", "Source struct name (required)")
	cmd.Flags().String("to", "", "Target struct name (required)")
	cmd.Flags().StringArrayP("method", "m", nil, "Method to move; repeat for a batch (required)")
	cmd.Flags().String("access-name", "", "Access member name (generated when empty)")
	cmd.Flags().Bool("diff", false, "Print the diff instead of writing the file")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("method")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	methods, _ := cmd.Flags().GetStringArray("method")
	accessName, _ := cmd.Flags().GetString("access-name")
	preview, _ := cmd.Flags().GetBool("diff")

	req := types.MoveRequest{
		SourceType: from,
		Methods:    methods,
		TargetType: to,
		AccessName: accessName,
	}

	return applyMove(cmd, args[0], preview, req, func(src string) (string, *types.MoveResult, error) {
		return refactor.Apply(src, req, cfg.Access.Kind)
	})
}

// newMoveStaticCmd creates the "move-static" command.
func newMoveStaticCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move-static <file.go>",
		Short: "Move a dependency-free method to another struct",
		Long:  "Move-static rebinds the method to an unnamed receiver on the target struct and rewrites call sites to the composite literal form.",
		Args:  cobra.ExactArgs(1),
		RunE:  runMoveStatic,
	}

	cmd.Flags().StringP("method", "m", "", "Method to move (required)")
	cmd.Flags().String("to", "", "Target struct name (required)")
	cmd.Flags().Bool("diff", false, "Print the diff instead of writing the file")
	cmd.MarkFlagRequired("method")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runMoveStatic(cmd *cobra.Command, args []string) error {
	method, _ := cmd.Flags().GetString("method")
	to, _ := cmd.Flags().GetString("to")
	preview, _ := cmd.Flags().GetBool("diff")

	req := types.MoveRequest{Methods: []string{method}, TargetType: to}

	return applyMove(cmd, args[0], preview, req, func(src string) (string, *types.MoveResult, error) {
		out, err := refactor.MoveStaticMethod(src, method, to)
		if err != nil {
			return "", nil, err
		}
		result := &types.MoveResult{Moved: []string{method}, MadeStatic: []string{method}}
		return out, result, nil
	})
}

// applyMove runs one rewrite against the file at path, then either
// prints the diff or writes the result back and commits it.
func applyMove(cmd *cobra.Command, path string, preview bool, req types.MoveRequest, rewrite func(string) (string, *types.MoveResult, error)) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, result, err := rewrite(string(src))
	if err != nil {
		return fmt.Errorf("moving: %w", err)
	}

	if preview {
		fmt.Fprint(cmd.OutOrStdout(), diff.Render(string(src), out))
		return nil
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}
	if repo != nil {
		if err := repo.HandleDirty(); err != nil {
			return fmt.Errorf("preparing worktree: %w", err)
		}
	}

	if err := astx.WriteText(path, []byte(out)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	stats := diff.Count(string(src), out)
	logger.Info("moved %d method(s) to %s (%d call sites redirected, +%d/-%d lines)",
		len(result.Moved), req.TargetType, result.RewrittenUse, stats.Added, stats.Removed)

	if repo != nil {
		rel, err := workdirRelative(path)
		if err != nil {
			return err
		}
		if err := repo.AutoCommit([]string{rel}, req, result); err != nil {
			return fmt.Errorf("committing: %w", err)
		}
	}

	return nil
}

// openRepo opens the repository at the configured workdir. Git being
// disabled or absent is not an error; both yield a nil repo.
func openRepo() (*gitpkg.Repo, error) {
	if cfg.Git.Disabled {
		return nil, nil
	}

	repo, err := gitpkg.Open(gitpkg.Config{
		WorkDir:     cfg.WorkDir,
		AutoCommit:  cfg.Git.AutoCommit,
		DirtyCommit: cfg.Git.DirtyCommit,
	})
	if errors.Is(err, gitpkg.ErrNoGit) {
		logger.Debug("no git repository at %s, skipping git integration", cfg.WorkDir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// workdirRelative converts path into a path relative to the workdir,
// as go-git's staging wants.
func workdirRelative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	base, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", fmt.Errorf("%s is outside the workdir %s: %w", path, base, err)
	}
	return rel, nil
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last go-refactor commit",
		Long:  "Undo performs a soft reset of the last commit if it was made by go-refactor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := gitpkg.Open(gitpkg.Config{WorkDir: cfg.WorkDir})
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			subject, err := repo.LastMoveSubject()
			if err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			if err := repo.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			logger.Info("reverted %q", subject)
			return nil
		},
	}
}
