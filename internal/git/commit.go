// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

const (
	authorName  = "go-refactor"
	authorEmail = "noreply@go-refactor"
)

// HandleDirty checks for uncommitted changes and either commits them
// separately or returns an error, depending on Config.DirtyCommit. A
// clean tree is a no-op. Keeping pre-existing edits in their own
// commit means Undo only ever reverts the move itself.
func (r *Repo) HandleDirty() error {
	dirty, err := r.IsDirty()
	if err != nil {
		return err
	}

	if !dirty {
		return nil
	}

	if !r.cfg.DirtyCommit {
		return ErrDirtyWorkTree
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if _, err := wt.Add("."); err != nil {
		return fmt.Errorf("staging dirty files: %w", err)
	}

	_, err = wt.Commit(dirtyCommitMsg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing dirty files: %w", err)
	}

	return nil
}

// AutoCommit stages the files rewritten by a move and creates a commit
// describing it, with the Refactored-By trailer. Only the named files
// are staged; unrelated working tree changes are left alone.
func (r *Repo) AutoCommit(modifiedFiles []string, req types.MoveRequest, result *types.MoveResult) error {
	if !r.cfg.AutoCommit {
		return nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	for _, f := range modifiedFiles {
		if _, err := wt.Add(f); err != nil {
			return fmt.Errorf("staging %s: %w", f, err)
		}
	}

	msg := GenerateMessage(req, result, modifiedFiles)

	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

// Undo reverts the last commit if it carries the Refactored-By trailer.
// Uses a soft reset to the parent, so the rewritten files stay in the
// working tree for inspection.
func (r *Repo) Undo() error {
	commit, err := r.headCommit()
	if err != nil {
		return err
	}
	if !hasRefactorTrailer(commit.Message) {
		return ErrNotRefactorCommit
	}

	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = wt.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}

	return nil
}
