// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git provides auto-commit, dirty file handling, and undo for
// applied refactorings. Every commit the tool creates carries a
// trailer so undo never touches a commit a person made.
package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	refactorTrailer = "Refactored-By: go-refactor <noreply@go-refactor>"
	dirtyCommitMsg  = "go-refactor: save uncommitted changes before move"
)

// ErrNotRefactorCommit is returned when undo targets a commit not made by go-refactor.
var ErrNotRefactorCommit = errors.New("not a go-refactor commit")

// ErrDirtyWorkTree is returned when uncommitted changes exist and DirtyCommit is false.
var ErrDirtyWorkTree = errors.New("uncommitted changes exist")

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// Config configures git integration behavior.
type Config struct {
	WorkDir     string // Repository working directory
	AutoCommit  bool   // Create commits after applied moves (default true)
	DirtyCommit bool   // Commit dirty files before moves (default true)
}

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
	cfg  Config
}

// Open opens an existing git repository at the configured work directory.
// Returns ErrNoGit if the directory is not a git repository.
func Open(cfg Config) (*Repo, error) {
	r, err := gogit.PlainOpen(cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r, cfg: cfg}, nil
}

// IsDirty returns true if the working tree has uncommitted changes
// (either staged or unstaged).
func (r *Repo) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return !status.IsClean(), nil
}

// headCommit resolves HEAD to its commit object.
func (r *Repo) headCommit() (*object.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}
	return commit, nil
}

// hasRefactorTrailer reports whether the trailer appears as a line of
// its own in the message. A mention of the trailer text inside a
// sentence does not mark the commit as ours.
func hasRefactorTrailer(msg string) bool {
	for _, line := range strings.Split(msg, "\n") {
		if strings.TrimSpace(line) == refactorTrailer {
			return true
		}
	}
	return false
}

// IsRefactorCommit checks whether the HEAD commit was made by
// go-refactor by looking for the Refactored-By trailer.
func (r *Repo) IsRefactorCommit() (bool, error) {
	commit, err := r.headCommit()
	if err != nil {
		return false, err
	}
	return hasRefactorTrailer(commit.Message), nil
}

// LastMoveSubject returns the subject line of the HEAD commit when it
// was made by go-refactor, and ErrNotRefactorCommit otherwise.
func (r *Repo) LastMoveSubject() (string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return "", err
	}
	if !hasRefactorTrailer(commit.Message) {
		return "", ErrNotRefactorCommit
	}
	subject, _, _ := strings.Cut(commit.Message, "\n")
	return subject, nil
}

// lastCommitMessage returns the message of the HEAD commit.
func (r *Repo) lastCommitMessage() (string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// commitCount returns the total number of commits reachable from HEAD.
func (r *Repo) commitCount() (int, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{})
	if err != nil {
		return 0, err
	}
	count := 0
	err = iter.ForEach(func(c *object.Commit) error {
		count++
		return nil
	})
	return count, err
}
