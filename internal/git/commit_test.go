// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

func moveFixture() (types.MoveRequest, *types.MoveResult) {
	req := types.MoveRequest{SourceType: "Order", Methods: []string{"ShippingLabel"}, TargetType: "Customer"}
	result := &types.MoveResult{Moved: []string{"ShippingLabel"}, AccessName: "_customer", AccessAdded: true}
	return req, result
}

func TestHandleDirty_CleanRepo(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: true})
	require.NoError(t, err)

	// Clean repo: HandleDirty should be a no-op.
	require.NoError(t, repo.HandleDirty())

	// Commit count should still be 1 (only the initial commit).
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandleDirty_CommitsDirtyFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: true})
	require.NoError(t, err)

	// Create a dirty file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.go"), []byte("package main\n"), 0o644))

	require.NoError(t, repo.HandleDirty())

	// Should now be clean.
	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	// Commit count should be 2.
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The dirty commit message should match the expected message.
	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, dirtyCommitMsg, msg)
}

func TestHandleDirty_ReturnsErrorWhenDisabled(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: false})
	require.NoError(t, err)

	// Create a dirty file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.go"), []byte("package main\n"), 0o644))

	err = repo.HandleDirty()
	assert.ErrorIs(t, err, ErrDirtyWorkTree)
}

func TestAutoCommit_StagesAndCommits(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: true})
	require.NoError(t, err)

	// Simulate rewritten files.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.go"), []byte("package shop\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customer.go"), []byte("package shop\n"), 0o644))

	req, result := moveFixture()
	err = repo.AutoCommit([]string{"order.go", "customer.go"}, req, result)
	require.NoError(t, err)

	// Repo should be clean.
	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	// Commit message should carry the trailer and the move subject.
	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Contains(t, msg, refactorTrailer)
	assert.Contains(t, msg, "refactor: move Order.ShippingLabel to Customer")
}

func TestAutoCommit_OnlyStagesSpecifiedFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: true})
	require.NoError(t, err)

	// Create two files, but only commit one.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rewritten.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.go"), []byte("package main\n"), 0o644))

	req, result := moveFixture()
	err = repo.AutoCommit([]string{"rewritten.go"}, req, result)
	require.NoError(t, err)

	// Repo should still be dirty (unrelated.go is not committed).
	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestAutoCommit_DisabledIsNoop(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: false})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.go"), []byte("package shop\n"), 0o644))

	req, result := moveFixture()
	err = repo.AutoCommit([]string{"order.go"}, req, result)
	require.NoError(t, err)

	// Should still be dirty since AutoCommit is disabled.
	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)

	// Commit count should still be 1.
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUndo_RevertsRefactorCommit(t *testing.T) {
	dir := initTestRepo(t)

	// Add a go-refactor commit.
	addFileAndCommit(t, dir, "order.go", "package shop\n", "refactor: move Order.ShippingLabel to Customer\n\n"+refactorTrailer)

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	// Verify we have 2 commits.
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Undo should succeed.
	require.NoError(t, repo.Undo())

	// Back to 1 commit.
	count, err = repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The rewritten file should still exist in the working tree (soft reset).
	_, err = os.Stat(filepath.Join(dir, "order.go"))
	assert.NoError(t, err)
}

func TestUndo_RefusesForeignCommit(t *testing.T) {
	dir := initTestRepo(t)

	// The initial commit from initTestRepo doesn't have the trailer.
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	err = repo.Undo()
	assert.ErrorIs(t, err, ErrNotRefactorCommit)

	// Commit count should remain unchanged.
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUndo_PreservesChangesInWorkTree(t *testing.T) {
	dir := initTestRepo(t)

	// Add a go-refactor commit that modifies main.go.
	addFileAndCommit(t, dir, "main.go", "package main\n\nfunc main() { /* rewritten */ }\n", "refactor: move A.M to B\n\n"+refactorTrailer)

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, repo.Undo())

	// The rewritten content should still be in the working tree.
	content, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "rewritten")
}

func TestAutoCommit_IntegrationWithHandleDirty(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: true, DirtyCommit: true})
	require.NoError(t, err)

	// Create a pre-existing dirty file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.go"), []byte("package main\n"), 0o644))

	// HandleDirty commits the dirty file.
	require.NoError(t, repo.HandleDirty())

	// Now simulate an applied move.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.go"), []byte("package shop\n"), 0o644))

	req, result := moveFixture()
	err = repo.AutoCommit([]string{"order.go"}, req, result)
	require.NoError(t, err)

	// Should have 3 commits: initial, dirty save, move commit.
	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Last commit should be the go-refactor commit.
	ours, err := repo.IsRefactorCommit()
	require.NoError(t, err)
	assert.True(t, ours)
}
