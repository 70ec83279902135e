// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitRepoLocator_DetectsParentRepo(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	_, err = git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "data", "raw")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	root, err := GitRepoLocator{}.WorktreeRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestGitRepoLocator_NoRepo(t *testing.T) {
	_, err := GitRepoLocator{}.WorktreeRoot(t.TempDir())
	assert.Error(t, err)
}

func TestMockRepoLocator(t *testing.T) {
	m := &MockRepoLocator{}
	_, err := m.WorktreeRoot("/x")
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)

	m.Root = "/repo"
	root, err := m.WorktreeRoot("/repo/sub")
	require.NoError(t, err)
	assert.Equal(t, "/repo", root)
	assert.Equal(t, []string{"/x", "/repo/sub"}, m.Calls)
}
