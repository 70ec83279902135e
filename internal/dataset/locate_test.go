// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/testable"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withRepos(t *testing.T, r testable.RepoLocator) {
	t.Helper()
	orig := Repos
	Repos = r
	t.Cleanup(func() { Repos = orig })
}

func withFS(t *testing.T, m testable.FileSystem) {
	t.Helper()
	orig := FS
	FS = m
	t.Cleanup(func() { FS = orig })
}

func TestLocate_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.csv", sampleCSV)

	loc, err := Locate(LocateOptions{Path: path, Root: "/ignored"})
	require.NoError(t, err)
	assert.Equal(t, path, loc.Path)
	assert.True(t, loc.Explicit)
	assert.Empty(t, loc.Root)
	assert.Equal(t, "custom.csv", loc.Base())
}

func TestLocate_ExplicitPathMissing(t *testing.T) {
	_, err := Locate(LocateOptions{Path: filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocate_ExplicitPathIsDir(t *testing.T) {
	_, err := Locate(LocateOptions{Path: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestLocate_RecursiveSearch(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "data/out/"+FileName, sampleCSV)
	writeFile(t, dir, "data/other.csv", sampleCSV)

	loc, err := Locate(LocateOptions{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, want, loc.Path)
	assert.Equal(t, dir, loc.Root)
	assert.Empty(t, loc.Ignored)
	assert.False(t, loc.Explicit)
	assert.Equal(t, filepath.Join("data", "out", FileName), loc.Base())
}

func TestLocate_FirstMatchWinsAndOthersReported(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a/"+FileName, sampleCSV)
	second := writeFile(t, dir, "b/"+FileName, sampleCSV)
	third := writeFile(t, dir, "b/c/"+FileName, sampleCSV)

	loc, err := Locate(LocateOptions{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, first, loc.Path)
	assert.Equal(t, []string{second, third}, loc.Ignored)
}

func TestLocate_SkipsGitDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".git/"+FileName, sampleCSV)

	_, err := Locate(LocateOptions{Root: dir})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocate_SkipsHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".venv/lib/"+FileName, sampleCSV)
	writeFile(t, dir, ".cache/"+FileName, sampleCSV)
	want := writeFile(t, dir, "data/"+FileName, sampleCSV)

	loc, err := Locate(LocateOptions{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, want, loc.Path)
	assert.Empty(t, loc.Ignored)
}

func TestLocate_HiddenRootIsSearched(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".workspace")
	want := writeFile(t, root, FileName, sampleCSV)

	loc, err := Locate(LocateOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, want, loc.Path)
}

func TestLocate_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Locate(LocateOptions{Root: dir})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), dir)
}

func TestLocate_DefaultRootUsesProjectRoot(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "results/"+FileName, sampleCSV)
	withRepos(t, &testable.MockRepoLocator{Root: dir})

	loc, err := Locate(LocateOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, loc.Path)
	assert.Equal(t, dir, loc.Root)
}

func TestLocate_WalkError(t *testing.T) {
	withFS(t, &testable.MockFileSystem{
		WalkDirFn: func(root string, fn fs.WalkDirFunc) error {
			return fn(root, nil, errors.New("permission denied"))
		},
	})

	_, err := Locate(LocateOptions{Root: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestProjectRoot_FallsBackToDir(t *testing.T) {
	dir := t.TempDir()
	withRepos(t, &testable.MockRepoLocator{})

	assert.Equal(t, dir, ProjectRoot(dir))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, sampleCSV)

	loc, tbl, err := Resolve(LocateOptions{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), loc.Path)
	assert.Equal(t, 3, tbl.Len())
}
