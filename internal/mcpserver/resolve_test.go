// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

func TestResolveDataset_DefaultsWhenEmpty(t *testing.T) {
	defaults := dataset.LocateOptions{Path: "/configured/aisi_district_results.csv"}
	got, err := ResolveDataset("", "", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)
}

func TestResolveDataset_DataPath(t *testing.T) {
	path := writeDataset(t)
	got, err := ResolveDataset(path, "", dataset.LocateOptions{})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, want, got.Path)
	assert.Empty(t, got.Root)
}

func TestResolveDataset_DataWinsOverRoot(t *testing.T) {
	path := writeDataset(t)
	got, err := ResolveDataset(path, t.TempDir(), dataset.LocateOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Path)
	assert.Empty(t, got.Root)
}

func TestResolveDataset_RejectsBadData(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))

	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing", filepath.Join(dir, "missing.csv"), "does not exist"},
		{"directory", dir, "not a regular file"},
		{"wrong extension", txt, "not a .csv file"},
		{"null byte", "a\x00b.csv", "invalid path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDataset(tt.data, "", dataset.LocateOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveDataset_Root(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveDataset("", dir, dataset.LocateOptions{Path: "ignored.csv"})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got.Root)
	assert.Empty(t, got.Path)
}

func TestResolveDataset_RootMustBeDirectory(t *testing.T) {
	_, err := ResolveDataset("", writeDataset(t), dataset.LocateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	_, err = ResolveDataset("", filepath.Join(t.TempDir(), "nope"), dataset.LocateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestResolveDataset_Symlink(t *testing.T) {
	path := writeDataset(t)
	link := filepath.Join(t.TempDir(), "link.csv")
	if err := os.Symlink(path, link); err != nil {
		t.Skip("symlinks not supported")
	}
	got, err := ResolveDataset(link, "", dataset.LocateOptions{})
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, want, got.Path)
}
