// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package testable provides seams over the file system and git so that
// dataset discovery can be exercised in tests without touching real state.
package testable

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the subset of file system operations used when locating,
// reading and exporting datasets.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// Open opens the named file for reading.
	Open(name string) (*os.File, error)

	// Create creates or truncates the named file.
	Create(name string) (*os.File, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// WalkDir walks the file tree rooted at root in lexical order.
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OsFileSystem delegates to the os and path/filepath packages.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) { return filepath.Abs(path) }

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// Open wraps os.Open.
func (OsFileSystem) Open(name string) (*os.File, error) {
	return os.Open(name) //nolint:gosec // caller controls path
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// WalkDir wraps filepath.WalkDir.
func (OsFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
