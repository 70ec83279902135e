// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io/fs"
	"os"
)

// MockFileSystem is a test double for FileSystem. A nil function field
// falls through to OsFileSystem, so tests override only what they need.
type MockFileSystem struct {
	AbsFn      func(path string) (string, error)
	StatFn     func(name string) (os.FileInfo, error)
	OpenFn     func(name string) (*os.File, error)
	CreateFn   func(name string) (*os.File, error)
	ReadFileFn func(name string) ([]byte, error)
	WalkDirFn  func(root string, fn fs.WalkDirFunc) error
}

var osFS OsFileSystem

// Abs calls AbsFn if set.
func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return osFS.Abs(path)
}

// Stat calls StatFn if set.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return osFS.Stat(name)
}

// Open calls OpenFn if set.
func (m *MockFileSystem) Open(name string) (*os.File, error) {
	if m.OpenFn != nil {
		return m.OpenFn(name)
	}
	return osFS.Open(name)
}

// Create calls CreateFn if set.
func (m *MockFileSystem) Create(name string) (*os.File, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return osFS.Create(name)
}

// ReadFile calls ReadFileFn if set.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return osFS.ReadFile(name)
}

// WalkDir calls WalkDirFn if set.
func (m *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	if m.WalkDirFn != nil {
		return m.WalkDirFn(root, fn)
	}
	return osFS.WalkDir(root, fn)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
