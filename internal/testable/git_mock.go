// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-git/v5"
)

// MockRepoLocator is a test double for RepoLocator. With Root empty and
// Err nil it behaves as if no repository exists.
type MockRepoLocator struct {
	Root  string
	Err   error
	Calls []string
}

// WorktreeRoot records the call and returns Root or Err.
func (m *MockRepoLocator) WorktreeRoot(path string) (string, error) {
	m.Calls = append(m.Calls, path)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Root == "" {
		return "", git.ErrRepositoryNotExists
	}
	return m.Root, nil
}

// Compile-time interface check.
var _ RepoLocator = (*MockRepoLocator)(nil)
