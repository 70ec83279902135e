// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-git/v5"
)

// RepoLocator finds the git worktree that encloses a directory.
type RepoLocator interface {
	// WorktreeRoot returns the root of the worktree containing path.
	// It returns git.ErrRepositoryNotExists when path is not inside one.
	WorktreeRoot(path string) (string, error)
}

// GitRepoLocator is the production RepoLocator backed by go-git.
type GitRepoLocator struct{}

// WorktreeRoot opens the repository with parent-directory detection and
// reports the root of its worktree.
func (GitRepoLocator) WorktreeRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

// DefaultRepoLocator is the production RepoLocator.
var DefaultRepoLocator RepoLocator = GitRepoLocator{}
