// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aisi-dashboard/aisi/internal/testable"
)

// FileName is the dataset file discovered by directory search.
const FileName = "aisi_district_results.csv"

// NotFoundMessage is shown to the user when discovery finds nothing.
const NotFoundMessage = "CSV not found! Place `" + FileName + "` anywhere in the project folder."

// ErrNotFound is returned when no dataset file exists under the search root.
var ErrNotFound = errors.New("dataset not found")

// FS is the file system used for discovery, loading and export.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Repos finds the enclosing git worktree when no search root is configured.
var Repos testable.RepoLocator = testable.DefaultRepoLocator

// LocateOptions configures dataset resolution.
type LocateOptions struct {
	// Path is an explicit dataset path. When set, no search is performed.
	Path string

	// Root is the directory searched recursively for FileName. When empty,
	// the project root of the working directory is used.
	Root string
}

// Location is the resolved dataset.
type Location struct {
	// Path is the absolute path of the chosen file.
	Path string

	// Root is the directory that was searched; empty for explicit paths.
	Root string

	// Ignored lists other matching files, in walk order.
	Ignored []string

	// Explicit is true when Path came from configuration.
	Explicit bool
}

// Locate resolves the dataset file. An explicit path wins; otherwise Root is
// walked in lexical order and the first file named FileName is chosen.
func Locate(opts LocateOptions) (*Location, error) {
	if opts.Path != "" {
		abs, err := FS.Abs(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve dataset path %q: %w", opts.Path, err)
		}
		info, err := FS.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", opts.Path, ErrNotFound)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("dataset %q is a directory", opts.Path)
		}
		return &Location{Path: abs, Explicit: true}, nil
	}

	root := opts.Root
	if root == "" {
		root = ProjectRoot(".")
	}
	root, err := FS.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve search root %q: %w", opts.Root, err)
	}

	matches, err := findAll(root)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNotFound, root)
	}

	loc := &Location{Path: matches[0], Root: root, Ignored: matches[1:]}
	if len(loc.Ignored) > 0 {
		slog.Warn("multiple dataset candidates found, using the first",
			"chosen", loc.Path, "ignored", loc.Ignored)
	}
	return loc, nil
}

func findAll(root string) ([]string, error) {
	var matches []string
	err := FS.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == FileName {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", root, err)
	}
	return matches, nil
}

// ProjectRoot returns the git worktree root enclosing dir, or dir itself
// (made absolute) when it is not inside a repository.
func ProjectRoot(dir string) string {
	abs, err := FS.Abs(dir)
	if err != nil {
		return dir
	}
	root, err := Repos.WorktreeRoot(abs)
	if err != nil {
		slog.Debug("no git worktree, searching from directory", "dir", abs)
		return abs
	}
	return root
}

// Resolve locates and loads the dataset in one step.
func Resolve(opts LocateOptions) (*Location, *Table, error) {
	loc, err := Locate(opts)
	if err != nil {
		return nil, nil, err
	}
	t, err := Load(loc.Path)
	if err != nil {
		return loc, nil, err
	}
	return loc, t, nil
}

// Base returns the file name of the located dataset relative to its search
// root when possible.
func (l *Location) Base() string {
	if l.Root == "" {
		return filepath.Base(l.Path)
	}
	rel, err := filepath.Rel(l.Root, l.Path)
	if err != nil {
		return filepath.Base(l.Path)
	}
	return rel
}
