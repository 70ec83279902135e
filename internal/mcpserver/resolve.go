// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the dashboard's read-only views as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// ResolveDataset turns tool arguments into dataset locate options. An
// explicit data path must be an existing regular .csv file; a search root
// must be an existing directory. Empty arguments fall back to defaults.
func ResolveDataset(data, root string, defaults dataset.LocateOptions) (dataset.LocateOptions, error) {
	if data == "" && root == "" {
		return defaults, nil
	}
	if data != "" {
		path, err := resolveExisting(data)
		if err != nil {
			return dataset.LocateOptions{}, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return dataset.LocateOptions{}, fmt.Errorf("data %q does not exist", data)
		}
		if !info.Mode().IsRegular() {
			return dataset.LocateOptions{}, fmt.Errorf("data %q is not a regular file", data)
		}
		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			return dataset.LocateOptions{}, fmt.Errorf("data %q is not a .csv file", data)
		}
		return dataset.LocateOptions{Path: path}, nil
	}

	path, err := resolveExisting(root)
	if err != nil {
		return dataset.LocateOptions{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return dataset.LocateOptions{}, fmt.Errorf("root %q does not exist", root)
	}
	if !info.IsDir() {
		return dataset.LocateOptions{}, fmt.Errorf("root %q is not a directory", root)
	}
	return dataset.LocateOptions{Root: path}, nil
}

// resolveExisting returns the absolute, symlink-resolved form of p.
func resolveExisting(p string) (string, error) {
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("invalid path %q", p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", p, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", p)
	}
	return abs, nil
}
