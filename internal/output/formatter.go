// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package output renders a dashboard view model in the supported document
// formats (html, html-dir, json, markdown).
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

// Formatter writes a rendered dashboard to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json", "markdown").
	Name() string

	// Format writes vm to w.
	Format(vm *dashboard.ViewModel, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files (e.g., index.html + assets/) instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(vm *dashboard.ViewModel, dir string) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// formatNames is called with fmtMu held.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
