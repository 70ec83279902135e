// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package report renders a dashboard view as a terminal report built from
// pluggable sections. Each section reads the view model and writes one
// titled block.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

// ErrSectionInactive indicates a section does not apply to the current
// filter, e.g. a state-only panel while the state filter is "All".
var ErrSectionInactive = errors.New("section inactive for current filter")

// Section is one block of the report.
type Section interface {
	// Name returns the unique identifier (e.g., "high-stress").
	Name() string

	// Description returns a human-readable summary of the section.
	Description() string

	// Analyze prepares the section from vm. It returns ErrSectionInactive
	// (possibly wrapped) when the section has nothing to show for vm.Filter.
	Analyze(vm *dashboard.ViewModel) error

	// Render writes the prepared section to w.
	Render(w io.Writer) error
}

// Factory builds a fresh Section. Render calls it once per report so that
// concurrent renders never share section state.
type Factory func() Section

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
	order    []string
)

// Register adds a section factory. It panics on a duplicate name.
func Register(f Factory) {
	mu.Lock()
	defer mu.Unlock()
	name := f().Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = f
	order = append(order, name)
}

// Get returns a new instance of the named section, or nil.
func Get(name string) Section {
	mu.RLock()
	f := registry[name]
	mu.RUnlock()
	if f == nil {
		return nil
	}
	return f()
}

// List returns section names in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResolveSections keeps the known names of filter, in the order given.
// An empty filter selects every section.
func ResolveSections(filter []string) ([]string, []string) {
	if len(filter) == 0 {
		return List(), nil
	}
	mu.RLock()
	defer mu.RUnlock()
	var names, unknown []string
	for _, name := range filter {
		if _, ok := registry[name]; ok {
			names = append(names, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return names, unknown
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Factory)
	order = nil
}

// builtin lists the built-in sections in report order.
var builtin = []Factory{
	func() Section { return &previewSection{} },
	func() Section { return &filteredSection{} },
	func() Section { return &metricsSection{} },
	func() Section { return &stateSummarySection{} },
	func() Section { return &distributionSection{} },
	func() Section { return &highStressSection{} },
	func() Section { return &topDistrictsSection{} },
	func() Section { return &diagnosisSection{} },
}

func init() {
	for _, f := range builtin {
		Register(f)
	}
}
