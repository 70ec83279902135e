// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package dashboard derives everything the AISI dashboard shows from a
// dataset table and a filter selection. Render is pure: it reads the table,
// never mutates it, and returns a ViewModel that presenters only format.
package dashboard

import (
	"sort"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// All is the sentinel selection that disables a filter.
const All = "All"

// Filter is the current state and AISI level selection.
type Filter struct {
	State string `json:"state"`
	Level string `json:"level"`
}

// Normalized returns f with empty selections replaced by All.
func (f Filter) Normalized() Filter {
	if f.State == "" {
		f.State = All
	}
	if f.Level == "" {
		f.Level = All
	}
	return f
}

// HasState reports whether a specific state is selected.
func (f Filter) HasState() bool {
	f = f.Normalized()
	return f.State != All
}

// Match reports whether r satisfies both equality predicates.
func (f Filter) Match(r dataset.Record) bool {
	f = f.Normalized()
	if f.State != All && r.State != f.State {
		return false
	}
	if f.Level != All && r.Level != f.Level {
		return false
	}
	return true
}

// Apply returns the records of t matching f, in table order.
func Apply(t *dataset.Table, f Filter) []dataset.Record {
	if t == nil {
		return nil
	}
	out := make([]dataset.Record, 0, len(t.Records))
	for _, r := range t.Records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterOptions lists the selectable values, each starting with All.
type FilterOptions struct {
	States []string `json:"states"`
	Levels []string `json:"levels"`
}

// Options returns All followed by the sorted distinct states and levels.
func Options(t *dataset.Table) FilterOptions {
	states := make(map[string]struct{})
	levels := make(map[string]struct{})
	if t != nil {
		for _, r := range t.Records {
			states[r.State] = struct{}{}
			levels[r.Level] = struct{}{}
		}
	}
	return FilterOptions{
		States: withAll(states),
		Levels: withAll(levels),
	}
}

func withAll(set map[string]struct{}) []string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return append([]string{All}, vals...)
}

// StateRecords returns the records of t whose state equals state.
func StateRecords(t *dataset.Table, state string) []dataset.Record {
	return Apply(t, Filter{State: state, Level: All})
}
