// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

// Section statuses in JSON output.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// ReportJSON is the top-level JSON structure for --format json output.
type ReportJSON struct {
	Title     string               `json:"title"`
	Source    string               `json:"source,omitempty"`
	Generated string               `json:"generated"`
	Filter    dashboard.Filter     `json:"filter"`
	Metrics   dashboard.Metrics    `json:"metrics"`
	Sections  []SectionJSON        `json:"sections,omitempty"`
	View      *dashboard.ViewModel `json:"view,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Content     string `json:"content,omitempty"` // rendered text
}

// now is replaced in tests.
var now = time.Now

// Render writes the text report for vm. Sections that do not apply to the
// current filter are left out.
func Render(w io.Writer, vm *dashboard.ViewModel, sections []string) error {
	_, _ = fmt.Fprintf(w, "%s\n", colorBold.Sprint(vm.Title))
	if vm.Source != "" {
		_, _ = fmt.Fprintf(w, "Loaded: %s\n", vm.Source)
	}
	_, _ = fmt.Fprintf(w, "Filters: state=%s level=%s\n\n", vm.Filter.State, vm.Filter.Level)

	names, _ := ResolveSections(sections)
	for _, name := range names {
		sec := Get(name)
		if err := sec.Analyze(vm); err != nil {
			if errors.Is(err, ErrSectionInactive) {
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}
		if err := sec.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
	}
	return nil
}

// RenderJSON writes the report as machine-readable JSON. When full is set
// the whole view model is embedded as well.
func RenderJSON(w io.Writer, vm *dashboard.ViewModel, sections []string, full bool) error {
	out := ReportJSON{
		Title:     vm.Title,
		Source:    vm.Source,
		Generated: now().Format(time.RFC3339),
		Filter:    vm.Filter,
		Metrics:   vm.Metrics,
	}
	if full {
		out.View = vm
	}

	names, _ := ResolveSections(sections)
	for _, name := range names {
		sec := Get(name)
		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		if err := sec.Analyze(vm); err != nil {
			if errors.Is(err, ErrSectionInactive) {
				sj.Status = StatusSkipped
				out.Sections = append(out.Sections, sj)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Status = StatusOK
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
