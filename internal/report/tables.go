// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

func districtTable(rows []dashboard.DistrictRow) *Table {
	tbl := NewTable(
		Column{Header: "State"},
		Column{Header: "District"},
		Column{Header: "AISI_level", Color: ColorLevel},
		Column{Header: "child_ratio", Align: AlignRight},
	)
	for _, r := range rows {
		tbl.AddRow(r.State, r.District, r.Level, r.ChildRatio.String())
	}
	return tbl
}

// previewSection shows the first rows of the loaded dataset.
type previewSection struct {
	rows  []dashboard.DistrictRow
	total int
}

func (s *previewSection) Name() string        { return "preview" }
func (s *previewSection) Description() string { return "First rows of the loaded dataset" }

func (s *previewSection) Analyze(vm *dashboard.ViewModel) error {
	s.rows = vm.Preview
	s.total = vm.TableRows
	return nil
}

func (s *previewSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Dataset Preview"))
	_, _ = fmt.Fprintf(w, "  %d of %d rows\n\n", len(s.rows), s.total)
	if err := districtTable(s.rows).Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// filteredSection lists every row matching the filter.
type filteredSection struct {
	filter dashboard.Filter
	rows   []dashboard.DistrictRow
}

func (s *filteredSection) Name() string        { return "filtered" }
func (s *filteredSection) Description() string { return "Rows matching the state and level filters" }

func (s *filteredSection) Analyze(vm *dashboard.ViewModel) error {
	s.filter = vm.Filter
	s.rows = vm.Rows
	return nil
}

func (s *filteredSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Filtered Results"))
	_, _ = fmt.Fprintf(w, "  State: %s  Level: %s  (%d rows)\n\n", s.filter.State, s.filter.Level, len(s.rows))
	if len(s.rows) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n\n", info("No rows match the selected filters."))
		return nil
	}
	if err := districtTable(s.rows).Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
