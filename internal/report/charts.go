// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

type distributionSection struct {
	slices []dashboard.Slice
}

func (s *distributionSection) Name() string { return "distribution" }
func (s *distributionSection) Description() string {
	return "AISI level distribution across all districts"
}

func (s *distributionSection) Analyze(vm *dashboard.ViewModel) error {
	s.slices = vm.Distribution
	return nil
}

func (s *distributionSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("AISI Level Distribution"))
	width := 0
	for _, sl := range s.slices {
		width = max(width, utf8.RuneCountInString(sl.Level))
	}
	for _, sl := range s.slices {
		label := pad(sl.Level, width, AlignLeft)
		_, _ = fmt.Fprintf(w, "  %s  %5d  %5.1f%%  %s\n",
			label, sl.Count, sl.Percent, bar(sl.Percent, 100))
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

type highStressSection struct {
	ranking dashboard.Ranking
	limit   int
}

func (s *highStressSection) Name() string { return "high-stress" }
func (s *highStressSection) Description() string {
	return "High-stress districts ranked by child_ratio"
}

func (s *highStressSection) Analyze(vm *dashboard.ViewModel) error {
	s.ranking = vm.HighStress
	s.limit = vm.HighLimit
	return nil
}

func (s *highStressSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("Top %d High-Stress Districts", s.limit)))
	if s.ranking.Empty() {
		msg := s.ranking.Message
		if msg == "" {
			msg = dashboard.NoHighStressMessage
		}
		_, _ = fmt.Fprintf(w, "  %s\n\n", info(msg))
		return nil
	}
	renderBars(w, s.ranking.Rows)
	return nil
}

type topDistrictsSection struct {
	rows  []dashboard.DistrictRow
	limit int
}

func (s *topDistrictsSection) Name() string { return "top-districts" }
func (s *topDistrictsSection) Description() string {
	return "Districts with the largest child_ratio in the filtered view"
}

func (s *topDistrictsSection) Analyze(vm *dashboard.ViewModel) error {
	s.rows = vm.TopDistricts
	s.limit = vm.TopLimit
	return nil
}

func (s *topDistrictsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("Top %d Districts by Child Ratio", s.limit)))
	if len(s.rows) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n\n", info("No districts in selected filters."))
		return nil
	}
	renderBars(w, s.rows)
	return nil
}

// renderBars draws one labelled bar per row, scaled to the first row's
// child_ratio when rows are sorted descending.
func renderBars(w io.Writer, rows []dashboard.DistrictRow) {
	width := 0
	peak := 0.0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r.District))
		if v := float64(r.ChildRatio); !r.ChildRatio.IsNaN() && v > peak {
			peak = v
		}
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "  %s  %6s  %s\n",
			pad(r.District, width, AlignLeft), r.ChildRatio, colorForLevel(r.Level).Sprint(bar(float64(r.ChildRatio), peak)))
	}
	_, _ = fmt.Fprintln(w)
}
