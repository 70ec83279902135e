// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

type metricsSection struct {
	m dashboard.Metrics
}

func (s *metricsSection) Name() string        { return "metrics" }
func (s *metricsSection) Description() string { return "Headline counts for the filtered view" }

func (s *metricsSection) Analyze(vm *dashboard.ViewModel) error {
	s.m = vm.Metrics
	return nil
}

func (s *metricsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Key Metrics"))
	_, _ = fmt.Fprintf(w, "  Total Districts:       %d\n", s.m.TotalDistricts)
	_, _ = fmt.Fprintf(w, "  High Stress Districts: %s\n", colorHighCount(s.m.HighStressDistricts))
	_, _ = fmt.Fprintf(w, "  Avg Child Ratio:       %s\n\n", s.m.AvgChildRatio)
	return nil
}

type stateSummarySection struct {
	sum dashboard.StateSummary
}

func (s *stateSummarySection) Name() string { return "state-summary" }
func (s *stateSummarySection) Description() string {
	return "Counts and worst district for the selected state"
}

func (s *stateSummarySection) Analyze(vm *dashboard.ViewModel) error {
	if vm.StateSummary == nil {
		return ErrSectionInactive
	}
	s.sum = *vm.StateSummary
	return nil
}

func (s *stateSummarySection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("State Summary: "+s.sum.State))
	_, _ = fmt.Fprintf(w, "  Total Districts:       %d\n", s.sum.TotalDistricts)
	_, _ = fmt.Fprintf(w, "  High Stress Districts: %s\n", colorHighCount(s.sum.HighStressDistricts))
	_, _ = fmt.Fprintf(w, "  Low Stress Districts:  %d\n", s.sum.LowStressDistricts)
	if worst := s.sum.WorstDistrict; worst != nil {
		_, _ = fmt.Fprintf(w, "  Worst District:        %s (child_ratio %s)\n", colorRed.Sprint(worst.District), worst.ChildRatio)
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
