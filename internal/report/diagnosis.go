// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

type diagnosisSection struct {
	diag dashboard.Diagnosis
}

func (s *diagnosisSection) Name() string { return "diagnosis" }
func (s *diagnosisSection) Description() string {
	return "High-stress districts of the selected state and recommended actions"
}

func (s *diagnosisSection) Analyze(vm *dashboard.ViewModel) error {
	if vm.Diagnosis == nil {
		return ErrSectionInactive
	}
	s.diag = *vm.Diagnosis
	return nil
}

func (s *diagnosisSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Diagnosis: "+s.diag.State))
	if s.diag.Healthy {
		_, _ = fmt.Fprintf(w, "  %s\n\n", colorGreen.Sprint(s.diag.Message))
		return nil
	}
	_, _ = fmt.Fprintf(w, "  %s\n", colorRed.Sprint(s.diag.Message))
	for _, r := range s.diag.HighDistricts {
		_, _ = fmt.Fprintf(w, "    - %s (child_ratio %s)\n", r.District, r.ChildRatio)
	}
	_, _ = fmt.Fprintf(w, "\n  %s\n", colorBold.Sprint("Recommended Actions:"))
	for i, rec := range s.diag.Recommendations {
		_, _ = fmt.Fprintf(w, "    %d. %s\n", i+1, rec)
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
