// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the dashboard as a Markdown summary. Dataset
// strings are stripped of markup so a hostile CSV cannot inject HTML into
// renderers that allow it.
type MarkdownFormatter struct {
	policy *bluemonday.Policy
}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{policy: bluemonday.StrictPolicy()}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// mdWriter stops writing after the first error.
type mdWriter struct {
	w   io.Writer
	err error
}

func (mw *mdWriter) printf(format string, args ...any) {
	if mw.err != nil {
		return
	}
	if _, err := fmt.Fprintf(mw.w, format, args...); err != nil {
		mw.err = fmt.Errorf("write markdown: %w", err)
	}
}

// Format writes vm as Markdown to w.
func (m *MarkdownFormatter) Format(vm *dashboard.ViewModel, w io.Writer) error {
	mw := &mdWriter{w: w}

	mw.printf("# %s\n\n", vm.Title)
	if vm.Source != "" {
		mw.printf("**Loaded:** `%s`\n\n", vm.Source)
	}
	mw.printf("**Filters:** State = %s | AISI Level = %s\n\n", m.clean(vm.Filter.State), m.clean(vm.Filter.Level))

	mw.printf("## Key Metrics\n\n")
	mw.printf("| Metric | Value |\n|--------|-------|\n")
	mw.printf("| Total Districts | %d |\n", vm.Metrics.TotalDistricts)
	mw.printf("| High Stress Districts | %d |\n", vm.Metrics.HighStressDistricts)
	mw.printf("| Avg Child Ratio | %s |\n\n", vm.Metrics.AvgChildRatio)

	if s := vm.StateSummary; s != nil {
		mw.printf("## State Summary: %s\n\n", m.clean(s.State))
		mw.printf("- Total Districts: %d\n", s.TotalDistricts)
		mw.printf("- High Stress Districts: %d\n", s.HighStressDistricts)
		mw.printf("- Low Stress Districts: %d\n", s.LowStressDistricts)
		if worst := s.WorstDistrict; worst != nil {
			mw.printf("- Worst District: **%s** (child_ratio %s)\n", m.clean(worst.District), worst.ChildRatio)
		}
		mw.printf("\n")
	}

	mw.printf("## AISI Level Distribution\n\n")
	mw.printf("| AISI_level | Districts | Share |\n|------------|-----------|-------|\n")
	for _, sl := range vm.Distribution {
		mw.printf("| %s | %d | %.1f%% |\n", m.clean(sl.Level), sl.Count, sl.Percent)
	}
	mw.printf("\n")

	mw.printf("## Top %d High-Stress Districts\n\n", vm.HighLimit)
	if vm.HighStress.Empty() {
		mw.printf("_%s_\n\n", vm.HighStress.Message)
	} else {
		m.writeRows(mw, vm.HighStress.Rows)
	}

	mw.printf("## Top %d Districts by Child Ratio\n\n", vm.TopLimit)
	if len(vm.TopDistricts) == 0 {
		mw.printf("_No districts in selected filters._\n\n")
	} else {
		m.writeRows(mw, vm.TopDistricts)
	}

	if d := vm.Diagnosis; d != nil {
		mw.printf("## Diagnosis: %s\n\n", m.clean(d.State))
		mw.printf("%s\n\n", d.Message)
		for _, r := range d.HighDistricts {
			mw.printf("- %s (child_ratio %s)\n", m.clean(r.District), r.ChildRatio)
		}
		if len(d.Recommendations) > 0 {
			mw.printf("\n### Recommended Actions\n\n")
			for i, rec := range d.Recommendations {
				mw.printf("%d. %s\n", i+1, rec)
			}
		}
		mw.printf("\n")
	}

	mw.printf("## Filtered Results (%d rows)\n\n", len(vm.Rows))
	if len(vm.Rows) == 0 {
		mw.printf("_No rows match the selected filters._\n")
	} else {
		m.writeRows(mw, vm.Rows)
	}
	return mw.err
}

func (m *MarkdownFormatter) writeRows(mw *mdWriter, rows []dashboard.DistrictRow) {
	mw.printf("| # | State | District | AISI_level | child_ratio |\n")
	mw.printf("|---|-------|----------|------------|-------------|\n")
	for i, r := range rows {
		mw.printf("| %d | %s | %s | %s | %s |\n", i+1, m.clean(r.State), m.clean(r.District), m.clean(r.Level), r.ChildRatio)
	}
	mw.printf("\n")
}

// clean strips markup from a dataset value and escapes table pipes.
func (m *MarkdownFormatter) clean(s string) string {
	s = m.policy.Sanitize(s)
	return strings.ReplaceAll(s, "|", `\|`)
}
