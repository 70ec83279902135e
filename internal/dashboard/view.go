// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Title is the dashboard heading.
const Title = "Aadhaar Inclusion Stress Index (AISI) – District Dashboard"

// PreviewRows is the number of rows shown in the dataset preview.
const PreviewRows = 5

// DistrictRow is the presentation form of a record.
type DistrictRow struct {
	State      string `json:"state"`
	District   string `json:"district"`
	Level      string `json:"AISI_level"`
	ChildRatio Ratio  `json:"child_ratio"`
}

func toRow(r dataset.Record) DistrictRow {
	return DistrictRow{
		State:      r.State,
		District:   r.District,
		Level:      r.Level,
		ChildRatio: Ratio(r.ChildRatio),
	}
}

func toRows(records []dataset.Record) []DistrictRow {
	rows := make([]DistrictRow, len(records))
	for i, r := range records {
		rows[i] = toRow(r)
	}
	return rows
}

// Settings tunes Render. Zero values select the defaults.
type Settings struct {
	// Source is the dataset path shown to the user.
	Source string

	HighStressLimit    int
	TopComparisonLimit int
}

func (s Settings) withDefaults() Settings {
	if s.HighStressLimit <= 0 {
		s.HighStressLimit = HighStressLimit
	}
	if s.TopComparisonLimit <= 0 {
		s.TopComparisonLimit = TopComparisonLimit
	}
	return s
}

// ViewModel is one complete render of the dashboard.
type ViewModel struct {
	Title          string        `json:"title"`
	Source         string        `json:"source,omitempty"`
	Filter         Filter        `json:"filter"`
	Options        FilterOptions `json:"options"`
	TableRows      int           `json:"table_rows"`
	Preview        []DistrictRow `json:"preview"`
	Rows           []DistrictRow `json:"rows"`
	Metrics        Metrics       `json:"metrics"`
	StateSummary   *StateSummary `json:"state_summary,omitempty"`
	Distribution   []Slice       `json:"distribution"`
	HighStress     Ranking       `json:"high_stress"`
	HighLimit      int           `json:"high_stress_limit"`
	TopDistricts   []DistrictRow `json:"top_districts"`
	TopLimit       int           `json:"top_limit"`
	Diagnosis      *Diagnosis    `json:"diagnosis,omitempty"`
	ExportFileName string        `json:"export_file_name"`

	header   []string
	filtered []dataset.Record
}

// Render derives the whole dashboard for f. The level filter never affects
// the state summary, diagnosis or distribution, which read the full table.
func Render(t *dataset.Table, f Filter, s Settings) *ViewModel {
	s = s.withDefaults()
	f = f.Normalized()
	filtered := Apply(t, f)

	vm := &ViewModel{
		Title:          Title,
		Source:         s.Source,
		Filter:         f,
		Options:        Options(t),
		TableRows:      t.Len(),
		Rows:           toRows(filtered),
		Metrics:        ComputeMetrics(filtered),
		Distribution:   Distribution(t),
		HighStress:     HighStressRanking(filtered, s.HighStressLimit),
		HighLimit:      s.HighStressLimit,
		TopDistricts:   TopByChildRatio(filtered, s.TopComparisonLimit),
		TopLimit:       s.TopComparisonLimit,
		ExportFileName: dataset.ExportFileName,
		filtered:       filtered,
	}
	if t != nil {
		vm.header = t.Header
		n := min(PreviewRows, len(t.Records))
		vm.Preview = toRows(t.Records[:n])
	}
	if f.HasState() {
		summary := Summarize(t, f.State)
		vm.StateSummary = &summary
		diag := Diagnose(t, f.State)
		vm.Diagnosis = &diag
	}
	return vm
}

// Header returns the source column names for export.
func (vm *ViewModel) Header() []string { return vm.header }

// Filtered returns the records of the filtered view, in table order.
func (vm *ViewModel) Filtered() []dataset.Record { return vm.filtered }

// ExportCSV encodes the filtered view as the downloadable CSV.
func (vm *ViewModel) ExportCSV() ([]byte, error) {
	return dataset.EncodeCSV(vm.header, vm.filtered)
}
