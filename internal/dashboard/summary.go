// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"math"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// StateSummary describes one state over the full table, ignoring the
// level filter.
type StateSummary struct {
	State               string       `json:"state"`
	TotalDistricts      int          `json:"total_districts"`
	HighStressDistricts int          `json:"high_stress_districts"`
	LowStressDistricts  int          `json:"low_stress_districts"`
	WorstDistrict       *DistrictRow `json:"worst_district,omitempty"`
}

// Summarize builds the summary for state. WorstDistrict is the High row
// with the largest child_ratio; the first such row in table order wins ties.
func Summarize(t *dataset.Table, state string) StateSummary {
	s := StateSummary{State: state}
	var worst *dataset.Record
	for _, r := range StateRecords(t, state) {
		s.TotalDistricts++
		switch r.Level {
		case dataset.LevelHigh:
			s.HighStressDistricts++
			if math.IsNaN(r.ChildRatio) {
				continue
			}
			if worst == nil || r.ChildRatio > worst.ChildRatio {
				rec := r
				worst = &rec
			}
		case dataset.LevelLow:
			s.LowStressDistricts++
		}
	}
	if worst != nil {
		row := toRow(*worst)
		s.WorstDistrict = &row
	}
	return s
}
