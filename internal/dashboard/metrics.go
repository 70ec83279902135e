// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"math"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Metrics are the headline cards for the filtered view.
type Metrics struct {
	TotalDistricts      int   `json:"total_districts"`
	HighStressDistricts int   `json:"high_stress_districts"`
	AvgChildRatio       Ratio `json:"avg_child_ratio"`
}

// ComputeMetrics counts rows and High rows and averages child_ratio,
// rounded to two decimals. The average of no values is NaN.
func ComputeMetrics(records []dataset.Record) Metrics {
	m := Metrics{TotalDistricts: len(records)}
	for _, r := range records {
		if r.IsHigh() {
			m.HighStressDistricts++
		}
	}
	m.AvgChildRatio = Ratio(Round2(MeanChildRatio(records)))
	return m
}

// MeanChildRatio averages the non-NaN child_ratio values.
func MeanChildRatio(records []dataset.Record) float64 {
	var sum float64
	var n int
	for _, r := range records {
		if math.IsNaN(r.ChildRatio) {
			continue
		}
		sum += r.ChildRatio
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
