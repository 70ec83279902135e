// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"math"
	"sort"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Default ranking sizes.
const (
	HighStressLimit    = 15
	TopComparisonLimit = 20
)

// NoHighStressMessage is shown when the filtered view has no High rows.
const NoHighStressMessage = "No high-stress districts in selected filters."

// Ranking is the high-stress bar chart content.
type Ranking struct {
	Rows    []DistrictRow `json:"rows"`
	Message string        `json:"message,omitempty"`
}

// Empty reports whether the ranking has nothing to chart.
func (r Ranking) Empty() bool { return len(r.Rows) == 0 }

// SortByChildRatio returns a copy of records ordered by child_ratio
// descending. Equal values keep table order and NaN sorts last.
func SortByChildRatio(records []dataset.Record) []dataset.Record {
	out := make([]dataset.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ChildRatio, out[j].ChildRatio
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})
	return out
}

// Largest returns up to n records with the greatest child_ratio, ordered by
// rank. NaN values never qualify.
func Largest(records []dataset.Record, n int) []dataset.Record {
	valid := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if !math.IsNaN(r.ChildRatio) {
			valid = append(valid, r)
		}
	}
	sorted := SortByChildRatio(valid)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// HighStressRanking ranks the High rows of records, keeping the top n.
func HighStressRanking(records []dataset.Record, n int) Ranking {
	var high []dataset.Record
	for _, r := range records {
		if r.IsHigh() {
			high = append(high, r)
		}
	}
	top := Largest(high, n)
	if len(top) == 0 {
		return Ranking{Message: NoHighStressMessage}
	}
	return Ranking{Rows: toRows(top)}
}

// TopByChildRatio returns the first n records after sorting by child_ratio.
func TopByChildRatio(records []dataset.Record, n int) []DistrictRow {
	sorted := SortByChildRatio(records)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return toRows(sorted)
}
