// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"sort"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// DonutHole is the inner radius of the distribution chart as a fraction of
// the outer radius.
const DonutHole = 0.4

// Slice is one AISI level in the distribution chart.
type Slice struct {
	Level   string  `json:"level"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution counts AISI levels over the whole table, most frequent first;
// equal counts keep first-appearance order.
func Distribution(t *dataset.Table) []Slice {
	if t.Len() == 0 {
		return nil
	}
	index := make(map[string]int)
	var slices []Slice
	for _, r := range t.Records {
		i, ok := index[r.Level]
		if !ok {
			i = len(slices)
			index[r.Level] = i
			slices = append(slices, Slice{Level: r.Level})
		}
		slices[i].Count++
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})
	total := float64(t.Len())
	for i := range slices {
		slices[i].Percent = float64(slices[i].Count) / total * 100
	}
	return slices
}
