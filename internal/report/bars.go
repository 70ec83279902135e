// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"strings"
)

// barWidth is the length of the longest bar in a text chart.
const barWidth = 30

// bar scales v against maxVal into a run of block characters. NaN,
// non-positive values and a non-positive maximum render as an empty bar.
func bar(v, maxVal float64) string {
	if math.IsNaN(v) || v <= 0 || math.IsNaN(maxVal) || maxVal <= 0 {
		return ""
	}
	n := int(math.Round(v / maxVal * barWidth))
	n = max(n, 1)
	return strings.Repeat("█", min(n, barWidth))
}
