// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"math"
	"strconv"
)

// Ratio is a child_ratio value that may be NaN. It prints with two decimals
// and marshals NaN as JSON null.
type Ratio float64

// IsNaN reports whether r is undefined.
func (r Ratio) IsNaN() bool { return math.IsNaN(float64(r)) }

// String formats r with two decimals, or "NaN".
func (r Ratio) String() string {
	if r.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(r), 'f', 2, 64)
}

// MarshalJSON implements json.Marshaler.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.IsNaN() || math.IsInf(float64(r), 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(r), 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ratio(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*r = Ratio(v)
	return nil
}

// Round2 rounds v half away from zero to two decimal places, so a mean of
// exactly 0.925 shows as 0.93.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
