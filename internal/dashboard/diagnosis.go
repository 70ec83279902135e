// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Diagnosis panel messages.
const (
	HealthyMessage = "State performing well. No high-stress districts!"
	WarningMessage = "High-stress districts identified:"
)

// recommendations is static copy: the list is the same for every state.
var recommendations = []string{
	"Increase Aadhaar enrollment camps for 0–5 age group",
	"Improve operator training in low-performing districts",
	"Deploy temporary mobile enrollment units",
	"Add more Aadhaar centers in rural belts",
	"Strengthen biometric quality through better devices",
}

// Recommendations returns a copy of the remediation actions.
func Recommendations() []string {
	out := make([]string, len(recommendations))
	copy(out, recommendations)
	return out
}

// Diagnosis lists a state's High districts and, when any exist, the
// recommended remediation actions.
type Diagnosis struct {
	State           string        `json:"state"`
	Healthy         bool          `json:"healthy"`
	Message         string        `json:"message"`
	HighDistricts   []DistrictRow `json:"high_districts,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// Diagnose inspects state over the full table.
func Diagnose(t *dataset.Table, state string) Diagnosis {
	d := Diagnosis{State: state}
	for _, r := range StateRecords(t, state) {
		if r.IsHigh() {
			d.HighDistricts = append(d.HighDistricts, toRow(r))
		}
	}
	if len(d.HighDistricts) == 0 {
		d.Healthy = true
		d.Message = HealthyMessage
		return d
	}
	d.Message = WarningMessage
	d.Recommendations = Recommendations()
	return d
}
