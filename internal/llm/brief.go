// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

// briefRows caps the ranking rows sent to the model.
const briefRows = 5

// BriefSystemPrompt frames the brief for the model.
const BriefSystemPrompt = `You are a public-health analyst writing for district administrators.
You receive a JSON digest of an AISI (child stress indicator) dashboard view.
Write a short plain-text brief of at most three paragraphs: what the numbers
show, which districts stand out, and what to watch next. Use only figures that
appear in the digest. Do not invent districts, states, or values. Do not
repeat the recommended actions list; it is shown separately.`

// ErrEmptyBrief is returned when the provider answers with no text.
var ErrEmptyBrief = errors.New("llm: provider returned an empty brief")

// Digest is the compact view summary sent to the model.
type Digest struct {
	Filter       dashboard.Filter        `json:"filter"`
	Metrics      dashboard.Metrics       `json:"metrics"`
	StateSummary *dashboard.StateSummary `json:"state_summary,omitempty"`
	Distribution []dashboard.Slice       `json:"distribution"`
	HighStress   []dashboard.DistrictRow `json:"high_stress,omitempty"`
	TopDistricts []dashboard.DistrictRow `json:"top_districts,omitempty"`
	Healthy      *bool                   `json:"healthy,omitempty"`
}

// NewDigest condenses vm into a Digest.
func NewDigest(vm *dashboard.ViewModel) Digest {
	d := Digest{
		Filter:       vm.Filter,
		Metrics:      vm.Metrics,
		StateSummary: vm.StateSummary,
		Distribution: vm.Distribution,
		HighStress:   head(vm.HighStress.Rows, briefRows),
		TopDistricts: head(vm.TopDistricts, briefRows),
	}
	if vm.Diagnosis != nil {
		healthy := vm.Diagnosis.Healthy
		d.Healthy = &healthy
	}
	return d
}

func head(rows []dashboard.DistrictRow, n int) []dashboard.DistrictRow {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// BriefRequest builds the completion request for vm.
func BriefRequest(vm *dashboard.ViewModel, model string) (Request, error) {
	digest, err := json.MarshalIndent(NewDigest(vm), "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal digest: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dashboard: %s\n", vm.Title)
	if vm.Source != "" {
		fmt.Fprintf(&b, "Dataset: %s\n", vm.Source)
	}
	b.WriteString("Digest:\n")
	b.Write(digest)
	b.WriteString("\n")

	temp := 0.2
	return Request{
		Prompt:      b.String(),
		System:      BriefSystemPrompt,
		Model:       model,
		Temperature: &temp,
	}, nil
}

// Brief asks p for a narrative summary of vm.
func Brief(ctx context.Context, p Provider, vm *dashboard.ViewModel, model string) (string, error) {
	req, err := BriefRequest(vm, model)
	if err != nil {
		return "", err
	}
	resp, err := p.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	slog.Debug("brief received", "model", resp.Model, "tokens", resp.Usage.Total())
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", ErrEmptyBrief
	}
	return text, nil
}
