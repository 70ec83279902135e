// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

func TestMarkdownFormatter_StateView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testView(t, dashboard.Filter{State: "MH"}), &buf))

	out := buf.String()
	assert.Contains(t, out, "# "+dashboard.Title)
	assert.Contains(t, out, "**Filters:** State = MH | AISI Level = All")
	assert.Contains(t, out, "| Total Districts | 2 |")
	assert.Contains(t, out, "- Worst District: **Pune** (child_ratio 0.90)")
	assert.Contains(t, out, "| High | 2 | 50.0% |")
	assert.Contains(t, out, "| 1 | MH | Pune | High | 0.90 |")
	assert.Contains(t, out, "### Recommended Actions")
	assert.Contains(t, out, "## Filtered Results (2 rows)")
}

func TestMarkdownFormatter_NoHighStress(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testView(t, dashboard.Filter{Level: "Low"}), &buf))
	assert.Contains(t, buf.String(), "_"+dashboard.NoHighStressMessage+"_")
}

func TestMarkdownFormatter_SanitizesValues(t *testing.T) {
	vm := viewOf(t, "state,district,AISI_level,child_ratio\nMH,<b>Pune</b>,High,0.5\nMH,A|B,Low,0.1\n", dashboard.Filter{})

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(vm, &buf))

	out := buf.String()
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "| MH | Pune | High | 0.50 |")
	assert.Contains(t, out, `A\|B`)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestMarkdownFormatter_WriteError(t *testing.T) {
	err := NewMarkdownFormatter().Format(testView(t, dashboard.Filter{}), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
