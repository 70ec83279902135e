// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

func fixedNow() time.Time { return time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC) }

// renderHTML renders the served page.
func renderHTML(t *testing.T, vm *dashboard.ViewModel) string {
	t.Helper()
	return renderWith(t, &HTMLFormatter{Interactive: true, nowFunc: fixedNow}, vm)
}

func renderWith(t *testing.T, f *HTMLFormatter, vm *dashboard.ViewModel) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(vm, &buf))
	return buf.String()
}

func TestHTMLFormatter_AllStates(t *testing.T) {
	html := renderHTML(t, testView(t, dashboard.Filter{}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>"+dashboard.Title+"</title>")
	assert.Contains(t, html, "Generated 2026-02-12 10:00 UTC")
	assert.Contains(t, html, "Loaded: data/aisi_district_results.csv")
	assert.Contains(t, html, `<option value="All" selected>All</option>`)
	assert.Contains(t, html, `<option value="MH">MH</option>`)
	assert.Contains(t, html, `id="chart-distribution"`)
	assert.Contains(t, html, `id="chart-high"`)
	assert.Contains(t, html, `"hole":0.4`)
	assert.Contains(t, html, "function renderVBar")
	assert.Contains(t, html, "rotate(-80")
	assert.Contains(t, html, "/download?level=All")
	assert.Contains(t, html, "Download filtered data (AISI_filtered_districts.csv)")

	assert.NotContains(t, html, `id="state-summary"`)
	assert.NotContains(t, html, `id="diagnosis"`)
}

func TestHTMLFormatter_StateView(t *testing.T) {
	html := renderHTML(t, testView(t, dashboard.Filter{State: "MH"}))

	assert.Contains(t, html, `<option value="MH" selected>MH</option>`)
	assert.Contains(t, html, "State Summary: MH")
	assert.Contains(t, html, "Worst District: <strong>Pune</strong> (child_ratio 0.90)")
	assert.Contains(t, html, "Diagnosis: MH")
	assert.Contains(t, html, dashboard.WarningMessage)
	for _, rec := range dashboard.Recommendations() {
		assert.Contains(t, html, rec)
	}
}

func TestHTMLFormatter_HealthyState(t *testing.T) {
	vm := viewOf(t, "state,district,AISI_level,child_ratio\nKA,Mysuru,Low,0.1\n", dashboard.Filter{State: "KA"})
	html := renderHTML(t, vm)

	assert.Contains(t, html, dashboard.HealthyMessage)
	assert.NotContains(t, html, "Recommended Actions")
}

func TestHTMLFormatter_NoHighStress(t *testing.T) {
	html := renderHTML(t, testView(t, dashboard.Filter{Level: "Low"}))

	assert.Contains(t, html, dashboard.NoHighStressMessage)
	assert.NotContains(t, html, `id="chart-high"`)
}

func TestHTMLFormatter_EmptyViewShowsNaN(t *testing.T) {
	html := renderHTML(t, testView(t, dashboard.Filter{State: "UP", Level: "Low"}))

	assert.Contains(t, html, `<div class="value">NaN</div>`)
	assert.Contains(t, html, "No rows match the selected filters.")
}

func TestHTMLFormatter_EscapesDatasetValues(t *testing.T) {
	vm := viewOf(t, "state,district,AISI_level,child_ratio\nMH,<script>alert(1)</script>,High,0.5\n", dashboard.Filter{})
	html := renderHTML(t, vm)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestHTMLFormatter_StandalonePage(t *testing.T) {
	vm := testView(t, dashboard.Filter{State: "MH"})
	html := renderWith(t, &HTMLFormatter{nowFunc: fixedNow}, vm)

	assert.NotContains(t, html, DownloadPath)
	assert.NotContains(t, html, "<form")
	assert.Contains(t, html, "State: <strong>MH</strong>")

	want, err := vm.ExportCSV()
	require.NoError(t, err)
	href := `href="data:text/csv;base64,` + base64.StdEncoding.EncodeToString(want) + `"`
	assert.Contains(t, html, href)
	assert.Contains(t, html, `download="AISI_filtered_districts.csv"`)
}

func TestHTMLFormatter_RegisteredFormatterIsStandalone(t *testing.T) {
	f, err := GetFormatter("html")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Format(testView(t, dashboard.Filter{}), &buf))
	assert.NotContains(t, buf.String(), `href="/download`)
	assert.Contains(t, buf.String(), `href="data:text/csv;base64,`)
}

func TestDownloadHref(t *testing.T) {
	assert.Equal(t, "/download?level=All&state=All", DownloadHref(dashboard.Filter{}))
	assert.Equal(t, "/download?level=High&state=Tamil+Nadu", DownloadHref(dashboard.Filter{State: "Tamil Nadu", Level: "High"}))
}

func TestWriteErrorPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteErrorPage(&buf, dataset.NotFoundMessage))

	assert.Contains(t, buf.String(), dashboard.Title)
	assert.Contains(t, buf.String(), "CSV not found!")
	assert.Contains(t, buf.String(), "aisi_district_results.csv")
}

func TestHTMLDirFormatter_FormatReturnsError(t *testing.T) {
	err := NewHTMLDirFormatter().Format(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output (-o)")
}

func TestHTMLDirFormatter_FormatDir(t *testing.T) {
	dir := t.TempDir()
	vm := testView(t, dashboard.Filter{State: "MH"})
	f := &HTMLDirFormatter{nowFunc: fixedNow}

	require.NoError(t, f.FormatDir(vm, dir))

	assert.FileExists(t, filepath.Join(dir, "assets", "dashboard.css"))
	assert.FileExists(t, filepath.Join(dir, "assets", "dashboard.js"))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	html := string(index)
	assert.Contains(t, html, `<link rel="stylesheet" href="assets/dashboard.css">`)
	assert.Contains(t, html, `<script src="assets/dashboard.js"></script>`)
	assert.Contains(t, html, `href="AISI_filtered_districts.csv"`)
	assert.NotContains(t, html, "<form")
	assert.Contains(t, html, "State: <strong>MH</strong>")

	got, err := os.ReadFile(filepath.Join(dir, dataset.ExportFileName))
	require.NoError(t, err)
	want, err := vm.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}
