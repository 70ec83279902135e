// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// DownloadPath is the server route that streams the filtered CSV.
const DownloadPath = "/download"

// HTMLFormatter writes the dashboard as a self-contained HTML page.
//
// A standalone page shows the active filter as text and embeds the filtered
// CSV in its download link. With Interactive set, the filter selects submit
// back to the page as a GET form and the download link points at
// DownloadPath; only the HTTP dashboard serves those routes.
type HTMLFormatter struct {
	Interactive bool

	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a formatter for standalone pages.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// NewServedHTMLFormatter returns a formatter for pages served by the HTTP
// dashboard.
func NewServedHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{Interactive: true}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

func pageTemplate() *template.Template {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlPageTemplate))
	})
	return htmlTmpl
}

// Format writes vm as a self-contained HTML dashboard to w.
func (h *HTMLFormatter) Format(vm *dashboard.ViewModel, w io.Writer) error {
	data := buildHTMLData(vm, h.now())
	if h.Interactive {
		data.Interactive = true
		data.DownloadHref = template.URL(DownloadHref(vm.Filter)) //nolint:gosec // relative server route
	} else {
		href, err := csvDataURL(vm)
		if err != nil {
			return err
		}
		data.DownloadHref = href
	}
	data.InlineCSS = template.CSS(dashboardCSS) //nolint:gosec // static stylesheet
	data.InlineJS = template.JS(dashboardJS)    //nolint:gosec // static script

	if err := pageTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

func (h *HTMLFormatter) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

// DownloadHref returns the download link for the filtered view of f.
func DownloadHref(f dashboard.Filter) string {
	f = f.Normalized()
	q := url.Values{}
	q.Set("state", f.State)
	q.Set("level", f.Level)
	return DownloadPath + "?" + q.Encode()
}

// csvDataURL embeds the filtered CSV as a base64 data URL.
func csvDataURL(vm *dashboard.ViewModel) (template.URL, error) {
	data, err := vm.ExportCSV()
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return template.URL("data:" + dataset.ExportMIMEType + ";base64," + base64.StdEncoding.EncodeToString(data)), nil //nolint:gosec // base64 payload
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	Title          string
	Source         string
	GeneratedAt    string
	Filter         dashboard.Filter
	Options        dashboard.FilterOptions
	TableRows      int
	Preview        []dashboard.DistrictRow
	Rows           []dashboard.DistrictRow
	Metrics        dashboard.Metrics
	StateSummary   *dashboard.StateSummary
	HighStress     dashboard.Ranking
	HighLimit      int
	TopLimit       int
	Diagnosis      *dashboard.Diagnosis
	ExportFileName string
	ChartData      map[string]any

	// Interactive renders the filter form; static pages show the filter
	// as text instead.
	Interactive  bool
	DownloadHref template.URL

	// InlineCSS and InlineJS are embedded when set; otherwise the page links
	// assets/dashboard.{css,js}.
	InlineCSS template.CSS
	InlineJS  template.JS
}

func buildHTMLData(vm *dashboard.ViewModel, now time.Time) htmlData {
	return htmlData{
		Title:          vm.Title,
		Source:         vm.Source,
		GeneratedAt:    now.UTC().Format("2006-01-02 15:04 UTC"),
		Filter:         vm.Filter,
		Options:        vm.Options,
		TableRows:      vm.TableRows,
		Preview:        vm.Preview,
		Rows:           vm.Rows,
		Metrics:        vm.Metrics,
		StateSummary:   vm.StateSummary,
		HighStress:     vm.HighStress,
		HighLimit:      vm.HighLimit,
		TopLimit:       vm.TopLimit,
		Diagnosis:      vm.Diagnosis,
		ExportFileName: vm.ExportFileName,
		ChartData:      buildHTMLChartData(vm),
	}
}

// buildHTMLChartData flattens the chart series for the page script. NaN
// ratios encode as null and are drawn as empty bars.
func buildHTMLChartData(vm *dashboard.ViewModel) map[string]any {
	cd := map[string]any{"hole": dashboard.DonutHole}

	levels := make([]string, len(vm.Distribution))
	counts := make([]int, len(vm.Distribution))
	percents := make([]float64, len(vm.Distribution))
	for i, s := range vm.Distribution {
		levels[i] = s.Level
		counts[i] = s.Count
		percents[i] = dashboard.Round2(s.Percent)
	}
	cd["levelLabels"] = levels
	cd["levelCounts"] = counts
	cd["levelPercents"] = percents

	if !vm.HighStress.Empty() {
		hl, hv := seriesOf(vm.HighStress.Rows)
		cd["highLabels"] = hl
		cd["highValues"] = hv
	}

	if len(vm.TopDistricts) > 0 {
		tl, tv := seriesOf(vm.TopDistricts)
		tc := make([]string, len(vm.TopDistricts))
		for i, r := range vm.TopDistricts {
			tc[i] = r.Level
		}
		cd["topLabels"] = tl
		cd["topValues"] = tv
		cd["topLevels"] = tc
	}
	return cd
}

func seriesOf(rows []dashboard.DistrictRow) ([]string, []dashboard.Ratio) {
	labels := make([]string, len(rows))
	values := make([]dashboard.Ratio, len(rows))
	for i, r := range rows {
		labels[i] = r.District
		values[i] = r.ChildRatio
	}
	return labels, values
}

var (
	errTmplOnce sync.Once
	errTmpl     *template.Template
)

// WriteErrorPage writes a minimal dashboard page that shows msg in place of
// the dashboard, e.g. when the dataset cannot be found.
func WriteErrorPage(w io.Writer, msg string) error {
	errTmplOnce.Do(func() {
		errTmpl = template.Must(template.New("error").Parse(htmlErrorTemplate))
	})
	data := struct {
		Title   string
		Message string
		CSS     template.CSS
	}{dashboard.Title, msg, template.CSS(dashboardCSS)} //nolint:gosec // static stylesheet
	if err := errTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("write error page: %w", err)
	}
	return nil
}
