// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
	"github.com/aisi-dashboard/aisi/internal/output"
	"github.com/aisi-dashboard/aisi/internal/report"
)

// DatasetInput selects the dataset for a call.
type DatasetInput struct {
	Data string `json:"data,omitempty" jsonschema:"Path to the district CSV (default: configured or discovered aisi_district_results.csv)"`
	Root string `json:"root,omitempty" jsonschema:"Directory to search for aisi_district_results.csv when data is not given"`
}

// FilterInput is a dataset plus a state/level filter.
type FilterInput struct {
	Data  string `json:"data,omitempty" jsonschema:"Path to the district CSV (default: configured or discovered aisi_district_results.csv)"`
	Root  string `json:"root,omitempty" jsonschema:"Directory to search for aisi_district_results.csv when data is not given"`
	State string `json:"state,omitempty" jsonschema:"State to filter on (default: All)"`
	Level string `json:"level,omitempty" jsonschema:"AISI level to filter on, e.g. High or Low (default: All)"`
}

func (in FilterInput) datasetInput() DatasetInput { return DatasetInput{Data: in.Data, Root: in.Root} }

// DashboardInput is the input schema for the dashboard tool.
type DashboardInput struct {
	Data   string `json:"data,omitempty" jsonschema:"Path to the district CSV (default: configured or discovered aisi_district_results.csv)"`
	Root   string `json:"root,omitempty" jsonschema:"Directory to search for aisi_district_results.csv when data is not given"`
	State  string `json:"state,omitempty" jsonschema:"State to filter on (default: All)"`
	Level  string `json:"level,omitempty" jsonschema:"AISI level to filter on, e.g. High or Low (default: All)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json or markdown (default: json)"`
}

// ReportInput is the input schema for the report tool.
type ReportInput struct {
	Data     string `json:"data,omitempty" jsonschema:"Path to the district CSV (default: configured or discovered aisi_district_results.csv)"`
	Root     string `json:"root,omitempty" jsonschema:"Directory to search for aisi_district_results.csv when data is not given"`
	State    string `json:"state,omitempty" jsonschema:"State to filter on (default: All)"`
	Level    string `json:"level,omitempty" jsonschema:"AISI level to filter on, e.g. High or Low (default: All)"`
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

type tools struct {
	opts Options
}

// registerTools adds all dashboard tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard",
		Description: "Render the AISI district dashboard for a state and AISI level filter: metrics, state summary, level distribution, high-stress ranking, top districts by child_ratio, and diagnosis with recommendations.",
		Annotations: readOnly(),
	}, t.handleDashboard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_options",
		Description: "List the states and AISI levels available as dashboard filters, each starting with All.",
		Annotations: readOnly(),
	}, t.handleFilterOptions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export the rows matching a state and AISI level filter as CSV with the dataset's original columns.",
		Annotations: readOnly(),
	}, t.handleExportCSV)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Render the dashboard as a plain-text report with one block per section. Sections that need a state are skipped when state is All.",
		Annotations: readOnly(),
	}, t.handleReport)
}

func (t *tools) load(in DatasetInput) (*dataset.Table, string, error) {
	opts, err := ResolveDataset(in.Data, in.Root, t.opts.Dataset)
	if err != nil {
		return nil, "", err
	}
	loc, tbl, err := dataset.Resolve(opts)
	if err != nil {
		return nil, "", err
	}
	return tbl, loc.Base(), nil
}

func (t *tools) render(in FilterInput) (*dashboard.ViewModel, error) {
	tbl, source, err := t.load(in.datasetInput())
	if err != nil {
		return nil, err
	}
	settings := t.opts.Settings
	settings.Source = source
	return dashboard.Render(tbl, dashboard.Filter{State: in.State, Level: in.Level}, settings), nil
}

func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s}},
	}
}

func (t *tools) handleDashboard(_ context.Context, _ *mcp.CallToolRequest, input DashboardInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "markdown" {
		return nil, nil, fmt.Errorf("unsupported format %q (must be json or markdown)", format)
	}

	vm, err := t.render(FilterInput{Data: input.Data, Root: input.Root, State: input.State, Level: input.Level})
	if err != nil {
		return nil, nil, err
	}

	f, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := f.Format(vm, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (t *tools) handleFilterOptions(_ context.Context, _ *mcp.CallToolRequest, input DatasetInput) (*mcp.CallToolResult, any, error) {
	tbl, _, err := t.load(input)
	if err != nil {
		return nil, nil, err
	}
	data, err := json.Marshal(dashboard.Options(tbl))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal options: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func (t *tools) handleExportCSV(_ context.Context, _ *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, any, error) {
	vm, err := t.render(input)
	if err != nil {
		return nil, nil, err
	}
	data, err := vm.ExportCSV()
	if err != nil {
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func (t *tools) handleReport(_ context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	var sections []string
	if input.Sections != "" {
		sections = splitAndTrim(input.Sections)
		if _, unknown := report.ResolveSections(sections); len(unknown) > 0 {
			return nil, nil, fmt.Errorf("unknown sections: %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
		}
	}

	vm, err := t.render(FilterInput{Data: input.Data, Root: input.Root, State: input.State, Level: input.Level})
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, vm, sections); err != nil {
		return nil, nil, fmt.Errorf("report failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
