// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/config"
	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/output"
	"github.com/aisi-dashboard/aisi/internal/report"
)

// Report-specific flag values.
var (
	reportState    string
	reportLevel    string
	reportSections string
	reportFormat   string
	reportOutput   string
	reportFull     bool
)

// reportCmd renders the dashboard without a browser.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard as a terminal report",
	Long: `Render the dashboard for a state and AISI level filter.

The default text format prints one block per section: preview, filtered,
metrics, state-summary, distribution, high-stress, top-districts and
diagnosis. Sections that need a state are skipped when --state is All.

--format json prints the report sections as JSON (--full embeds the whole
view). --format html, markdown or html-dir use the document formatters;
html-dir writes a directory and requires --output.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	addFilterFlags(reportCmd, &reportState, &reportLevel)
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated list of report sections to include")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: text, json, "+strings.Join(documentFormats(), ", ")+" (default text)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
	reportCmd.Flags().BoolVar(&reportFull, "full", false, "with --format json, include the full view")
}

// addFilterFlags registers --state and --level on cmd.
func addFilterFlags(cmd *cobra.Command, state, level *string) {
	cmd.Flags().StringVar(state, "state", dashboard.All, "state to show")
	cmd.Flags().StringVar(level, "level", dashboard.All, "AISI level to show")
}

// documentFormats lists the formatter names other than json, which the
// report renders itself.
func documentFormats() []string {
	var names []string
	for _, n := range output.Names() {
		if n != "json" {
			names = append(names, n)
		}
	}
	return names
}

func runReport(cmd *cobra.Command, _ []string) error {
	overlay := &config.Config{}
	if cmd.Flags().Changed("format") {
		overlay.OutputFormat = reportFormat
	}
	cfg, err := loadConfig(cmd, overlay)
	if err != nil {
		return err
	}
	format := cfg.OutputFormat
	if format == "" {
		format = config.ReportFormat
	}

	var sections []string
	if reportSections != "" {
		sections = splitAndTrim(reportSections)
		if _, unknown := report.ResolveSections(sections); len(unknown) > 0 {
			return exitError(ExitInvalidArgs, "aisi: unknown sections: %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
		}
	}

	vm, err := loadView(cfg, dashboard.Filter{State: reportState, Level: reportLevel})
	if err != nil {
		return err
	}

	if format == "html-dir" {
		return writeDir(vm, format, reportOutput)
	}

	w, closeFn, err := openOutput(cmd.OutOrStdout(), reportOutput)
	if err != nil {
		return err
	}
	if err := renderReport(w, vm, format, sections); err != nil {
		_ = closeFn()
		return exitError(ExitRenderFailure, "aisi: rendering failed (%v)", err)
	}
	if err := closeFn(); err != nil {
		return exitError(ExitRenderFailure, "aisi: cannot write %q (%v)", reportOutput, err)
	}

	slog.Info("report complete", "format", format, "rows", len(vm.Rows))
	return nil
}

func renderReport(w io.Writer, vm *dashboard.ViewModel, format string, sections []string) error {
	switch format {
	case config.ReportFormat:
		return report.Render(w, vm, sections)
	case "json":
		return report.RenderJSON(w, vm, sections, reportFull)
	}
	f, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return f.Format(vm, w)
}

// writeDir renders a directory format into dir.
func writeDir(vm *dashboard.ViewModel, format, dir string) error {
	if dir == "" {
		return exitError(ExitInvalidArgs, "aisi: --format %s requires --output (-o) to name a directory", format)
	}
	f, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}
	df, ok := f.(output.DirectoryFormatter)
	if !ok {
		return exitError(ExitInvalidArgs, "aisi: format %q does not write directories", format)
	}
	if err := df.FormatDir(vm, dir); err != nil {
		return exitError(ExitRenderFailure, "aisi: rendering failed (%v)", err)
	}
	slog.Info("report written", "dir", dir)
	return nil
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
