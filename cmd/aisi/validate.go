// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/dataset"
	"github.com/aisi-dashboard/aisi/internal/validate"
)

// Validate-specific flag values.
var validateStrict bool

// validateCmd lints the dataset CSV.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the district CSV for problems",
	Long: `Check a district results CSV for problems the dashboard would hide:
missing columns, rows with empty state or district, levels that will not
count as high stress, ratios that drop out of rankings, and duplicates.

Without a file argument the configured or discovered dataset is checked.
Errors exit non-zero; warnings do so only with --strict.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		loc, err := dataset.Locate(locateOptions(cfg))
		if err != nil {
			return datasetError(err)
		}
		path = loc.Path
	}

	f, err := cmdFS.Open(path)
	if err != nil {
		return exitError(ExitDatasetMissing, "aisi: cannot open %q (%v)", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	result := validate.Validate(f)
	printIssues(cmd.ErrOrStderr(), result)

	errs, warns := result.Count(validate.SeverityError), result.Count(validate.SeverityWarning)
	if errs == 0 && (warns == 0 || !validateStrict) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d rows (%d warning(s))\n", result.TotalRows, warns)
		return nil
	}
	return exitError(ExitInvalidArgs, "aisi: %s: %d error(s), %d warning(s) in %d rows", path, errs, warns, result.TotalRows)
}

func printIssues(w io.Writer, result *validate.Result) {
	for _, e := range result.Issues {
		label := colorFor(e.Severity).Sprint(string(e.Severity))
		if e.Line > 0 {
			_, _ = fmt.Fprintf(w, "line %d: ", e.Line)
		}
		_, _ = fmt.Fprintf(w, "%s: %s\n", label, e.Message)
		if e.Suggestion != "" {
			_, _ = fmt.Fprintf(w, "  fix: %s\n", e.Suggestion)
		}
	}
}

func colorFor(s validate.Severity) *color.Color {
	if s == validate.SeverityError {
		return color.New(color.FgRed)
	}
	return color.New(color.FgYellow)
}
