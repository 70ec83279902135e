// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package validate lints a district results CSV before it is served. It
// reports problems the dashboard would otherwise hide: rows that cannot be
// filtered, ratios that drop out of rankings, and duplicate districts. Each
// issue carries a line number and a fix suggestion.
package validate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Severity grades an issue. Only errors make a file invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding.
type Issue struct {
	Line       int    // 1-based line number; 0 for file-level issues
	Field      string // column name, empty for row-level issues
	Severity   Severity
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e *Issue) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result contains the outcome of validating a CSV file.
type Result struct {
	TotalRows int
	Issues    []Issue
}

// Valid returns true if no errors were found. Warnings are allowed.
func (r *Result) Valid() bool {
	return r.Count(SeverityError) == 0
}

// Count returns the number of issues with severity s.
func (r *Result) Count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) add(line int, field string, sev Severity, msg, fix string) {
	r.Issues = append(r.Issues, Issue{Line: line, Field: field, Severity: sev, Message: msg, Suggestion: fix})
}

var required = []string{dataset.ColState, dataset.ColDistrict, dataset.ColLevel, dataset.ColChildRatio}

// Validate reads CSV from r and checks the header and every row.
func Validate(r io.Reader) *Result {
	result := &Result{}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		result.add(0, "", SeverityError, "file is empty", "add a header row: "+strings.Join(required, ","))
		return result
	}
	if err != nil {
		result.add(1, "", SeverityError, fmt.Sprintf("invalid CSV header: %v", err), "fix the quoting in the header row")
		return result
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := pos[h]; dup {
			result.add(1, h, SeverityWarning, fmt.Sprintf("duplicate column %q", h),
				"rename or remove the second column; only the first is read")
			continue
		}
		pos[h] = i
	}
	missing := false
	for _, col := range required {
		if _, ok := pos[col]; !ok {
			missing = true
			fix := fmt.Sprintf("add a %q column", col)
			if alt := caseInsensitive(header, col); alt != "" {
				fix = fmt.Sprintf("rename column %q to %q (names are case-sensitive)", alt, col)
			}
			result.add(1, col, SeverityError, fmt.Sprintf("missing required column %q", col), fix)
		}
	}
	if missing {
		return result
	}

	seen := make(map[string]int)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.StartLine
			}
			result.add(line, "", SeverityError, fmt.Sprintf("invalid CSV row: %v", err), "fix the quoting on this line")
			return result
		}
		line, _ := reader.FieldPos(0)
		result.TotalRows++
		if len(rec) != len(header) {
			result.add(line, "", SeverityError,
				fmt.Sprintf("row has %d fields, header has %d", len(rec), len(header)),
				"make every row have one value per column")
			continue
		}
		checkRow(result, line, rec, pos, seen)
	}
	return result
}

func checkRow(result *Result, line int, rec []string, pos map[string]int, seen map[string]int) {
	state := rec[pos[dataset.ColState]]
	district := rec[pos[dataset.ColDistrict]]
	level := rec[pos[dataset.ColLevel]]
	ratio := rec[pos[dataset.ColChildRatio]]

	for _, f := range []struct{ col, val string }{
		{dataset.ColState, state},
		{dataset.ColDistrict, district},
	} {
		if strings.TrimSpace(f.val) == "" {
			result.add(line, f.col, SeverityError, fmt.Sprintf("%s is empty", f.col),
				fmt.Sprintf("fill in %s or drop the row", f.col))
		}
	}
	for _, f := range []struct{ col, val string }{
		{dataset.ColState, state},
		{dataset.ColLevel, level},
	} {
		if f.val != "" && f.val != strings.TrimSpace(f.val) {
			result.add(line, f.col, SeverityWarning, fmt.Sprintf("%s %q has surrounding spaces", f.col, f.val),
				fmt.Sprintf("use %q; filters match exact values", strings.TrimSpace(f.val)))
		}
	}

	if strings.TrimSpace(level) == "" {
		result.add(line, dataset.ColLevel, SeverityWarning, "AISI_level is empty",
			"set a level such as High or Low; this row is never counted as high stress")
	} else if strings.EqualFold(level, dataset.LevelHigh) && level != dataset.LevelHigh {
		result.add(line, dataset.ColLevel, SeverityWarning, fmt.Sprintf("AISI_level %q is not %q", level, dataset.LevelHigh),
			fmt.Sprintf("write %q; only the exact value is counted as high stress", dataset.LevelHigh))
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(ratio), 64)
	switch {
	case err != nil || math.IsNaN(v):
		result.add(line, dataset.ColChildRatio, SeverityWarning, fmt.Sprintf("child_ratio %q is not a number", ratio),
			"enter a decimal ratio; this row is left out of averages and rankings")
	case math.IsInf(v, 0) || v < 0:
		result.add(line, dataset.ColChildRatio, SeverityWarning, fmt.Sprintf("child_ratio %s is out of range", ratio),
			"enter a non-negative finite ratio")
	}

	if state != "" && district != "" {
		key := state + "\x00" + district
		if first, dup := seen[key]; dup {
			result.add(line, dataset.ColDistrict, SeverityWarning,
				fmt.Sprintf("district %q in %q repeats line %d", district, state, first),
				"remove the duplicate; both rows are counted")
		} else {
			seen[key] = line
		}
	}
}

func caseInsensitive(header []string, col string) string {
	for _, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), col) {
			return h
		}
	}
	return ""
}
