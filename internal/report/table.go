// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables. Widths count runes so district names
// outside ASCII stay aligned.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row; missing values render empty, extras are dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
		rule[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, rule); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cell := pad(row[i], widths[i], col.Align)
			if col.Color != nil {
				// Color only the value so padding stays uncolored.
				cell = strings.Replace(cell, row[i], col.Color(row[i]), 1)
			}
			cells[i] = cell
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
