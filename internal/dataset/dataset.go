// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package dataset loads, locates and exports the per-district AISI results
// table. The table is read verbatim: every source column is preserved so an
// export reproduces the input layout, and only the four columns the dashboard
// reads are resolved by name.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names read by the dashboard.
const (
	ColState      = "state"
	ColDistrict   = "district"
	ColLevel      = "AISI_level"
	ColChildRatio = "child_ratio"
)

// LevelHigh and LevelLow are the AISI levels the dashboard counts by name.
const (
	LevelHigh = "High"
	LevelLow  = "Low"
)

// ErrEmpty is returned when the source has no header row.
var ErrEmpty = errors.New("dataset is empty: no header row")

// MissingColumnError reports a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset has no %q column", e.Column)
}

// Record is one district row.
type Record struct {
	State      string
	District   string
	Level      string
	ChildRatio float64 // NaN when the cell is empty or not numeric

	// Fields holds the raw cells in header order.
	Fields []string
}

// IsHigh reports whether the record's level is "High".
func (r Record) IsHigh() bool { return r.Level == LevelHigh }

// Table is the in-memory dataset in source order.
type Table struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Parse reads CSV from r. The first row is the header; a leading UTF-8 BOM
// is ignored.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.Records)+2, err)
		}
		t.Records = append(t.Records, Record{
			State:      rec[idx.state],
			District:   rec[idx.district],
			Level:      rec[idx.level],
			ChildRatio: parseRatio(rec[idx.ratio]),
			Fields:     rec,
		})
	}
	return t, nil
}

type columnIndex struct {
	state, district, level, ratio int
}

func resolveColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	lookup := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, &MissingColumnError{Column: name}
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.state, err = lookup(ColState); err != nil {
		return idx, err
	}
	if idx.district, err = lookup(ColDistrict); err != nil {
		return idx, err
	}
	if idx.level, err = lookup(ColLevel); err != nil {
		return idx, err
	}
	if idx.ratio, err = lookup(ColChildRatio); err != nil {
		return idx, err
	}
	return idx, nil
}

func parseRatio(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Load reads and parses the dataset at path.
func Load(path string) (*Table, error) {
	f, err := FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
