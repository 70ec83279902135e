// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Export naming for filtered downloads.
const (
	ExportFileName = "AISI_filtered_districts.csv"
	ExportMIMEType = "text/csv"
)

// WriteCSV writes header and the raw fields of records to w. No index column
// is added, so the output parses back into the same table.
func WriteCSV(w io.Writer, header []string, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.Fields); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// EncodeCSV returns the CSV bytes for header and records.
func EncodeCSV(header []string, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, header, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the CSV export to path.
func WriteFile(path string, header []string, records []Record) error {
	f, err := FS.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, header, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
