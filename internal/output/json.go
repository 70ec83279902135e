// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the view model with metadata for the JSON output format.
type JSONEnvelope struct {
	View     *dashboard.ViewModel `json:"view"`
	Metadata JSONMetadata         `json:"metadata"`
}

// JSONMetadata describes the render that produced the view.
type JSONMetadata struct {
	TableRows    int    `json:"table_rows"`
	FilteredRows int    `json:"filtered_rows"`
	GeneratedAt  string `json:"generated_at"`
}

// JSONFormatter writes the view model as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact forces single-line output. When false, output is pretty-printed
	// for terminals and compact for pipes and files.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes vm as a JSON document to w. NaN ratios encode as null.
func (f *JSONFormatter) Format(vm *dashboard.ViewModel, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		View: vm,
		Metadata: JSONMetadata{
			TableRows:    vm.TableRows,
			FilteredRows: len(vm.Rows),
			GeneratedAt:  now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// shouldCompact reports whether to write single-line JSON: always when
// Compact is set, otherwise only for non-terminal files.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}
