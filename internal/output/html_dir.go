// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

func init() {
	RegisterFormatter(NewHTMLDirFormatter())
}

// HTMLDirFormatter writes a static snapshot of the dashboard as a directory:
// index.html, assets/dashboard.{css,js} and the filtered CSV it links to.
type HTMLDirFormatter struct {
	nowFunc func() time.Time
}

// Compile-time interface checks.
var (
	_ Formatter          = (*HTMLDirFormatter)(nil)
	_ DirectoryFormatter = (*HTMLDirFormatter)(nil)
)

// NewHTMLDirFormatter returns a new HTMLDirFormatter.
func NewHTMLDirFormatter() *HTMLDirFormatter {
	return &HTMLDirFormatter{}
}

// Name returns the format name.
func (h *HTMLDirFormatter) Name() string {
	return "html-dir"
}

// Format returns an error directing users to use --output (-o) with html-dir.
func (h *HTMLDirFormatter) Format(_ *dashboard.ViewModel, _ io.Writer) error {
	return fmt.Errorf("html-dir format requires --output (-o) flag to specify output directory")
}

// FormatDir writes the snapshot to dir.
func (h *HTMLDirFormatter) FormatDir(vm *dashboard.ViewModel, dir string) error {
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(assetsDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(assetsDir, "dashboard.css"), []byte(dashboardCSS), 0o644); err != nil { //nolint:gosec // dashboard assets are meant to be readable
		return fmt.Errorf("write dashboard.css: %w", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "dashboard.js"), []byte(dashboardJS), 0o644); err != nil { //nolint:gosec // dashboard assets are meant to be readable
		return fmt.Errorf("write dashboard.js: %w", err)
	}

	if err := dataset.WriteFile(filepath.Join(dir, vm.ExportFileName), vm.Header(), vm.Filtered()); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}
	data := buildHTMLData(vm, now)
	data.DownloadHref = template.URL(vm.ExportFileName) //nolint:gosec // sibling file name

	f, err := os.Create(filepath.Join(dir, "index.html")) //nolint:gosec // path is user-specified output directory
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close() //nolint:errcheck // best-effort close

	if err := pageTemplate().Execute(f, data); err != nil {
		return fmt.Errorf("execute html-dir template: %w", err)
	}
	return nil
}
