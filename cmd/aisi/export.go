// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Export-specific flag values.
var (
	exportState  string
	exportLevel  string
	exportOutput string
)

// exportCmd writes the filtered rows as CSV.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered districts as CSV",
	Long: `Write the rows matching --state and --level as CSV, with the dataset's
original columns and no index column. This is the same file the dashboard's
download button serves (` + dataset.ExportFileName + `).`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd, &exportState, &exportLevel)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	vm, err := loadView(cfg, dashboard.Filter{State: exportState, Level: exportLevel})
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := dataset.WriteFile(exportOutput, vm.Header(), vm.Filtered()); err != nil {
			return exitError(ExitRenderFailure, "aisi: export failed (%v)", err)
		}
		slog.Info("export written", "path", exportOutput, "rows", len(vm.Filtered()))
		return nil
	}
	if err := dataset.WriteCSV(cmd.OutOrStdout(), vm.Header(), vm.Filtered()); err != nil {
		return exitError(ExitRenderFailure, "aisi: export failed (%v)", err)
	}
	return nil
}
