// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/dataset"
	aisilog "github.com/aisi-dashboard/aisi/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logFormat  string
	dataPath   string
	searchRoot string
)

// rootCmd is the base command for aisi.
var rootCmd = &cobra.Command{
	Use:   "aisi",
	Short: "AISI district stress dashboard",
	Long: `aisi explores district-level AISI (child stress indicator) results.

It reads aisi_district_results.csv (found anywhere under the project root,
or given with --data), and serves an interactive dashboard, prints a
terminal report, exports filtered rows, or exposes the views to AI agents
over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		format := aisilog.Format(logFormat)
		if format != aisilog.FormatText && format != aisilog.FormatJSON {
			return exitError(ExitInvalidArgs, "aisi: invalid --log-format %q (must be text or json)", logFormat)
		}
		aisilog.SetupWriter(cmd.ErrOrStderr(), format, verbose, quiet)
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(aisilog.FormatText), "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the district CSV (default: search for "+dataset.FileName+")")
	rootCmd.PersistentFlags().StringVar(&searchRoot, "root", "", "directory to search for the dataset (default: project root)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
