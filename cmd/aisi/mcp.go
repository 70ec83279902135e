// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running aisi as an MCP server, exposing the dashboard views to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing read-only tools:
  - dashboard:      Render the dashboard for a filter (json or markdown)
  - filter_options: List the available states and AISI levels
  - export_csv:     Export the filtered rows as CSV
  - report:         Render the plain-text report

Tools use the configured dataset unless a call passes data or root.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		opts := mcpserver.Options{
			Dataset:  locateOptions(cfg),
			Settings: renderSettings(cfg, ""),
		}
		return mcpserver.Run(cmd.Context(), Version, opts, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
