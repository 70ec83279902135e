// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Options carries the defaults tools use when a call omits data and root.
type Options struct {
	Dataset  dataset.LocateOptions
	Settings dashboard.Settings
}

// New creates a new MCP server with the dashboard tools registered.
func New(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "aisi",
		Title:   "AISI District Dashboard",
		Version: version,
	}, nil)

	registerTools(server, &tools{opts: opts})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, opts Options, transport mcp.Transport) error {
	return New(version, opts).Run(ctx, transport)
}
