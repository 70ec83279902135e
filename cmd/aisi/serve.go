// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/config"
	"github.com/aisi-dashboard/aisi/internal/server"
)

// Serve-specific flag values.
var (
	serveAddr   string
	serveReload bool
	serveCORS   []string
)

// serveCmd runs the interactive dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Serve the dashboard over HTTP. Pick a state and an AISI level from the
dropdowns; every change re-renders the page from the dataset.

By default the CSV is re-read on every request so edits show up on the next
page load. Use --reload=false to load it once at startup.

Endpoints:
  /             dashboard page (?state=&level=)
  /download     filtered rows as AISI_filtered_districts.csv
  /api/view     the rendered view as JSON
  /api/options  available filter values
  /healthz      dataset health check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultListenAddr+")")
	serveCmd.Flags().BoolVar(&serveReload, "reload", true, "re-read the dataset on every request")
	serveCmd.Flags().StringSliceVar(&serveCORS, "cors-origin", nil, "allowed CORS origin for the JSON API (repeatable)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	overlay := &config.Config{}
	if cmd.Flags().Changed("addr") {
		overlay.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("reload") {
		overlay.Reload = config.BoolPtr(serveReload)
	}
	if cmd.Flags().Changed("cors-origin") {
		overlay.CORSOrigins = serveCORS
	}
	cfg, err := loadConfig(cmd, overlay)
	if err != nil {
		return err
	}

	opts := locateOptions(cfg)
	loader := server.CachedLoader(opts)
	if cfg.ReloadEnabled() {
		loader = server.ReloadingLoader(opts)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dashboard does not start without a dataset.
	if _, _, err := loader.Load(ctx); err != nil {
		return datasetError(err)
	}

	srv, err := server.New(server.Options{
		Loader:      loader,
		Settings:    renderSettings(cfg, ""),
		CORSOrigins: cfg.CORSOrigins,
		Logger:      slog.Default(),
	})
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}

	ln, err := net.Listen("tcp", cfg.ListenAddress())
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: cannot listen on %s (%v)", cfg.ListenAddress(), err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "AISI dashboard running at http://%s\n", ln.Addr())

	if err := srv.Serve(ctx, ln); err != nil {
		return fmt.Errorf("aisi: %w", err)
	}
	return nil
}
