// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP. Every request parses its
// filter from the query string and renders from scratch; no state is kept
// between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// serve context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Loader supplies the dataset for each request. Required.
	Loader Loader

	// Settings tunes the chart sizes. Source is filled from the loader.
	Settings dashboard.Settings

	// CORSOrigins enables CORS for the listed origins. Empty disables it.
	CORSOrigins []string

	// Logger receives access and error logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server is the HTTP dashboard.
type Server struct {
	loader   Loader
	settings dashboard.Settings
	logger   *slog.Logger
	router   chi.Router
}

// New builds the router and middleware stack.
func New(opts Options) (*Server, error) {
	if opts.Loader == nil {
		return nil, errors.New("server: loader is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		loader:   opts.Loader,
		settings: opts.Settings,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	if len(opts.CORSOrigins) > 0 {
		r.Use(corsMiddleware(opts.CORSOrigins))
	}
	r.Use(middleware.StripSlashes)

	r.Get("/", s.handleDashboard)
	r.Get("/download", s.handleDownload)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/view", s.handleView)
		r.Get("/options", s.handleOptions)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:     "not found",
			Code:      http.StatusNotFound,
			RequestID: RequestID(r.Context()),
		})
	})

	s.router = r
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("dashboard listening", "addr", "http://"+ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down dashboard")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
