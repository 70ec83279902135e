// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
	"github.com/aisi-dashboard/aisi/internal/output"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Error   string `json:"error,omitempty"`
}

// filterFromQuery reads state and level; absent or empty values mean All.
// Unknown values are kept and simply match nothing.
func filterFromQuery(r *http.Request) dashboard.Filter {
	q := r.URL.Query()
	return dashboard.Filter{State: q.Get("state"), Level: q.Get("level")}.Normalized()
}

// loadMessage is the user-facing text for a dataset load failure.
func loadMessage(err error) string {
	if errors.Is(err, dataset.ErrNotFound) {
		return dataset.NotFoundMessage
	}
	return "Failed to load dataset: " + err.Error()
}

// render loads the dataset and renders the view for r. On failure it has
// already logged and returns the error.
func (s *Server) render(r *http.Request) (*dashboard.ViewModel, error) {
	t, source, err := s.loader.Load(r.Context())
	if err != nil {
		s.logger.Warn("dataset load failed", "error", err, "request_id", RequestID(r.Context()))
		return nil, err
	}
	settings := s.settings
	settings.Source = source
	return dashboard.Render(t, filterFromQuery(r), settings), nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	vm, err := s.render(r)
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = output.WriteErrorPage(w, loadMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := output.NewServedHTMLFormatter().Format(vm, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	vm, err := s.render(r)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: loadMessage(err), Code: http.StatusServiceUnavailable, RequestID: RequestID(r.Context()),
		})
		return
	}
	data, err := vm.ExportCSV()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", dataset.ExportMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vm.ExportFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	vm, err := s.render(r)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: loadMessage(err), Code: http.StatusServiceUnavailable, RequestID: RequestID(r.Context()),
		})
		return
	}
	writeJSON(w, http.StatusOK, vm)
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	t, _, err := s.loader.Load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: loadMessage(err), Code: http.StatusServiceUnavailable, RequestID: RequestID(r.Context()),
		})
		return
	}
	writeJSON(w, http.StatusOK, dashboard.Options(t))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	t, source, err := s.loader.Load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "error", Error: loadMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Dataset: source, Rows: t.Len()})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed", "error", err, "path", r.URL.Path, "request_id", RequestID(r.Context()))
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: "render failed", Code: http.StatusInternalServerError, RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
