// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for aisi using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler used for log output.
type Format string

const (
	// FormatText writes key=value lines (slog.TextHandler).
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line (slog.JSONHandler).
	FormatJSON Format = "json"
)

// Level maps the verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet wins when both are set.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger writing text to stderr.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, FormatText, verbose, quiet)
}

// SetupWriter installs the default slog logger writing to w in the given
// format. Unknown formats fall back to text.
func SetupWriter(w io.Writer, format Format, verbose, quiet bool) {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
