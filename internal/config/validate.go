// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/aisi-dashboard/aisi/internal/output"
)

// ReportFormat is the terminal format of `aisi report`, accepted alongside
// the registered output formatters.
const ReportFormat = "text"

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" && cfg.OutputFormat != ReportFormat {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.ListenAddr != "" {
		if _, port, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
			errs = append(errs, fmt.Sprintf("listen_addr: %v", err))
		} else if port == "" {
			errs = append(errs, fmt.Sprintf("listen_addr: missing port in %q", cfg.ListenAddr))
		}
	}

	for i, origin := range cfg.CORSOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("cors_origins[%d]: %q is not an http(s) origin", i, origin))
		}
	}

	if cfg.HighStressLimit < 0 {
		errs = append(errs, fmt.Sprintf("high_stress_limit: must be non-negative, got %d", cfg.HighStressLimit))
	}
	if cfg.TopLimit < 0 {
		errs = append(errs, fmt.Sprintf("top_limit: must be non-negative, got %d", cfg.TopLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
