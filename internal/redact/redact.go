// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package redact strips credential values from text before it reaches a
// terminal, a log line or an HTTP response.
package redact

import (
	"os"
	"strings"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// minSecretLen guards against replacing short, common substrings.
const minSecretLen = 8

// EnvVars lists environment variables whose values are treated as secrets.
var EnvVars = []string{
	"ANTHROPIC_API_KEY",
	"AISI_LLM_API_KEY",
}

// String replaces the value of every configured secret env var found in s.
// Env vars are read on each call so tests can use t.Setenv.
func String(s string) string {
	for _, name := range EnvVars {
		val := os.Getenv(name)
		if len(val) < minSecretLen {
			continue
		}
		s = strings.ReplaceAll(s, val, Placeholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
