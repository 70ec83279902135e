// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the aisi CLI.
const (
	ExitOK             = 0 // Success.
	ExitInvalidArgs    = 1 // Invalid arguments or configuration.
	ExitDatasetMissing = 2 // The dataset could not be found or loaded.
	ExitRenderFailure  = 3 // Rendering or writing output failed.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If the formatted message is empty, a
// generic description of the exit code is used.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitDatasetMissing:
			msg = "aisi: dataset not available"
		case ExitRenderFailure:
			msg = "aisi: rendering failed"
		default:
			msg = "aisi: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
