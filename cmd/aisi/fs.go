// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/aisi-dashboard/aisi/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// openOutput returns the writer for --output, or stdout when path is empty.
// The returned close function must be called once writing is done.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := cmdFS.Create(path)
	if err != nil {
		return nil, nil, exitError(ExitRenderFailure, "aisi: cannot create output file %q (%v)", path, err)
	}
	return f, f.Close, nil
}
