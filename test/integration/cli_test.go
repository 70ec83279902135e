// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package integration contains end-to-end tests for aisi.
//
// These tests build the aisi binary and exercise it against the fixture
// dataset, checking report output, export round-trips and exit codes.
package integration

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoRoot returns the aisi repository root directory.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// test/integration/cli_test.go -> repo root
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// buildBinary compiles aisi into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "aisi-test")
	cmd := exec.Command("go", "build", "-o", binary, "./cmd/aisi") //nolint:gosec // test helper
	cmd.Dir = repoRoot(t)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build failed:\n%s", out)
	return binary
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(repoRoot(t), "testdata", "fixtures", "sample")
	_, err := os.Stat(dir)
	require.NoError(t, err, "fixture not found")
	return dir
}

// run executes the binary in an isolated working directory with no user
// config and returns stdout and the exit code.
func run(t *testing.T, binary string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binary, args...) //nolint:gosec // test helper
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir(), "ANTHROPIC_API_KEY=")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "run failed: %v", err)
		return string(out), exitErr.ExitCode()
	}
	return string(out), 0
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	binary := buildBinary(t)
	fixture := fixtureDir(t)

	t.Run("report discovers dataset under root", func(t *testing.T) {
		out, code := run(t, binary, "report", "--root", fixture, "--no-color", "--quiet", "--state", "Bihar")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "Loaded: aisi_district_results.csv")
		assert.Contains(t, out, "State Summary: Bihar")
		assert.Contains(t, out, "Worst District")
		assert.Contains(t, out, "Gaya")
	})

	t.Run("report json", func(t *testing.T) {
		out, code := run(t, binary, "report", "--root", fixture, "--quiet", "--format", "json", "--level", "High")
		require.Equal(t, 0, code)
		var rep struct {
			Metrics struct {
				TotalDistricts      int `json:"total_districts"`
				HighStressDistricts int `json:"high_stress_districts"`
			} `json:"metrics"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 4, rep.Metrics.TotalDistricts)
		assert.Equal(t, 4, rep.Metrics.HighStressDistricts)
	})

	t.Run("export round-trips", func(t *testing.T) {
		out, code := run(t, binary, "export", "--root", fixture, "--quiet", "--state", "Goa")
		require.Equal(t, 0, code)
		assert.Equal(t,
			"state,district,AISI_level,child_ratio,AISI_score\nGoa,North Goa,Low,0.18,0.12\nGoa,South Goa,Low,0.17,0.10\n",
			out)
	})

	t.Run("export keeps empty ratio cells", func(t *testing.T) {
		out, code := run(t, binary, "export", "--root", fixture, "--quiet", "--state", "Bihar", "--level", "High")
		require.Equal(t, 0, code)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Bihar,Nalanda,High,,0.77", lines[2])
	})

	t.Run("missing dataset exits 2", func(t *testing.T) {
		_, code := run(t, binary, "report", "--root", t.TempDir(), "--quiet")
		assert.Equal(t, 2, code)
	})

	t.Run("bad flag value exits 1", func(t *testing.T) {
		_, code := run(t, binary, "report", "--root", fixture, "--format", "pdf")
		assert.Equal(t, 1, code)
	})

	t.Run("brief without key exits 1", func(t *testing.T) {
		_, code := run(t, binary, "brief", "--root", fixture, "--quiet")
		assert.Equal(t, 1, code)
	})

	t.Run("version", func(t *testing.T) {
		out, code := run(t, binary, "version")
		require.Equal(t, 0, code)
		assert.Equal(t, "aisi dev\n", out)
	})
}
