// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const testCSV = `state,district,AISI_level,child_ratio,AISI_score
Kerala,Wayanad,High,0.41,0.8
Kerala,Idukki,High,0.38,0.7
Kerala,Ernakulam,Low,0.21,0.2
Bihar,Patna,Medium,0.30,0.5
Bihar,Gaya,High,0.45,0.9
Goa,North Goa,Low,0.18,0.1
`

// testEnv isolates a test from the user's config and working directory and
// writes the sample dataset. It returns the dataset path.
func testEnv(t *testing.T) string {
	t.Helper()
	resetFlags()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	origDir := configDir
	configDir = dir
	t.Cleanup(func() { configDir = origDir })

	path := filepath.Join(dir, dataset.FileName)
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o600))
	return path
}

// newTestCmd redirects the root command's output to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag of every command to its default and gives
// each command a fresh context.
func resetFlags() {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		c.SetContext(context.Background())
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)

	// pflag's StringSlice.Set("[]") appends a literal "[]" rather than clearing.
	serveCORS = nil
	resetConfigFlags()
}

// requireExitCode asserts err is an exitCodeError with the given code.
func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode())
	return ece
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}
