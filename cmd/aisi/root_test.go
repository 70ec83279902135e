// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "report", "export", "brief", "mcp", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "log-format", "data", "root"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "q", rootCmd.PersistentFlags().Lookup("quiet").Shorthand)
}

func TestRootCmd_InvalidLogFormat(t *testing.T) {
	testEnv(t)
	_, err := runCmd(t, "version", "--log-format", "xml")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "--log-format")
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "aisi: dataset not available", exitError(ExitDatasetMissing, "").Error())
	assert.Equal(t, "aisi: rendering failed", exitError(ExitRenderFailure, "").Error())
	assert.Equal(t, "aisi: error", exitError(ExitInvalidArgs, "").Error())
	assert.Equal(t, "aisi: bad 7", exitError(ExitInvalidArgs, "aisi: bad %d", 7).Error())
}

func TestMCPCmd_ServeRegistered(t *testing.T) {
	var found bool
	for _, c := range mcpCmd.Commands() {
		if c.Name() == "serve" {
			found = true
		}
	}
	assert.True(t, found)
}
