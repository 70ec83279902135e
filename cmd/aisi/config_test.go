// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisi-dashboard/aisi/internal/config"
)

func TestConfigSetGet_Project(t *testing.T) {
	testEnv(t)

	out, err := runCmd(t, "config", "set", "listen_addr", "0.0.0.0:9000")
	require.NoError(t, err)
	assert.Equal(t, "Set listen_addr = 0.0.0.0:9000\n", out)
	assert.FileExists(t, filepath.Join(configDir, config.FileName))

	resetConfigFlags()
	out, err = runCmd(t, "config", "get", "listen_addr")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000\n", out)
}

func TestConfigSet_WritesExistingTOML(t *testing.T) {
	testEnv(t)
	tomlPath := filepath.Join(configDir, config.TOMLFileName)
	require.NoError(t, os.WriteFile(tomlPath, []byte("top_limit = 5\n"), 0o600))

	_, err := runCmd(t, "config", "set", "reload", "false")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(configDir, config.FileName))

	cfg, err := config.LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopLimit)
	assert.False(t, cfg.ReloadEnabled())
}

func TestConfigSet_List(t *testing.T) {
	testEnv(t)
	_, err := runCmd(t, "config", "set", "cors_origins", "https://a.example, https://b.example")
	require.NoError(t, err)

	resetConfigFlags()
	out, err := runCmd(t, "config", "get", "cors_origins")
	require.NoError(t, err)
	assert.Equal(t, "- https://a.example\n- https://b.example\n", out)
}

func TestConfigSet_Global(t *testing.T) {
	testEnv(t)
	_, err := runCmd(t, "config", "set", "--global", "no_llm", "true")
	require.NoError(t, err)
	assert.FileExists(t, config.GlobalConfigPath())

	resetConfigFlags()
	out, err := runCmd(t, "config", "get", "--global", "no_llm")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"colour", "red"}, "unknown key"},
		{"nested key", []string{"listen_addr.port", "1"}, "cannot use sub-keys"},
		{"bad format", []string{"output_format", "pdf"}, "output_format"},
		{"bad addr", []string{"listen_addr", "nonsense"}, "listen_addr"},
		{"negative limit", []string{"top_limit", "-1"}, "top_limit"},
		{"wrong type", []string{"top_limit", "many"}, "top_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testEnv(t)
			_, err := runCmd(t, append([]string{"config", "set"}, tt.args...)...)
			ece := requireExitCode(t, err, ExitInvalidArgs)
			assert.Contains(t, ece.Error(), tt.want)
			assert.NoFileExists(t, filepath.Join(configDir, config.FileName))
		})
	}
}

func TestConfigGet_Unset(t *testing.T) {
	testEnv(t)
	_, err := runCmd(t, "config", "get", "data_path")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "not set")
}

func TestConfigList(t *testing.T) {
	testEnv(t)

	out, err := runCmd(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No configuration set.")

	require.NoError(t, config.WriteFile(config.GlobalConfigPath(), map[string]any{"top_limit": 10, "no_llm": true}))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, config.FileName), []byte("top_limit: 25\n"), 0o600))

	out, err = runCmd(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no_llm = true (global)")
	assert.Contains(t, out, "top_limit = 25 (project)")
}

func TestConfigShow_MergesFlags(t *testing.T) {
	path := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, config.FileName), []byte("top_limit: 25\n"), 0o600))

	out, err := runCmd(t, "config", "show", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "data_path: "+path)
	assert.Contains(t, out, "top_limit: 25")
}
