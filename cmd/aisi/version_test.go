// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dev", "dev"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1 (pre-release)"},
		{"v1.0.0+build.5", "v1.0.0"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, displayVersion(tt.in))
		})
	}
}

func TestVersionCmd(t *testing.T) {
	testEnv(t)
	orig := Version
	Version = "0.3.1"
	t.Cleanup(func() { Version = orig })

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "aisi v0.3.1\n", out)
}
