// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DefaultLevel(t *testing.T) {
	Setup(false, false)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should be enabled in default mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn))
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug), "DEBUG should not be enabled in default mode")
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name           string
		verbose, quiet bool
		want           slog.Level
	}{
		{"default", false, false, slog.LevelInfo},
		{"verbose", true, false, slog.LevelDebug},
		{"quiet", false, true, slog.LevelWarn},
		{"quiet wins", true, true, slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbose, tt.quiet))
		})
	}
}

func TestSetupWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, FormatJSON, false, false)
	t.Cleanup(func() { Setup(false, true) })

	slog.Info("dataset loaded", "rows", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.EqualValues(t, 3, entry["rows"])
}

func TestSetupWriter_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, Format("xml"), true, false)
	t.Cleanup(func() { Setup(false, true) })

	slog.Debug("probe", "k", "v")
	assert.Contains(t, buf.String(), "msg=probe")
	assert.Contains(t, buf.String(), "k=v")
}
