// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// ColorLevel colors AISI level labels: High red, Low green, others yellow.
func ColorLevel(val string) string {
	if val == "" {
		return val
	}
	return colorForLevel(val).Sprint(val)
}

// colorForLevel returns the printer used for level, in labels and bars.
func colorForLevel(level string) *color.Color {
	switch level {
	case "High":
		return colorRed
	case "Low":
		return colorGreen
	default:
		return colorYellow
	}
}

// SectionTitle renders a bold title underlined to its width.
func SectionTitle(title string) string {
	return fmt.Sprintf("%s\n%s", colorBold.Sprint(title), strings.Repeat("-", len([]rune(title))))
}

// colorHighCount colors a High-stress count: 0 is green, more is red.
func colorHighCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorRed.Sprint(s)
}

// info renders an informational line.
func info(msg string) string { return colorCyan.Sprint(msg) }
