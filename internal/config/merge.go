// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers overlay on top of base and returns a new Config. Set overlay
// fields win; zero-value overlay fields fall through to base. Either argument
// may be nil.
//
// Precedence across the whole stack is CLI flags > project file > global
// file, built as Merge(Merge(global, project), flags).
func Merge(base, overlay *Config) *Config {
	result := Config{}
	if base != nil {
		result = *base
	}
	if overlay == nil {
		return &result
	}

	if overlay.DataPath != "" {
		result.DataPath = overlay.DataPath
	}
	if overlay.SearchRoot != "" {
		result.SearchRoot = overlay.SearchRoot
	}
	if overlay.ListenAddr != "" {
		result.ListenAddr = overlay.ListenAddr
	}
	if overlay.Reload != nil {
		result.Reload = BoolPtr(*overlay.Reload)
	}
	if len(overlay.CORSOrigins) > 0 {
		result.CORSOrigins = append([]string(nil), overlay.CORSOrigins...)
	}
	if overlay.OutputFormat != "" {
		result.OutputFormat = overlay.OutputFormat
	}
	// NoLLM: any layer can switch the LLM off.
	if overlay.NoLLM {
		result.NoLLM = true
	}
	if overlay.LLMModel != "" {
		result.LLMModel = overlay.LLMModel
	}
	if overlay.HighStressLimit > 0 {
		result.HighStressLimit = overlay.HighStressLimit
	}
	if overlay.TopLimit > 0 {
		result.TopLimit = overlay.TopLimit
	}
	return &result
}
