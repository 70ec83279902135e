// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

// Package config handles .aisi.yaml and .aisi.toml configuration files.
package config

// Config represents the contents of a project or global config file.
// Zero values mean "not set" and fall through to the next layer.
type Config struct {
	DataPath     string   `yaml:"data_path,omitempty" toml:"data_path,omitempty"`
	SearchRoot   string   `yaml:"search_root,omitempty" toml:"search_root,omitempty"`
	ListenAddr   string   `yaml:"listen_addr,omitempty" toml:"listen_addr,omitempty"`
	Reload       *bool    `yaml:"reload,omitempty" toml:"reload,omitempty"`
	CORSOrigins  []string `yaml:"cors_origins,omitempty" toml:"cors_origins,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	NoLLM        bool     `yaml:"no_llm,omitempty" toml:"no_llm,omitempty"`
	LLMModel     string   `yaml:"llm_model,omitempty" toml:"llm_model,omitempty"`

	// Chart sizes.
	HighStressLimit int `yaml:"high_stress_limit,omitempty" toml:"high_stress_limit,omitempty"`
	TopLimit        int `yaml:"top_limit,omitempty" toml:"top_limit,omitempty"`
}

// Config file names looked up in the working directory. YAML wins when
// both exist.
const (
	FileName     = ".aisi.yaml"
	TOMLFileName = ".aisi.toml"
)

// DefaultListenAddr is where `aisi serve` listens when nothing is configured.
const DefaultListenAddr = "127.0.0.1:8501"

// ReloadEnabled reports whether the dataset is re-read for every request.
// It defaults to true.
func (c *Config) ReloadEnabled() bool {
	return c.Reload == nil || *c.Reload
}

// ListenAddress returns the configured listen address or the default.
func (c *Config) ListenAddress() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}

// BoolPtr returns a pointer to b, for building configs in code.
func BoolPtr(b bool) *bool { return &b }
