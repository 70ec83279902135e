// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global aisi configuration.
// It uses $XDG_CONFIG_HOME/aisi if set, otherwise ~/.config/aisi.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aisi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aisi")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	return LoadFile(GlobalConfigPath())
}

// LoadLayered loads the global config and the project config in dir and
// merges them, project values winning.
func LoadLayered(dir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	project, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return Merge(global, project), nil
}
