// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/config"
	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// configDir is where the project config file is looked up.
var configDir = "."

// loadConfig layers global config, project config, the global --data and
// --root flags, and finally overlay. Later layers win. The result is
// validated.
func loadConfig(cmd *cobra.Command, overlay *config.Config) (*config.Config, error) {
	layered, err := config.LoadLayered(configDir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "aisi: failed to load config (%v)", err)
	}

	flags := &config.Config{}
	if cmd.Flags().Changed("data") {
		flags.DataPath = dataPath
	}
	if cmd.Flags().Changed("root") {
		flags.SearchRoot = searchRoot
	}
	cfg := config.Merge(config.Merge(layered, flags), overlay)

	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "aisi: %v", err)
	}
	slog.Debug("config loaded", "data_path", cfg.DataPath, "search_root", cfg.SearchRoot)
	return cfg, nil
}

func locateOptions(cfg *config.Config) dataset.LocateOptions {
	return dataset.LocateOptions{Path: cfg.DataPath, Root: cfg.SearchRoot}
}

func renderSettings(cfg *config.Config, source string) dashboard.Settings {
	return dashboard.Settings{
		Source:             source,
		HighStressLimit:    cfg.HighStressLimit,
		TopComparisonLimit: cfg.TopLimit,
	}
}

// datasetError maps a dataset load failure to an exit error.
func datasetError(err error) *exitCodeError {
	if errors.Is(err, dataset.ErrNotFound) {
		return exitError(ExitDatasetMissing, "aisi: %s (%v)", dataset.NotFoundMessage, err)
	}
	return exitError(ExitDatasetMissing, "aisi: failed to load dataset (%v)", err)
}

// loadView resolves the dataset for cfg and renders f.
func loadView(cfg *config.Config, f dashboard.Filter) (*dashboard.ViewModel, error) {
	loc, tbl, err := dataset.Resolve(locateOptions(cfg))
	if err != nil {
		return nil, datasetError(err)
	}
	slog.Info("dataset loaded", "path", loc.Path, "rows", tbl.Len())
	return dashboard.Render(tbl, f, renderSettings(cfg, loc.Base())), nil
}
