// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aisi-dashboard/aisi/internal/config"
	"github.com/aisi-dashboard/aisi/internal/dashboard"
	"github.com/aisi-dashboard/aisi/internal/llm"
)

// Brief-specific flag values.
var (
	briefState string
	briefLevel string
	briefModel string
)

// newProvider builds the LLM provider. Tests replace it with a mock.
var newProvider = func(model string) (llm.Provider, error) {
	return llm.NewAnthropicProvider(llm.WithModel(model))
}

// briefCmd asks an LLM for a narrative summary of a view.
var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Write a narrative brief of the dashboard with an LLM",
	Long: `Send a compact digest of the dashboard view to Anthropic and print a short
narrative brief. Requires ` + llm.APIKeyEnv + `.

When --state names a state with high-stress districts, the fixed recommended
actions are printed after the brief. Set no_llm: true in the config to
disable this command.`,
	Args: cobra.NoArgs,
	RunE: runBrief,
}

func init() {
	addFilterFlags(briefCmd, &briefState, &briefLevel)
	briefCmd.Flags().StringVar(&briefModel, "model", "", "model to use (default "+llm.DefaultModel+")")
}

func runBrief(cmd *cobra.Command, _ []string) error {
	overlay := &config.Config{}
	if cmd.Flags().Changed("model") {
		overlay.LLMModel = briefModel
	}
	cfg, err := loadConfig(cmd, overlay)
	if err != nil {
		return err
	}
	if cfg.NoLLM {
		return exitError(ExitInvalidArgs, "aisi: brief is disabled by no_llm in the config")
	}

	vm, err := loadView(cfg, dashboard.Filter{State: briefState, Level: briefLevel})
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg.LLMModel)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return exitError(ExitInvalidArgs, "aisi: set %s to use brief", llm.APIKeyEnv)
		}
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}

	slog.Info("requesting brief", "state", vm.Filter.State, "level", vm.Filter.Level)
	text, err := llm.Brief(cmd.Context(), provider, vm, cfg.LLMModel)
	if err != nil {
		return exitError(ExitRenderFailure, "aisi: brief failed (%v)", err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, text)
	if vm.Diagnosis != nil && len(vm.Diagnosis.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Recommended Actions:")
		for i, rec := range vm.Diagnosis.Recommendations {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}
	return nil
}
