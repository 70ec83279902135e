// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aisi-dashboard/aisi/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify aisi configuration",
	Long: `View and modify aisi configuration.

aisi reads .aisi.yaml (or .aisi.toml) from the working directory.
A global config at ~/.config/aisi/config.yaml provides defaults.
Project settings override global settings, and flags override both.

Note: config set round-trips the file and will not preserve comments.`,
}

// configGetCmd retrieves a configuration value.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value.

Examples:
  aisi config get data_path
  aisi config get --global listen_addr`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Values are auto-detected as bool, int, float, or string; cors_origins takes
a comma-separated list. By default, writes to the project config in the
current directory (.aisi.yaml unless .aisi.toml already exists). Use --global
to write to ~/.config/aisi/config.yaml.

Examples:
  aisi config set data_path data/aisi_district_results.csv
  aisi config set reload false
  aisi config set cors_origins https://a.example,https://b.example
  aisi config set --global no_llm true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every set configuration value, annotated with whether it comes from
the project config or the global config. Project values override global
values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long:  "Print the configuration after merging the global file, the project file and the --data and --root flags.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		return config.Write(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/aisi/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/aisi/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.LoadLayered(configDir)
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: loading config (%v)", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}
	return printValue(cmd, val)
}

// configTarget returns the file `config set` writes to.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	if path := config.Find(configDir); path != "" {
		return path
	}
	return filepath.Join(configDir, config.FileName)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}

	targetPath := configTarget()
	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: loading config file (%v)", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return exitError(ExitInvalidArgs, "aisi: setting value (%v)", err)
	}

	// Round-trip through Config so type errors surface before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("aisi: marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return exitError(ExitInvalidArgs, "aisi: invalid value for %s (%v)", keyPath, err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return exitError(ExitInvalidArgs, "aisi: %v", err)
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("aisi: writing config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: loading global config (%v)", err)
	}
	projectCfg, err := config.Load(configDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "aisi: loading project config (%v)", err)
	}
	globalMap, err := config.ToMap(globalCfg)
	if err != nil {
		return err
	}
	projectMap, err := config.ToMap(projectCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range projectMap {
		seen[k] = entry{value: v, source: "project"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'aisi config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	projectColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		label := projectColor.Sprint("(project)")
		if e.source == "global" {
			label = globalColor.Sprint("(global)")
		}
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, label)
	}
	return nil
}

// printValue outputs a value: scalars as plain text, lists as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd} {
		if f := c.Flags().Lookup("global"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
}
