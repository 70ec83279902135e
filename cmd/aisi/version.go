// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// versionCmd prints the aisi version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the aisi binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "aisi %s\n", displayVersion(Version))
	},
}

// displayVersion canonicalizes release versions ("1.2" becomes "v1.2.0")
// and marks pre-releases. Anything else, such as "dev", is shown as is.
func displayVersion(v string) string {
	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return v
	}
	c := semver.Canonical(sv)
	if semver.Prerelease(sv) != "" {
		return c + " (pre-release)"
	}
	return c
}
