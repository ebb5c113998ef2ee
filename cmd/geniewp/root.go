// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"geniewp/internal/ui"
)

// Version is set by ldflags during build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "geniewp",
	Short:         "AI-assisted WordPress block theme generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "geniewp %s\n", Version)
	},
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner(Version) + "\n" + ui.Divider() +
		"\n\n  Generates WordPress block themes and proxies the guided onboarding conversation."
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(setKeyCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(totpSetupCmd)
}
