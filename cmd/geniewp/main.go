// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command geniewp serves the theme generator and the guided onboarding
// API, and bundles the maintenance commands an operator needs around it.
package main

import (
	"os"

	"geniewp/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
