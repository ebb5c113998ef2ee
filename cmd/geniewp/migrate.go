// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"geniewp/internal/config"
	"geniewp/internal/database"
	"geniewp/internal/ui"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.StoreDriver != config.DriverPostgres {
			ui.Warning(cmd.OutOrStdout(), "store driver is %q, nothing to migrate", cfg.StoreDriver)
			return nil
		}

		ctx := cmd.Context()
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		version, err := database.Migrate(ctx, db)
		if err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "database is up to date")
		ui.KeyValue(cmd.OutOrStdout(), "Schema version", strconv.FormatInt(version, 10))
		return nil
	},
}
