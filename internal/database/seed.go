// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"geniewp/internal/models"
)

// Seed stores the bootstrap options. apiKey is written only when no key
// has been saved yet, so a key set through the admin UI is never replaced
// by the environment. An empty provider leaves the option alone.
func Seed(ctx context.Context, db *sql.DB, apiKey, provider string) error {
	if apiKey != "" {
		res, err := db.ExecContext(ctx, `
			INSERT INTO site_settings (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
			WHERE site_settings.value = ''`,
			models.OptionAPIKey, apiKey,
		)
		if err != nil {
			return fmt.Errorf("seed api key: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			slog.Info("API key seeded from configuration")
		}
	}

	if provider != "" {
		_, err := db.ExecContext(ctx, `
			INSERT INTO site_settings (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO NOTHING`,
			models.OptionAIProvider, provider,
		)
		if err != nil {
			return fmt.Errorf("seed ai provider: %w", err)
		}
	}

	return nil
}
