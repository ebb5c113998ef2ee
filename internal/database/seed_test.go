// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"testing"

	"geniewp/internal/models"
)

func TestSeedKeepsExistingKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	_, _ = db.Exec(`DELETE FROM site_settings WHERE key = $1`, models.OptionAPIKey)
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM site_settings WHERE key = $1`, models.OptionAPIKey)
	})

	if err := Seed(ctx, db, "sk-first", ""); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(ctx, db, "sk-second", ""); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var key string
	if err := db.QueryRow(`SELECT value FROM site_settings WHERE key = $1`, models.OptionAPIKey).Scan(&key); err != nil {
		t.Fatalf("read key: %v", err)
	}
	if key != "sk-first" {
		t.Errorf("key = %q, want sk-first", key)
	}
}
