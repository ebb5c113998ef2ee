// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"geniewp/internal/database"
	"geniewp/internal/models"
	"geniewp/internal/themedata"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "geniewp")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "geniewp")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if _, err := database.Migrate(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func cleanSettings(t *testing.T, db *sql.DB, keys ...string) {
	t.Helper()
	for _, key := range keys {
		db.Exec("DELETE FROM site_settings WHERE key = $1", key)
	}
}

func cleanThemes(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM generated_themes WHERE slug = $1", slug)
	}
}

func sampleRecord(slug string) *models.ThemeRecord {
	td := themedata.Normalize(models.ThemeRequest{SiteName: "Acme Bakery", BusinessType: "Bakery"}, nil)
	return &models.ThemeRecord{Slug: slug, Name: td.SiteName, Data: td}
}

// settingsCases runs fn against the memory implementation and, when
// PostgreSQL is reachable, against the database one.
func settingsCases(t *testing.T, fn func(t *testing.T, s Settings)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemorySettings(nil)) })
	t.Run("postgres", func(t *testing.T) {
		db := testDB(t)
		t.Cleanup(func() { cleanSettings(t, db, "test_key_a", "test_key_b") })
		fn(t, NewSiteSettingStore(db))
	})
}

func themeCases(t *testing.T, fn func(t *testing.T, s Themes)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryThemes()) })
	t.Run("postgres", func(t *testing.T) {
		db := testDB(t)
		t.Cleanup(func() { cleanThemes(t, db, "geniewp-test-store", "geniewp-test-store-1") })
		fn(t, NewGeneratedThemeStore(db))
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	settingsCases(t, func(t *testing.T, s Settings) {
		ctx := context.Background()

		if v, err := s.Get(ctx, "test_key_a"); err != nil || v != "" {
			t.Fatalf("missing key: %q, %v", v, err)
		}
		if err := s.Set(ctx, "test_key_a", "one"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := s.Set(ctx, "test_key_a", "two"); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		if v, _ := s.Get(ctx, "test_key_a"); v != "two" {
			t.Errorf("Get = %q, want two", v)
		}

		_ = s.Set(ctx, "test_key_b", "b")
		all, err := s.All(ctx)
		if err != nil {
			t.Fatalf("All: %v", err)
		}
		if all.Get("test_key_b", "") != "b" {
			t.Errorf("All missing test_key_b: %v", all)
		}

		if err := s.Delete(ctx, "test_key_a"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if v, _ := s.Get(ctx, "test_key_a"); v != "" {
			t.Errorf("deleted key still = %q", v)
		}
		if err := s.Delete(ctx, "test_key_a"); err != nil {
			t.Errorf("deleting a missing key: %v", err)
		}
	})
}

func TestThemesSaveFindList(t *testing.T) {
	themeCases(t, func(t *testing.T, s Themes) {
		ctx := context.Background()

		if rec, err := s.FindBySlug(ctx, "geniewp-test-store"); err != nil || rec != nil {
			t.Fatalf("missing slug: %v, %v", rec, err)
		}

		if err := s.Save(ctx, sampleRecord("geniewp-test-store")); err != nil {
			t.Fatalf("Save: %v", err)
		}
		rec, err := s.FindBySlug(ctx, "geniewp-test-store")
		if err != nil || rec == nil {
			t.Fatalf("FindBySlug: %v, %v", rec, err)
		}
		if rec.Data.Content.Hero.Headline != "Welcome to Acme Bakery" {
			t.Errorf("data not round-tripped: %+v", rec.Data.Content.Hero)
		}
		if len(rec.Data.Colors) != 8 {
			t.Errorf("colors = %d", len(rec.Data.Colors))
		}

		_ = s.Save(ctx, sampleRecord("geniewp-test-store-1"))
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		found := 0
		for _, r := range list {
			if r.Slug == "geniewp-test-store" || r.Slug == "geniewp-test-store-1" {
				found++
			}
		}
		if found != 2 {
			t.Errorf("List returned %d of 2 records", found)
		}
	})
}

func TestThemesInitialContentFlag(t *testing.T) {
	themeCases(t, func(t *testing.T, s Themes) {
		ctx := context.Background()

		ok, err := s.MarkInitialContent(ctx, "geniewp-test-store")
		if err != nil || ok {
			t.Fatalf("marking a missing theme: %v, %v", ok, err)
		}

		_ = s.Save(ctx, sampleRecord("geniewp-test-store"))
		ok, err = s.MarkInitialContent(ctx, "geniewp-test-store")
		if err != nil || !ok {
			t.Fatalf("MarkInitialContent: %v, %v", ok, err)
		}

		// Saving again must not clear the flag.
		_ = s.Save(ctx, sampleRecord("geniewp-test-store"))
		rec, _ := s.FindBySlug(ctx, "geniewp-test-store")
		if rec == nil || !rec.InitialContentCreated {
			t.Errorf("flag lost: %+v", rec)
		}
	})
}

func TestSettingsSetMany(t *testing.T) {
	settingsCases(t, func(t *testing.T, s Settings) {
		ctx := context.Background()
		err := s.SetMany(ctx, map[string]string{"test_key_a": "x", "test_key_b": "y"})
		if err != nil {
			t.Fatalf("SetMany: %v", err)
		}
		a, _ := s.Get(ctx, "test_key_a")
		b, _ := s.Get(ctx, "test_key_b")
		if a != "x" || b != "y" {
			t.Errorf("got %q/%q", a, b)
		}
	})
}
