// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"geniewp/internal/ai"
	"geniewp/internal/config"
	"geniewp/internal/database"
	"geniewp/internal/models"
	"geniewp/internal/store"
)

// settingsStore is the option store shared by the server and the CLI.
type settingsStore interface {
	All(ctx context.Context) (models.SiteSettings, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, settings map[string]string) error
}

// themeStore keeps the records of generated themes.
type themeStore interface {
	Save(ctx context.Context, rec *models.ThemeRecord) error
	FindBySlug(ctx context.Context, slug string) (*models.ThemeRecord, error)
	List(ctx context.Context) ([]models.ThemeRecord, error)
	MarkInitialContent(ctx context.Context, slug string) (bool, error)
}

type stores struct {
	db       *sql.DB
	settings settingsStore
	themes   themeStore
}

func (s *stores) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// openStores connects the configured store driver. With postgres the
// schema is migrated and the bootstrap options are seeded.
func openStores(cfg *config.Config) (*stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		initial := map[string]string{}
		if cfg.AIAPIKey != "" {
			initial[models.OptionAPIKey] = cfg.AIAPIKey
		}
		if cfg.AIProvider != "" {
			initial[models.OptionAIProvider] = cfg.AIProvider
		}
		slog.Warn("using in-memory stores, settings and themes are lost on restart")
		return &stores{
			settings: store.NewMemorySettings(initial),
			themes:   store.NewMemoryThemes(),
		}, nil
	}

	ctx, cancel := timeoutContext(30 * time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	version, err := database.Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("database ready", "schema_version", version)
	if err := database.Seed(ctx, db, cfg.AIAPIKey, cfg.AIProvider); err != nil {
		db.Close()
		return nil, err
	}
	return &stores{
		db:       db,
		settings: store.NewSiteSettingStore(db),
		themes:   store.NewGeneratedThemeStore(db),
	}, nil
}

// newRegistry builds the provider registry. The stored provider choice
// wins over the configured one.
func newRegistry(ctx context.Context, cfg *config.Config, settings settingsStore) *ai.Registry {
	active := cfg.AIProvider
	if stored, err := settings.Get(ctx, models.OptionAIProvider); err != nil {
		slog.Warn("stored ai provider not readable", "error", err)
	} else if stored != "" {
		active = stored
	}

	registry := ai.NewRegistry(active, map[string]ai.ProviderConfig{
		"openai":  {Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL, Timeout: cfg.AITimeout},
		"mistral": {Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL, Timeout: cfg.AITimeout},
		"gemini":  {Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL, Timeout: cfg.AITimeout},
	})
	if !registry.HasProvider(active) {
		slog.Warn("unknown ai provider, falling back to openai", "provider", active)
		_ = registry.SetActive("openai")
	}
	return registry
}

func timeoutContext(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = ai.DefaultTimeout
	}
	return context.WithTimeout(context.Background(), d)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
