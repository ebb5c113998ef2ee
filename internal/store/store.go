// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the installation options and the per-theme data
// of generated themes. Each concern has a PostgreSQL implementation and
// an in-memory one for tests and database-less runs.
package store

import (
	"context"

	"geniewp/internal/models"
)

// Settings is the option store (API key, thread id, provider).
type Settings interface {
	All(ctx context.Context) (models.SiteSettings, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, settings map[string]string) error
}

// Themes stores one ThemeRecord per generated theme slug.
type Themes interface {
	Save(ctx context.Context, rec *models.ThemeRecord) error
	FindBySlug(ctx context.Context, slug string) (*models.ThemeRecord, error)
	List(ctx context.Context) ([]models.ThemeRecord, error)
	MarkInitialContent(ctx context.Context, slug string) (bool, error)
}

var (
	_ Settings = (*SiteSettingStore)(nil)
	_ Settings = (*MemorySettings)(nil)
	_ Themes   = (*GeneratedThemeStore)(nil)
	_ Themes   = (*MemoryThemes)(nil)
)
