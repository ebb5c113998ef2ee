// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"geniewp/internal/models"
)

// GeneratedThemeStore persists the ThemeData of every generated theme.
type GeneratedThemeStore struct {
	db *sql.DB
}

// NewGeneratedThemeStore creates a new GeneratedThemeStore.
func NewGeneratedThemeStore(db *sql.DB) *GeneratedThemeStore {
	return &GeneratedThemeStore{db: db}
}

const generatedThemeColumns = `slug, name, data, ai_enhanced, download_url, initial_content_created, created_at, updated_at`

func scanGeneratedTheme(scanner interface{ Scan(...any) error }) (*models.ThemeRecord, error) {
	var rec models.ThemeRecord
	var data []byte
	err := scanner.Scan(&rec.Slug, &rec.Name, &data, &rec.AIEnhanced, &rec.DownloadURL,
		&rec.InitialContentCreated, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return nil, fmt.Errorf("decode theme data %s: %w", rec.Slug, err)
	}
	return &rec, nil
}

// Save inserts or replaces the record for rec.Slug. The initial content
// flag of an existing row is preserved.
func (s *GeneratedThemeStore) Save(ctx context.Context, rec *models.ThemeRecord) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("encode theme data: %w", err)
	}

	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generated_themes (slug, name, data, ai_enhanced, download_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			data = EXCLUDED.data,
			ai_enhanced = EXCLUDED.ai_enhanced,
			download_url = EXCLUDED.download_url,
			updated_at = EXCLUDED.updated_at`,
		rec.Slug, rec.Name, data, rec.AIEnhanced, rec.DownloadURL, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save generated theme %s: %w", rec.Slug, err)
	}
	return nil
}

// FindBySlug returns the record for slug, or nil if not found.
func (s *GeneratedThemeStore) FindBySlug(ctx context.Context, slug string) (*models.ThemeRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+generatedThemeColumns+` FROM generated_themes WHERE slug = $1`, slug)
	rec, err := scanGeneratedTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find generated theme: %w", err)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *GeneratedThemeStore) List(ctx context.Context) ([]models.ThemeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+generatedThemeColumns+`
		FROM generated_themes
		ORDER BY created_at DESC, slug`)
	if err != nil {
		return nil, fmt.Errorf("list generated themes: %w", err)
	}
	defer rows.Close()

	var items []models.ThemeRecord
	for rows.Next() {
		rec, err := scanGeneratedTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generated theme: %w", err)
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}

// MarkInitialContent records that the CMS created the starter pages for
// slug. It reports false when no such theme exists.
func (s *GeneratedThemeStore) MarkInitialContent(ctx context.Context, slug string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE generated_themes
		SET initial_content_created = TRUE, updated_at = $2
		WHERE slug = $1`,
		slug, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("mark initial content %s: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
