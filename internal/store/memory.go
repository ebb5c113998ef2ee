// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"geniewp/internal/models"
)

// MemorySettings keeps options in a map.
type MemorySettings struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemorySettings creates a MemorySettings preloaded with initial.
func NewMemorySettings(initial map[string]string) *MemorySettings {
	m := make(map[string]string, len(initial))
	for k, v := range initial {
		m[k] = v
	}
	return &MemorySettings{m: m}
}

func (s *MemorySettings) All(_ context.Context) (models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.SiteSettings, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out, nil
}

func (s *MemorySettings) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key], nil
}

func (s *MemorySettings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemorySettings) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *MemorySettings) SetMany(_ context.Context, settings map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range settings {
		s.m[k] = v
	}
	return nil
}

// MemoryThemes keeps theme records in a map.
type MemoryThemes struct {
	mu   sync.RWMutex
	recs map[string]models.ThemeRecord
}

func NewMemoryThemes() *MemoryThemes {
	return &MemoryThemes{recs: make(map[string]models.ThemeRecord)}
}

func (s *MemoryThemes) Save(_ context.Context, rec *models.ThemeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	stored := *rec
	if prev, ok := s.recs[rec.Slug]; ok {
		stored.InitialContentCreated = prev.InitialContentCreated
	}
	s.recs[rec.Slug] = stored
	return nil
}

func (s *MemoryThemes) FindBySlug(_ context.Context, slug string) (*models.ThemeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[slug]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *MemoryThemes) List(_ context.Context) ([]models.ThemeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ThemeRecord, 0, len(s.recs))
	for _, r := range s.recs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (s *MemoryThemes) MarkInitialContent(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[slug]
	if !ok {
		return false, nil
	}
	rec.InitialContentCreated = true
	rec.UpdatedAt = time.Now()
	s.recs[slug] = rec
	return true, nil
}
