// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"geniewp/internal/apperr"
	"geniewp/internal/middleware"
	"geniewp/internal/models"
	"geniewp/internal/render"
)

// ThemeStore reads and flags generated theme records.
type ThemeStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.ThemeRecord, error)
	List(ctx context.Context) ([]models.ThemeRecord, error)
	MarkInitialContent(ctx context.Context, slug string) (bool, error)
}

const msgThemeNotFound = "Theme not found."

// Themes lists generated themes and serves their starter content.
type Themes struct {
	store ThemeStore
}

// NewThemes creates the themes handler group.
func NewThemes(store ThemeStore) *Themes {
	return &Themes{store: store}
}

// List returns every generated theme, newest first.
func (t *Themes) List(w http.ResponseWriter, r *http.Request) {
	recs, err := t.store.List(r.Context())
	if err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not list themes", err))
		return
	}
	if recs == nil {
		recs = []models.ThemeRecord{}
	}
	writeSuccess(w, recs)
}

type initialContentView struct {
	Slug    string                `json:"slug"`
	Created bool                  `json:"initial_content_created"`
	Content render.InitialContent `json:"content"`
}

// InitialContent renders the starter pages and menu for a theme from its
// stored data.
func (t *Themes) InitialContent(w http.ResponseWriter, r *http.Request) {
	rec, ok := t.find(w, r)
	if !ok {
		return
	}
	writeSuccess(w, initialContentView{
		Slug:    rec.Slug,
		Created: rec.InitialContentCreated,
		Content: render.Pages(rec.Data),
	})
}

// MarkInitialContent records that the CMS created the starter content.
// Repeating the call is harmless.
func (t *Themes) MarkInitialContent(w http.ResponseWriter, r *http.Request) {
	themeSlug := chi.URLParam(r, "slug")
	found, err := t.store.MarkInitialContent(r.Context(), themeSlug)
	if err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not update theme", err))
		return
	}
	if !found {
		middleware.WriteError(w, http.StatusNotFound, msgThemeNotFound)
		return
	}
	writeSuccess(w, map[string]any{"slug": themeSlug, "initial_content_created": true})
}

func (t *Themes) find(w http.ResponseWriter, r *http.Request) (*models.ThemeRecord, bool) {
	rec, err := t.store.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not load theme", err))
		return nil, false
	}
	if rec == nil {
		middleware.WriteError(w, http.StatusNotFound, msgThemeNotFound)
		return nil, false
	}
	return rec, true
}
