// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strings"

	"geniewp/internal/ai"
	"geniewp/internal/apperr"
	"geniewp/internal/models"
)

// SettingsStore is the persisted option store.
type SettingsStore interface {
	All(ctx context.Context) (models.SiteSettings, error)
	SetMany(ctx context.Context, settings map[string]string) error
}

// Settings serves the plugin options page equivalent: API key presence
// and the active AI provider.
type Settings struct {
	store    SettingsStore
	registry *ai.Registry
}

// NewSettings creates the settings handler group.
func NewSettings(store SettingsStore, registry *ai.Registry) *Settings {
	return &Settings{store: store, registry: registry}
}

type settingsView struct {
	HasAPIKey  bool     `json:"has_api_key"`
	APIKeyHint string   `json:"api_key_hint,omitempty"`
	AIProvider string   `json:"ai_provider"`
	Providers  []string `json:"providers"`
}

// Get reports the current settings. The key itself is never returned.
func (s *Settings) Get(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.All(r.Context())
	if err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not load settings", err))
		return
	}
	writeSuccess(w, s.view(all))
}

// Update stores api_key and/or ai_provider. An unknown provider is
// rejected; a provider change takes effect immediately.
func (s *Settings) Update(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	changes := make(map[string]string)
	if _, ok := p.values["api_key"]; ok {
		key := strings.TrimSpace(p.Get("api_key"))
		if msg := validateAPIKey(key); msg != "" {
			writeFailure(w, apperr.New(apperr.InvalidInput, msg))
			return
		}
		changes[models.OptionAPIKey] = key
	}
	provider := strings.TrimSpace(p.Get("ai_provider"))
	if provider != "" {
		if !s.registry.HasProvider(provider) {
			writeFailure(w, apperr.Newf(apperr.InvalidInput, "Unknown AI provider: %s", provider))
			return
		}
		changes[models.OptionAIProvider] = provider
	}
	if len(changes) == 0 {
		writeFailure(w, apperr.New(apperr.InvalidInput, "Missing parameter(s): api_key or ai_provider"))
		return
	}

	if err := s.store.SetMany(r.Context(), changes); err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not save settings", err))
		return
	}
	if provider != "" {
		if err := s.registry.SetActive(provider); err != nil {
			writeFailure(w, apperr.Wrap(apperr.InvalidInput, "", err))
			return
		}
	}

	all, err := s.store.All(r.Context())
	if err != nil {
		writeFailure(w, apperr.Wrap(apperr.StorageError, "Could not load settings", err))
		return
	}
	writeSuccess(w, s.view(all))
}

func (s *Settings) view(all models.SiteSettings) settingsView {
	key := all.Get(models.OptionAPIKey, "")
	v := settingsView{
		HasAPIKey:  key != "",
		AIProvider: all.Get(models.OptionAIProvider, s.registry.ActiveName()),
		Providers:  s.registry.Available(),
	}
	if len(key) > 8 {
		v.APIKeyHint = "…" + key[len(key)-4:]
	}
	return v
}
