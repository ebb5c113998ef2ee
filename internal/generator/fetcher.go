// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"geniewp/internal/ai"
	"geniewp/internal/apperr"
	"geniewp/internal/models"
	"geniewp/internal/themedata"
)

// SystemPrompt is the instruction sent with every theme content request.
const SystemPrompt = "You are a WordPress block theme expert. Generate theme.json configuration and HTML templates based on user requirements."

const responseShape = `Respond with exactly one JSON object and nothing else, using this structure:
{
  "theme_name": "string",
  "theme_slug": "string",
  "colors": [{"name": "Primary", "slug": "primary", "color": "#rrggbb"}],
  "typography": {"heading_font": "font stack", "body_font": "font stack"},
  "content": {
    "hero": {"headline": "string", "subheadline": "string", "cta_text": "string"},
    "services": [{"title": "string", "description": "string"}],
    "about": {"heading": "string", "content": "string"},
    "cta": {"heading": "string", "text": "string", "button_text": "string"}
  },
  "navigation": ["Home", "About", "Services", "Blog", "Contact"]
}
Use palette slugs primary, secondary, accent, white, black, light-gray, gray and dark-gray. Provide three or four services.`

// ProviderSource hands out a provider authenticated with the given key.
// *ai.Registry satisfies it.
type ProviderSource interface {
	Provider(apiKey string) (ai.Provider, error)
}

// Fetcher asks the configured AI provider for theme content.
type Fetcher struct {
	providers ProviderSource
}

// NewFetcher creates a Fetcher backed by providers.
func NewFetcher(providers ProviderSource) *Fetcher {
	return &Fetcher{providers: providers}
}

// BuildPrompt renders the user prompt for req. Optional fields are left
// out when empty.
func BuildPrompt(req models.ThemeRequest) string {
	var b strings.Builder
	b.WriteString("Create a modern WordPress block theme with these details:\n\n")
	fmt.Fprintf(&b, "Website Name: %s\n", req.SiteName)
	fmt.Fprintf(&b, "Business Type: %s\n", req.BusinessType)
	if req.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", req.Tagline)
	}
	if req.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.Description)
	}
	fmt.Fprintf(&b, "Primary Color: %s\n", req.PrimaryColor)
	fmt.Fprintf(&b, "Secondary Color: %s\n\n", req.SecondaryColor)
	b.WriteString(responseShape)
	return b.String()
}

// Fetch performs one completion and decodes the reply. Every error is an
// *apperr.Error of an AI kind; the caller is expected to carry on with
// defaults.
func (f *Fetcher) Fetch(ctx context.Context, apiKey string, req models.ThemeRequest) (*themedata.Payload, error) {
	if apiKey == "" {
		return nil, apperr.New(apperr.AIUnavailable, "no API key configured")
	}

	provider, err := f.providers.Provider(apiKey)
	if err != nil {
		return nil, apperr.Wrap(apperr.AIUnavailable, "", err)
	}

	text, err := provider.Generate(ctx, SystemPrompt, BuildPrompt(req))
	if err != nil {
		if apperr.KindOf(err) == "" {
			return nil, apperr.Wrap(apperr.TransportError, provider.Name(), err)
		}
		return nil, err
	}

	raw, err := ai.ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	payload, err := themedata.ParsePayload(raw)
	if err != nil {
		if errors.Is(err, themedata.ErrNotObject) {
			return nil, apperr.New(apperr.MalformedAIResponse, "AI response is not a JSON object")
		}
		return nil, apperr.Wrap(apperr.MalformedAIResponse, "decode AI response", err)
	}
	return payload, nil
}
