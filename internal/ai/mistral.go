// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

const (
	mistralDefaultBaseURL = "https://api.mistral.ai/v1"
	mistralDefaultModel   = "mistral-small-latest"
)

// newMistral builds a Mistral provider. La Plateforme exposes an
// OpenAI-compatible chat completions endpoint, so the same client is reused
// with a different base URL.
func newMistral(cfg ProviderConfig) (Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = mistralDefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = mistralDefaultModel
	}
	return newChatCompletions("mistral", cfg), nil
}
