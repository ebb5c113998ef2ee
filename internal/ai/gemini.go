// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"geniewp/internal/apperr"
)

const geminiDefaultModel = "gemini-2.0-flash"

// geminiProvider implements Provider using the Google Gen AI SDK against
// the Gemini API backend.
type geminiProvider struct {
	config ProviderConfig
	client *genai.Client
}

func newGemini(cfg ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		cfg.Model = geminiDefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(cfg.BaseURL, "/") + "/"}
	}

	// NewClient does no network I/O for the Gemini API backend.
	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &geminiProvider{config: cfg, client: client}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

// Generate sends a generateContent request with the system prompt as the
// system instruction.
func (p *geminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	maxTokens := int32(p.config.MaxTokens)
	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(p.config.Temperature),
		MaxOutputTokens:   maxTokens,
	})
	if err != nil {
		return "", classifyGemini(err)
	}

	text := resp.Text()
	if text == "" {
		return "", apperr.New(apperr.MalformedAIResponse, "gemini: no candidates returned")
	}
	return text, nil
}
