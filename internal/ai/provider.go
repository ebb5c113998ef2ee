// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface over the chat-completion
// providers used to enrich generated themes (OpenAI, Mistral, Gemini).
// The API key lives in the settings store and can change at runtime, so
// the Registry builds a provider per call from the stored key and the
// static per-provider configuration.
package ai

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Defaults for a theme content request.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 30 * time.Second
)

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// Generate sends one chat completion and returns the first choice's text.
	// systemPrompt sets the model's behaviour; userPrompt is the request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the settings for a single provider. APIKey is
// filled in per call by the Registry.
type ProviderConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

func (c ProviderConfig) withDefaults() ProviderConfig {
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Factory builds a provider from a complete configuration.
type Factory func(cfg ProviderConfig) (Provider, error)

// Registry manages the available providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	configs   map[string]ProviderConfig
	factories map[string]Factory
	active    string
}

// NewRegistry creates a registry with the built-in providers. configs
// supplies model, base URL and limits per provider name.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		configs: make(map[string]ProviderConfig),
		factories: map[string]Factory{
			"openai":  newOpenAI,
			"mistral": newMistral,
			"gemini":  newGemini,
		},
		active: active,
	}
	for name, cfg := range configs {
		r.configs[name] = cfg
	}
	if r.active == "" {
		r.active = "openai"
	}
	return r
}

// Provider builds the active provider authenticated with apiKey.
func (r *Registry) Provider(apiKey string) (Provider, error) {
	r.mu.RLock()
	name := r.active
	factory, ok := r.factories[name]
	cfg := r.configs[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("ai: no provider registered for %q", name)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ai: %s: API key is missing", name)
	}

	cfg.APIKey = apiKey
	return factory(cfg.withDefaults())
}

// SetActive switches the active provider at runtime.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the registered provider names, sorted.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider factory. Used by tests to inject
// fakes and by callers that ship extra providers.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// HasProvider checks whether a named provider is registered.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}
