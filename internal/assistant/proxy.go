// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assistant proxies the guided onboarding conversation to the
// external assistants API. It keeps a single thread per installation,
// picks the assistant for each step and extracts the strings and images
// the guided front-end renders.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"geniewp/internal/apperr"
	"geniewp/internal/models"
	"geniewp/internal/slug"
)

// ErrMissingKey is returned by every call made without a stored API key.
var ErrMissingKey = apperr.New(apperr.AIUnavailable, "API key is missing.")

// Settings is the persisted option store the proxy reads the API key
// from and keeps the thread id in.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RunRef identifies a started run.
type RunRef struct {
	ThreadID string `json:"thread_id"`
	RunID    string `json:"run_id"`
	Slug     string `json:"slug,omitempty"`
}

// Proxy is the conversation state machine: no thread, thread active, run
// pending. Run completion is observed by the caller through Status.
type Proxy struct {
	client           *Client
	settings         Settings
	values           ValuesSink
	defaultAssistant string
}

// NewProxy creates a Proxy. values may be nil, in which case extracted
// values are only logged. defaultAssistant overrides DefaultAssistantID
// when non-empty.
func NewProxy(client *Client, settings Settings, values ValuesSink, defaultAssistant string) *Proxy {
	return &Proxy{
		client:           client,
		settings:         settings,
		values:           values,
		defaultAssistant: defaultAssistant,
	}
}

// Send posts message for step and starts a run. The welcome step always
// starts a fresh thread.
func (p *Proxy) Send(ctx context.Context, step, message, template string) (*RunRef, error) {
	apiKey, err := p.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	if step == StepWelcome {
		if err := p.Reset(ctx); err != nil {
			return nil, err
		}
	}

	threadID, err := p.settings.Get(ctx, models.OptionThreadID)
	if err != nil {
		return nil, apperr.Wrap(apperr.StorageError, "Could not read the conversation state", err)
	}

	if threadID == "" {
		threadID, err = p.client.CreateThread(ctx, apiKey, message, template)
		if err != nil {
			return nil, err
		}
		if err := p.settings.Set(ctx, models.OptionThreadID, threadID); err != nil {
			return nil, apperr.Wrap(apperr.StorageError, "Could not save the conversation state", err)
		}
		slog.Info("assistant thread created", "thread_id", threadID, "step", step)
	} else if err := p.client.AddMessage(ctx, apiKey, threadID, message); err != nil {
		return nil, err
	}

	runID, err := p.client.CreateRun(ctx, apiKey, threadID, AssistantFor(step, p.defaultAssistant))
	if err != nil {
		return nil, err
	}
	return &RunRef{ThreadID: threadID, RunID: runID}, nil
}

// Status polls a run once and returns the remote payload verbatim.
func (p *Proxy) Status(ctx context.Context, threadID, runID string) (json.RawMessage, error) {
	apiKey, err := p.apiKey(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.GetRun(ctx, apiKey, threadID, runID)
}

// Messages returns the thread's message list verbatim and records the
// guided values found in the newest assistant reply.
func (p *Proxy) Messages(ctx context.Context, threadID string) (json.RawMessage, error) {
	apiKey, err := p.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	list, err := p.client.ListMessages(ctx, apiKey, threadID)
	if err != nil {
		return nil, err
	}

	values := ExtractValues(LatestAssistantText(list))
	if len(values) > 0 && p.values != nil {
		if err := p.values.Put(ctx, values); err != nil {
			slog.Warn("guided values not stored", "thread_id", threadID, "error", err)
		}
	}
	slog.Debug("assistant messages fetched", "thread_id", threadID, "values", len(values))
	return list, nil
}

// Export starts a one-off thread asking the export assistant to build a
// theme from the collected title, description and images. The thread is
// not stored.
func (p *Proxy) Export(ctx context.Context, title, description string, images []string, themeSlug string) (*RunRef, error) {
	apiKey, err := p.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	if themeSlug == "" {
		themeSlug = slug.Generate(title)
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	prompt := fmt.Sprintf("Create a WordPress theme named %s with the description %s and the images %s.",
		title, description, imagesJSON)

	threadID, err := p.client.CreateThread(ctx, apiKey, prompt, "")
	if err != nil {
		return nil, err
	}
	runID, err := p.client.CreateRun(ctx, apiKey, threadID, AssistantFor(StepExport, p.defaultAssistant))
	if err != nil {
		return nil, err
	}
	return &RunRef{ThreadID: threadID, RunID: runID, Slug: themeSlug}, nil
}

// Reset forgets the stored thread and the values extracted from it.
func (p *Proxy) Reset(ctx context.Context) error {
	if err := p.settings.Delete(ctx, models.OptionThreadID); err != nil {
		return apperr.Wrap(apperr.StorageError, "Could not reset the conversation", err)
	}
	if p.values != nil {
		if err := p.values.Clear(ctx); err != nil {
			slog.Warn("guided values not cleared", "error", err)
		}
	}
	return nil
}

// Values returns the guided values extracted so far.
func (p *Proxy) Values(ctx context.Context) ([]models.GuidedValue, error) {
	if p.values == nil {
		return nil, nil
	}
	return p.values.All(ctx)
}

func (p *Proxy) apiKey(ctx context.Context) (string, error) {
	key, err := p.settings.Get(ctx, models.OptionAPIKey)
	if err != nil {
		return "", apperr.Wrap(apperr.StorageError, "Could not read the API key", err)
	}
	if key == "" {
		return "", ErrMissingKey
	}
	return key, nil
}
