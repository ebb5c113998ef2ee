// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"geniewp/internal/apperr"
)

// DefaultBaseURL is the public assistants API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client talks to the threads/runs/messages API. Responses are returned
// as raw JSON so callers can hand them to the browser unchanged.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type threadMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type createThreadRequest struct {
	Messages []threadMessage   `json:"messages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type createRunRequest struct {
	AssistantID string `json:"assistant_id"`
}

type objectID struct {
	ID string `json:"id"`
}

// CreateThread opens a thread seeded with one user message and returns
// its id. A non-empty template is recorded in the thread metadata.
func (c *Client) CreateThread(ctx context.Context, apiKey, message, template string) (string, error) {
	body := createThreadRequest{
		Messages: []threadMessage{{Role: "user", Content: message}},
	}
	if template != "" {
		body.Metadata = map[string]string{"template": template}
	}
	return c.createObject(ctx, apiKey, "/threads", body)
}

// AddMessage appends a user message to an existing thread.
func (c *Client) AddMessage(ctx context.Context, apiKey, threadID, message string) error {
	_, err := c.createObject(ctx, apiKey, "/threads/"+url.PathEscape(threadID)+"/messages",
		threadMessage{Role: "user", Content: message})
	return err
}

// CreateRun starts assistantID on the thread and returns the run id.
func (c *Client) CreateRun(ctx context.Context, apiKey, threadID, assistantID string) (string, error) {
	return c.createObject(ctx, apiKey, "/threads/"+url.PathEscape(threadID)+"/runs",
		createRunRequest{AssistantID: assistantID})
}

// GetRun returns the run object as sent by the API.
func (c *Client) GetRun(ctx context.Context, apiKey, threadID, runID string) (json.RawMessage, error) {
	return c.do(ctx, apiKey, http.MethodGet,
		"/threads/"+url.PathEscape(threadID)+"/runs/"+url.PathEscape(runID), nil)
}

// ListMessages returns the thread's message list, newest first.
func (c *Client) ListMessages(ctx context.Context, apiKey, threadID string) (json.RawMessage, error) {
	return c.do(ctx, apiKey, http.MethodGet, "/threads/"+url.PathEscape(threadID)+"/messages", nil)
}

func (c *Client) createObject(ctx context.Context, apiKey, path string, body any) (string, error) {
	raw, err := c.do(ctx, apiKey, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	var obj objectID
	if err := json.Unmarshal(raw, &obj); err != nil || obj.ID == "" {
		return "", apperr.New(apperr.RemoteAPIError, "Unexpected response from the assistants API.")
	}
	return obj.ID, nil
}

type errorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one API call. Transport failures become TransportError with
// the transport's own message; an error object or a non-2xx status becomes
// RemoteAPIError carrying the remote message.
func (c *Client) do(ctx context.Context, apiKey, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("assistants marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportError, "", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("OpenAI-Beta", "assistants=v2")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportError, "", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportError, "", err)
	}

	var eb errorBody
	if json.Unmarshal(respBody, &eb) == nil && eb.Error != nil {
		msg := eb.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("Assistants API error (status %d).", resp.StatusCode)
		}
		return nil, apperr.New(apperr.RemoteAPIError, msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Newf(apperr.RemoteAPIError, "Assistants API error (status %d).", resp.StatusCode)
	}
	if !json.Valid(respBody) {
		return nil, apperr.New(apperr.RemoteAPIError, "Unexpected response from the assistants API.")
	}
	return json.RawMessage(respBody), nil
}
