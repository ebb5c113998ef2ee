// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"geniewp/internal/apperr"
	"geniewp/internal/assistant"
)

// API groups the guided onboarding endpoints under /<namespace>/v1.
type API struct {
	proxy     *assistant.Proxy
	templates *Templates
}

// NewAPI creates the API handler group.
func NewAPI(proxy *assistant.Proxy, templates *Templates) *API {
	return &API{proxy: proxy, templates: templates}
}

// Send posts the user's message for a step and starts a run.
func (a *API) Send(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := p.Require("step"); err != nil {
		writeFailure(w, err)
		return
	}

	if msg := validateMessage(p.Get("message")); msg != "" {
		writeFailure(w, apperr.New(apperr.InvalidInput, msg))
		return
	}

	ref, err := a.proxy.Send(r.Context(), p.Get("step"), p.Get("message"), p.Get("template"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, ref)
}

// Status returns the run object as the assistants API reported it.
func (a *API) Status(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := p.Require("thread_id", "run_id"); err != nil {
		writeFailure(w, err)
		return
	}

	run, err := a.proxy.Status(r.Context(), p.Get("thread_id"), p.Get("run_id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeRaw(w, run)
}

// Get returns the thread's message list and records any guided values
// found in the newest assistant reply.
func (a *API) Get(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := p.Require("thread_id"); err != nil {
		writeFailure(w, err)
		return
	}

	list, err := a.proxy.Messages(r.Context(), p.Get("thread_id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeRaw(w, list)
}

// Templates lists the guided template definitions.
func (a *API) Templates(w http.ResponseWriter, r *http.Request) {
	list, err := a.templates.List()
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, list)
}

// Export starts a run on a fresh thread that builds the final theme.
func (a *API) Export(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := p.Require("title"); err != nil {
		writeFailure(w, err)
		return
	}

	if msg := validateExport(p.Get("title"), p.Get("description"), p.Strings("images")); msg != "" {
		writeFailure(w, apperr.New(apperr.InvalidInput, msg))
		return
	}

	ref, err := a.proxy.Export(r.Context(), p.Get("title"), p.Get("description"), p.Strings("images"), p.Get("slug"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, ref)
}

// Values returns the guided values extracted so far.
func (a *API) Values(w http.ResponseWriter, r *http.Request) {
	values, err := a.proxy.Values(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, values)
}

// ResetThread forgets the stored thread so the next send starts over.
func (a *API) ResetThread(w http.ResponseWriter, r *http.Request) {
	if err := a.proxy.Reset(r.Context()); err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"reset": true})
}
