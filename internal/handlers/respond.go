// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for GenieWP. Handlers are
// grouped by concern (assistant API, theme generation, admin support,
// auth) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"geniewp/internal/apperr"
	"geniewp/internal/middleware"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeSuccess sends {"success":true,"data":data}.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeRaw sends {"success":true,"data":<raw>} without re-encoding raw.
func writeRaw(w http.ResponseWriter, raw json.RawMessage) {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	writeSuccess(w, raw)
}

// writeFailure sends the failure envelope for err with a status chosen
// from its kind.
func writeFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "kind", apperr.KindOf(err), "error", err)
	}
	middleware.WriteError(w, status, apperr.Message(err))
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.ThemeAlreadyExists:
		return http.StatusConflict
	case apperr.AIUnavailable:
		return http.StatusPreconditionFailed
	case apperr.RemoteAPIError, apperr.TransportError, apperr.MalformedAIResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
