// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"
)

type errorData struct {
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Data    errorData `json:"data"`
}

// WriteError writes the failure envelope every endpoint uses:
// {"success":false,"data":{"message":...}}.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Data: errorData{Message: message}})
}
