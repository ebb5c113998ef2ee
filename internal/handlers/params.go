// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"geniewp/internal/apperr"
)

// maxBodyBytes caps request bodies on every endpoint.
const maxBodyBytes = 1 << 20

// params holds request parameters read from the query string, a form body
// or a JSON object body, so endpoints accept either encoding.
type params struct {
	values map[string][]string
}

func readParams(w http.ResponseWriter, r *http.Request) (*params, error) {
	p := &params{values: make(map[string][]string)}
	for k, v := range r.URL.Query() {
		p.values[k] = v
	}
	if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
		return p, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var obj map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
			return nil, apperr.New(apperr.InvalidInput, "Request body is not valid JSON.")
		}
		for k, raw := range obj {
			p.values[k] = jsonStrings(raw)
		}
		return p, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, apperr.New(apperr.InvalidInput, "Request body could not be parsed.")
	}
	for k, v := range r.PostForm {
		// "images[]" is how form posts spell array fields.
		k = strings.TrimSuffix(k, "[]")
		p.values[k] = append(p.values[k], v...)
	}
	return p, nil
}

// jsonStrings flattens a JSON value into strings: arrays yield one entry
// per element, scalars yield one entry, null yields none.
func jsonStrings(raw json.RawMessage) []string {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, el := range arr {
			if s, ok := jsonScalar(el); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := jsonScalar(raw); ok {
		return []string{s}
	}
	return nil
}

func jsonScalar(raw json.RawMessage) (string, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64, bool:
		return fmt.Sprint(t), true
	}
	return "", false
}

// Get returns the first value for key.
func (p *params) Get(key string) string {
	if v := p.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Strings returns every value for key.
func (p *params) Strings(key string) []string {
	return p.values[key]
}

// Require returns an InvalidInput error naming the first missing key.
func (p *params) Require(keys ...string) error {
	for _, k := range keys {
		if strings.TrimSpace(p.Get(k)) == "" {
			return apperr.Newf(apperr.InvalidInput, "Missing parameter(s): %s", k)
		}
	}
	return nil
}
