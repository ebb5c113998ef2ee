// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

import (
	"bytes"
	"encoding/json"
	"html"
	"net/url"
	"strings"

	"geniewp/internal/ai"
	"geniewp/internal/models"
)

// FilterPrefix namespaces every guided value.
const FilterPrefix = "quickwp/"

// TrustedImageHost is the only host (with its subdomains) images may
// come from.
const TrustedImageHost = "pexels.com"

type messageList struct {
	Data []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text *struct {
				Value string `json:"value"`
			} `json:"text"`
		} `json:"content"`
	} `json:"data"`
}

// LatestAssistantText returns the text of the newest assistant message
// in a message list, or "" when there is none.
func LatestAssistantText(list json.RawMessage) string {
	var ml messageList
	if err := json.Unmarshal(list, &ml); err != nil {
		return ""
	}
	for _, m := range ml.Data {
		if m.Role != "assistant" {
			continue
		}
		for _, c := range m.Content {
			if c.Text != nil && c.Text.Value != "" {
				return c.Text.Value
			}
		}
		return ""
	}
	return ""
}

// ExtractValues scans an assistant reply for the guided-flow entries and
// returns the values they define, in document order. The entries may come
// as an array or as an object whose values are the entries. Later values
// for the same filter win when applied.
func ExtractValues(text string) []models.GuidedValue {
	raw, err := ai.ExtractJSON(text)
	if err != nil {
		return nil
	}

	var out []models.GuidedValue
	for _, item := range entriesOf(raw) {
		var entry map[string]json.RawMessage
		if json.Unmarshal(item, &entry) != nil {
			continue
		}
		if !present(entry, "slug") || !present(entry, "order") || !present(entry, "strings") {
			continue
		}

		for _, s := range elements(entry["strings"]) {
			slug, ok := scalar(s["slug"])
			if !ok || slug == "" {
				continue
			}
			value, ok := scalar(s["value"])
			if !ok {
				continue
			}
			out = append(out, models.GuidedValue{
				Filter: FilterPrefix + slug,
				Value:  html.EscapeString(value),
				Kind:   models.GuidedString,
			})
		}

		if !present(entry, "images") {
			continue
		}
		for _, img := range elements(entry["images"]) {
			slug, ok := scalar(img["slug"])
			if !ok || slug == "" {
				continue
			}
			src, _ := scalar(img["src"])
			if !TrustedImage(src) {
				continue
			}
			out = append(out, models.GuidedValue{
				Filter: FilterPrefix + slug,
				Value:  src,
				Kind:   models.GuidedImage,
			})
		}
	}
	return out
}

// entriesOf returns the members of a top-level array, or the values of a
// top-level object in document order.
func entriesOf(raw []byte) []json.RawMessage {
	var list []json.RawMessage
	if json.Unmarshal(raw, &list) == nil {
		return list
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return list
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return list
		}
		list = append(list, v)
	}
	return list
}

// elements decodes an array of objects one member at a time so a single
// malformed member does not drop its siblings.
func elements(raw json.RawMessage) []map[string]json.RawMessage {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]map[string]json.RawMessage, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if json.Unmarshal(item, &obj) != nil || obj == nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// scalar renders a JSON string, number or boolean as text. Numbers keep
// their literal form, true becomes "1" and false "". Null, arrays and
// objects are rejected.
func scalar(raw json.RawMessage) (string, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if len(raw) == 0 || dec.Decode(&v) != nil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		if x {
			return "1", true
		}
		return "", true
	default:
		return "", false
	}
}

// TrustedImage reports whether src is an absolute http(s) URL on the
// trusted stock-photo host.
func TrustedImage(src string) bool {
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == TrustedImageHost || strings.HasSuffix(host, "."+TrustedImageHost)
}

func present(obj map[string]json.RawMessage, key string) bool {
	v, ok := obj[key]
	return ok && string(v) != "null"
}
