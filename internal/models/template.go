// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// GuidedTemplate is one starter template offered by the guided flow. The
// definition file is passed to the front-end untouched, so only the file
// name is modelled here.
type GuidedTemplate struct {
	File       string          `json:"-"`
	Definition json.RawMessage `json:"-"`
}

// MarshalJSON emits the raw definition.
func (t GuidedTemplate) MarshalJSON() ([]byte, error) {
	if len(t.Definition) == 0 {
		return []byte("null"), nil
	}
	return t.Definition, nil
}

// GuidedValue is one string or image extracted from an assistant reply,
// exposed to the front-end under the filter name quickwp/<slug>.
type GuidedValue struct {
	Filter string `json:"filter"`
	Value  string `json:"value"`
	Kind   string `json:"kind"` // "string" or "image"
}

// Guided value kinds.
const (
	GuidedString = "string"
	GuidedImage  = "image"
)
