// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themedata

import (
	"encoding/json"
	"errors"
	"strings"

	"geniewp/internal/models"
	"geniewp/internal/slug"
)

// ErrNotObject is returned by ParsePayload when the document is valid JSON
// but not an object.
var ErrNotObject = errors.New("themedata: payload is not a JSON object")

// Field is one independently validated part of an AI payload. Valid is
// false when the part was absent or had the wrong shape; the zero Value
// must not be used in that case.
type Field[T any] struct {
	Value T
	Valid bool
}

func valid[T any](v T) Field[T] { return Field[T]{Value: v, Valid: true} }

// Payload is the AI-supplied theme content, decoded field by field.
type Payload struct {
	ThemeName  Field[string]
	Colors     Field[[]models.Color]
	Typography Field[models.Typography]
	Hero       Field[models.Hero]
	Services   Field[[]models.Service]
	About      Field[models.About]
	CTA        Field[models.CTA]
	Navigation Field[[]string]
}

// ValidFields lists the names of the fields that decoded successfully.
func (p *Payload) ValidFields() []string {
	if p == nil {
		return nil
	}
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	add(p.ThemeName.Valid, "theme_name")
	add(p.Colors.Valid, "colors")
	add(p.Typography.Valid, "typography")
	add(p.Hero.Valid, "content.hero")
	add(p.Services.Valid, "content.services")
	add(p.About.Valid, "content.about")
	add(p.CTA.Valid, "content.cta")
	add(p.Navigation.Valid, "navigation")
	return out
}

// ParsePayload decodes a JSON object into a Payload. Only a document that
// is not a JSON object is an error; every malformed field is simply marked
// invalid.
func ParsePayload(data []byte) (*Payload, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		var probe any
		if json.Unmarshal(data, &probe) == nil {
			return nil, ErrNotObject
		}
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	return DecodePayload(obj), nil
}

// DecodePayload validates each known field of obj on its own.
func DecodePayload(obj map[string]json.RawMessage) *Payload {
	p := &Payload{}

	if s, ok := str(obj, "theme_name", "themeName"); ok {
		if s = Text(s); s != "" {
			p.ThemeName = valid(s)
		}
	}

	p.Colors = decodeColors(obj["colors"])
	p.Typography = decodeTypography(obj["typography"])
	p.Navigation = decodeNavigation(obj["navigation"])

	content, ok := object(obj["content"])
	if !ok {
		return p
	}
	p.Hero = decodeHero(content["hero"])
	p.Services = decodeServices(content["services"])
	p.About = decodeAbout(content["about"])
	p.CTA = decodeCTA(content["cta"])
	return p
}

func decodeColors(raw json.RawMessage) Field[[]models.Color] {
	items, ok := array(raw)
	if !ok {
		return Field[[]models.Color]{}
	}

	var colors []models.Color
	seen := make(map[string]bool)
	for _, item := range items {
		entry, ok := object(item)
		if !ok {
			continue
		}
		s, _ := str(entry, "slug")
		s = slug.Generate(s)
		value, _ := str(entry, "color", "colorValue", "value", "hex")
		if s == "" || !IsHex(strings.TrimSpace(value)) || seen[s] {
			continue
		}
		name, _ := str(entry, "name")
		name = Text(name)
		if name == "" {
			name = nameFromSlug(s)
		}
		seen[s] = true
		colors = append(colors, models.Color{Name: name, Slug: s, Color: strings.ToLower(strings.TrimSpace(value))})
	}
	if len(colors) == 0 {
		return Field[[]models.Color]{}
	}
	return valid(colors)
}

func decodeTypography(raw json.RawMessage) Field[models.Typography] {
	obj, ok := object(raw)
	if !ok {
		return Field[models.Typography]{}
	}
	heading, _ := str(obj, "heading_font", "headingFont")
	body, _ := str(obj, "body_font", "bodyFont")
	t := models.Typography{HeadingFont: fontStack(heading), BodyFont: fontStack(body)}
	if t.HeadingFont == "" && t.BodyFont == "" {
		return Field[models.Typography]{}
	}
	return valid(t)
}

func decodeHero(raw json.RawMessage) Field[models.Hero] {
	obj, ok := object(raw)
	if !ok {
		return Field[models.Hero]{}
	}
	h := models.Hero{
		Headline:    text(obj, "headline"),
		Subheadline: text(obj, "subheadline"),
		CTAText:     text(obj, "cta_text", "ctaText"),
	}
	if h == (models.Hero{}) {
		return Field[models.Hero]{}
	}
	return valid(h)
}

func decodeServices(raw json.RawMessage) Field[[]models.Service] {
	items, ok := array(raw)
	if !ok {
		return Field[[]models.Service]{}
	}
	var services []models.Service
	for _, item := range items {
		obj, ok := object(item)
		if !ok {
			continue
		}
		svc := models.Service{Title: text(obj, "title"), Description: text(obj, "description")}
		if svc.Title == "" {
			continue
		}
		services = append(services, svc)
		if len(services) == MaxServices {
			break
		}
	}
	if len(services) == 0 {
		return Field[[]models.Service]{}
	}
	return valid(services)
}

func decodeAbout(raw json.RawMessage) Field[models.About] {
	obj, ok := object(raw)
	if !ok {
		return Field[models.About]{}
	}
	content, _ := str(obj, "content")
	a := models.About{Heading: text(obj, "heading"), Content: Textarea(content)}
	if a == (models.About{}) {
		return Field[models.About]{}
	}
	return valid(a)
}

func decodeCTA(raw json.RawMessage) Field[models.CTA] {
	obj, ok := object(raw)
	if !ok {
		return Field[models.CTA]{}
	}
	c := models.CTA{
		Heading:    text(obj, "heading"),
		Text:       text(obj, "text"),
		ButtonText: text(obj, "button_text", "buttonText"),
	}
	if c == (models.CTA{}) {
		return Field[models.CTA]{}
	}
	return valid(c)
}

func decodeNavigation(raw json.RawMessage) Field[[]string] {
	items, ok := array(raw)
	if !ok {
		return Field[[]string]{}
	}
	var labels []string
	for _, item := range items {
		var label string
		if err := json.Unmarshal(item, &label); err != nil {
			// Accept {"label": "..."} entries as well.
			obj, ok := object(item)
			if !ok {
				continue
			}
			label, _ = str(obj, "label", "title")
		}
		if label = Text(label); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return Field[[]string]{}
	}
	return valid(labels)
}

// fontStack keeps a font family declaration usable inside CSS and JSON:
// markup and control characters go, and so do characters that could end
// a declaration.
func fontStack(s string) string {
	s = Text(s)
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\':
			return -1
		}
		return r
	}, s))
}

func nameFromSlug(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func array(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// str returns the first of keys holding a JSON string.
func str(obj map[string]json.RawMessage, keys ...string) (string, bool) {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return "", false
}

func text(obj map[string]json.RawMessage, keys ...string) string {
	s, _ := str(obj, keys...)
	return Text(s)
}
