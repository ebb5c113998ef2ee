// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themedata

import "geniewp/internal/models"

// Normalize merges p over the defaults for req. Each payload field
// replaces its default only when it is valid, and partially filled
// sub-objects keep the default for their empty members. Normalize never
// fails; a nil payload yields the defaults.
func Normalize(req models.ThemeRequest, p *Payload) models.ThemeData {
	req = Sanitize(req)
	td := Defaults(req)
	if p == nil {
		return td
	}

	if p.Colors.Valid {
		td.Colors = withRequiredColors(p.Colors.Value, td.Colors)
	}
	if p.Typography.Valid {
		td.Typography.HeadingFont = pick(p.Typography.Value.HeadingFont, td.Typography.HeadingFont)
		td.Typography.BodyFont = pick(p.Typography.Value.BodyFont, td.Typography.BodyFont)
	}
	if p.Hero.Valid {
		h := p.Hero.Value
		td.Content.Hero = models.Hero{
			Headline:    pick(h.Headline, td.Content.Hero.Headline),
			Subheadline: pick(h.Subheadline, td.Content.Hero.Subheadline),
			CTAText:     pick(h.CTAText, td.Content.Hero.CTAText),
		}
	}
	if p.Services.Valid {
		services := p.Services.Value
		if len(services) > MaxServices {
			services = services[:MaxServices]
		}
		td.Content.Services = make([]models.Service, len(services))
		for i, s := range services {
			td.Content.Services[i] = models.Service{
				Title:       s.Title,
				Description: pick(s.Description, "Professional service description."),
			}
		}
	}
	if p.About.Valid {
		a := p.About.Value
		td.Content.About = models.About{
			Heading: pick(a.Heading, td.Content.About.Heading),
			Content: pick(a.Content, td.Content.About.Content),
		}
	}
	if p.CTA.Valid {
		c := p.CTA.Value
		td.Content.CTA = models.CTA{
			Heading:    pick(c.Heading, td.Content.CTA.Heading),
			Text:       pick(c.Text, td.Content.CTA.Text),
			ButtonText: pick(c.ButtonText, td.Content.CTA.ButtonText),
		}
	}
	if p.Navigation.Valid {
		td.Navigation = append([]string(nil), p.Navigation.Value...)
	}
	return td
}

// withRequiredColors keeps the AI palette in its order and appends any
// slot the markup depends on from the defaults.
func withRequiredColors(ai, defaults []models.Color) []models.Color {
	out := append([]models.Color(nil), ai...)
	have := make(map[string]bool, len(out))
	for _, c := range out {
		have[c.Slug] = true
	}
	for _, slug := range RequiredColorSlugs {
		if have[slug] {
			continue
		}
		for _, d := range defaults {
			if d.Slug == slug {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func pick(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
