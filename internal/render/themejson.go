// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"bytes"
	"encoding/json"

	"geniewp/internal/models"
)

const themeJSONSchema = "https://schemas.wp.org/trunk/theme.json"

// The theme.json document is built from typed structs so the key order is
// fixed and the output is stable across runs.

type themeJSON struct {
	Schema        string         `json:"$schema"`
	Version       int            `json:"version"`
	Settings      themeSettings  `json:"settings"`
	Styles        themeStyles    `json:"styles"`
	TemplateParts []templatePart `json:"templateParts"`
}

type themeSettings struct {
	AppearanceTools bool            `json:"appearanceTools"`
	Color           colorSettings   `json:"color"`
	Typography      typoSettings    `json:"typography"`
	Spacing         spacingSettings `json:"spacing"`
	Layout          layoutSettings  `json:"layout"`
}

type colorSettings struct {
	DefaultPalette bool           `json:"defaultPalette"`
	Palette        []paletteEntry `json:"palette"`
}

type paletteEntry struct {
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

type typoSettings struct {
	FontFamilies []fontFamily `json:"fontFamilies"`
	FontSizes    []fontSize   `json:"fontSizes"`
}

type fontFamily struct {
	FontFamily string `json:"fontFamily"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
}

type fontSize struct {
	Slug string `json:"slug"`
	Size string `json:"size"`
	Name string `json:"name"`
}

type spacingSettings struct {
	Units        []string      `json:"units"`
	SpacingSizes []spacingSize `json:"spacingSizes"`
}

type spacingSize struct {
	Slug string `json:"slug"`
	Size string `json:"size"`
	Name string `json:"name"`
}

type layoutSettings struct {
	ContentSize string `json:"contentSize"`
	WideSize    string `json:"wideSize"`
}

type themeStyles struct {
	Color      *colorStyle   `json:"color,omitempty"`
	Typography *typoStyle    `json:"typography,omitempty"`
	Spacing    *spacingStyle `json:"spacing,omitempty"`
	Elements   *elements     `json:"elements,omitempty"`
}

type colorStyle struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

type typoStyle struct {
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	LineHeight string `json:"lineHeight,omitempty"`
}

type spacingStyle struct {
	BlockGap string `json:"blockGap,omitempty"`
}

type borderStyle struct {
	Radius string `json:"radius,omitempty"`
}

type elementStyle struct {
	Color      *colorStyle   `json:"color,omitempty"`
	Typography *typoStyle    `json:"typography,omitempty"`
	Border     *borderStyle  `json:"border,omitempty"`
	Hover      *elementStyle `json:":hover,omitempty"`
}

type elements struct {
	Link    elementStyle `json:"link"`
	Button  elementStyle `json:"button"`
	Heading elementStyle `json:"heading"`
	H1      elementStyle `json:"h1"`
	H2      elementStyle `json:"h2"`
	H3      elementStyle `json:"h3"`
}

type templatePart struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Area  string `json:"area"`
}

// preset builds a CSS custom property reference for a theme.json preset.
func preset(kind, slug string) string {
	return "var(--wp--preset--" + kind + "--" + slug + ")"
}

// ThemeJSON renders the design token document: palette, font families,
// font sizes, spacing scale, layout widths and element styles.
func ThemeJSON(td models.ThemeData) string {
	palette := make([]paletteEntry, len(td.Colors))
	for i, c := range td.Colors {
		palette[i] = paletteEntry{Slug: c.Slug, Color: c.Color, Name: c.Name}
	}

	doc := themeJSON{
		Schema:  themeJSONSchema,
		Version: 2,
		Settings: themeSettings{
			AppearanceTools: true,
			Color:           colorSettings{DefaultPalette: false, Palette: palette},
			Typography: typoSettings{
				FontFamilies: []fontFamily{
					{FontFamily: td.Typography.HeadingFont, Slug: "heading", Name: "Heading"},
					{FontFamily: td.Typography.BodyFont, Slug: "body", Name: "Body"},
				},
				FontSizes: []fontSize{
					{Slug: "small", Size: "0.875rem", Name: "Small"},
					{Slug: "medium", Size: "1rem", Name: "Medium"},
					{Slug: "large", Size: "1.5rem", Name: "Large"},
					{Slug: "x-large", Size: "2.25rem", Name: "Extra Large"},
					{Slug: "xx-large", Size: "3rem", Name: "Huge"},
				},
			},
			Spacing: spacingSettings{
				Units: []string{"px", "em", "rem", "vh", "vw", "%"},
				SpacingSizes: []spacingSize{
					{Slug: "20", Size: "0.5rem", Name: "2"},
					{Slug: "30", Size: "1rem", Name: "3"},
					{Slug: "40", Size: "1.5rem", Name: "4"},
					{Slug: "50", Size: "2.25rem", Name: "5"},
					{Slug: "60", Size: "3.5rem", Name: "6"},
					{Slug: "70", Size: "5rem", Name: "7"},
					{Slug: "80", Size: "7rem", Name: "8"},
				},
			},
			Layout: layoutSettings{ContentSize: "800px", WideSize: "1200px"},
		},
		Styles: themeStyles{
			Color: &colorStyle{
				Background: preset("color", "white"),
				Text:       preset("color", "dark-gray"),
			},
			Typography: &typoStyle{
				FontFamily: preset("font-family", "body"),
				FontSize:   preset("font-size", "medium"),
				LineHeight: "1.6",
			},
			Spacing: &spacingStyle{BlockGap: preset("spacing", "40")},
			Elements: &elements{
				Link: elementStyle{
					Color: &colorStyle{Text: preset("color", "primary")},
					Hover: &elementStyle{Color: &colorStyle{Text: preset("color", "secondary")}},
				},
				Button: elementStyle{
					Color:  &colorStyle{Background: preset("color", "primary"), Text: preset("color", "white")},
					Border: &borderStyle{Radius: "6px"},
					Hover:  &elementStyle{Color: &colorStyle{Background: preset("color", "secondary")}},
				},
				Heading: elementStyle{
					Color:      &colorStyle{Text: preset("color", "black")},
					Typography: &typoStyle{FontFamily: preset("font-family", "heading"), FontWeight: "700", LineHeight: "1.2"},
				},
				H1: elementStyle{Typography: &typoStyle{FontSize: preset("font-size", "xx-large")}},
				H2: elementStyle{Typography: &typoStyle{FontSize: preset("font-size", "x-large")}},
				H3: elementStyle{Typography: &typoStyle{FontSize: preset("font-size", "large")}},
			},
		},
		TemplateParts: []templatePart{
			{Name: "header", Title: "Header", Area: "header"},
			{Name: "footer", Title: "Footer", Area: "footer"},
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(doc); err != nil {
		// Only plain strings and ints are encoded; this cannot fail.
		panic("render: theme.json: " + err.Error())
	}
	return buf.String()
}
