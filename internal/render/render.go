// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns a ThemeData record into the files of a block theme.
// Every function is pure: the same ThemeData (and year, for the footer)
// always produces byte-identical output. Markup references colors only by
// palette slug, so theme.json stays the single source of color values.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"text/template"

	"geniewp/internal/models"
	"geniewp/internal/slug"
)

//go:embed templates/theme/*.tmpl templates/pages/*.tmpl
var templateFS embed.FS

// Artifact is one file of a generated theme.
type Artifact struct {
	Path    string
	Content string
}

// Relative paths of every artifact, in write order.
const (
	PathStyleSheet = "style.css"
	PathThemeJSON  = "theme.json"
	PathIndex      = "templates/index.html"
	PathFrontPage  = "templates/front-page.html"
	PathPage       = "templates/page.html"
	PathSingle     = "templates/single.html"
	PathHeader     = "parts/header.html"
	PathFooter     = "parts/footer.html"
	PathCustomCSS  = "assets/css/custom.css"
	PathFunctions  = "functions.php"
	PathReadme     = "README.md"
)

// Directories lists the directory tree created for every theme.
var Directories = []string{"templates", "parts", "patterns", "assets/css"}

// funcMap is shared by every theme and page template. Template text is
// never HTML-escaped implicitly: block comments carry JSON, so escaping is
// explicit through esc and attrs.
var funcMap = template.FuncMap{
	"esc":          html.EscapeString,
	"attrs":        attrs,
	"comment":      comment,
	"navLink":      navLink,
	"navURL":       navURL,
	"paragraphs":   paragraphs,
	"lower":        strings.ToLower,
	"serviceImage": serviceImage,
}

var templates = template.Must(template.New("theme").Funcs(funcMap).ParseFS(templateFS,
	"templates/theme/*.tmpl", "templates/pages/*.tmpl"))

// view is the data passed to every template.
type view struct {
	TD          models.ThemeData
	Year        int
	TextDomain  string
	Prefix      string
	Domain      string
	Description string
	Blurb       string
	Images      pageImages
	Contact     []contactItem
}

func newView(td models.ThemeData, year int) view {
	domain := slug.Generate(td.SiteName)
	if domain == "" {
		domain = slug.Fallback
	}
	textDomain := td.Slug
	if textDomain == "" {
		textDomain = slug.Theme(td.SiteName)
	}

	desc := td.Description
	if desc == "" {
		desc = "A custom WordPress block theme generated by GenieWP."
	}
	blurb := td.Tagline
	if blurb == "" {
		blurb = td.Content.Hero.Subheadline
	}

	return view{
		TD:          td,
		Year:        year,
		TextDomain:  textDomain,
		Prefix:      strings.ReplaceAll(textDomain, "-", "_"),
		Domain:      domain,
		Description: strings.Join(strings.Fields(desc), " "),
		Blurb:       blurb,
		Images:      defaultPageImages,
		Contact: []contactItem{
			{Label: "Email", Value: "info@" + domain + ".com"},
			{Label: "Phone", Value: "(555) 123-4567"},
			{Label: "Address", Value: "123 Main Street<br>City, State 12345"},
		},
	}
}

// execute runs a named template. The templates are embedded and covered by
// tests, so an execution error is a programming error.
func execute(name string, v view) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, v); err != nil {
		panic(fmt.Sprintf("render: %s: %v", name, err))
	}
	return b.String()
}

// StyleSheet renders the style.css theme header.
func StyleSheet(td models.ThemeData) string { return execute("style.css.tmpl", newView(td, 0)) }

// IndexTemplate renders the post listing template.
func IndexTemplate(td models.ThemeData) string { return execute("index.html.tmpl", newView(td, 0)) }

// FrontPageTemplate renders the hero, services, about and CTA sections.
func FrontPageTemplate(td models.ThemeData) string {
	return execute("front-page.html.tmpl", newView(td, 0))
}

// PageTemplate renders the generic page template.
func PageTemplate(td models.ThemeData) string { return execute("page.html.tmpl", newView(td, 0)) }

// SingleTemplate renders the single post template.
func SingleTemplate(td models.ThemeData) string { return execute("single.html.tmpl", newView(td, 0)) }

// HeaderPart renders the header with site title, tagline and navigation.
func HeaderPart(td models.ThemeData) string { return execute("header.html.tmpl", newView(td, 0)) }

// FooterPart renders the three-column footer. year is stamped into the
// copyright line.
func FooterPart(td models.ThemeData, year int) string {
	return execute("footer.html.tmpl", newView(td, year))
}

// CustomCSS renders the responsive and hover helper stylesheet.
func CustomCSS(td models.ThemeData) string { return execute("custom.css.tmpl", newView(td, 0)) }

// FunctionsPHP renders the bootstrap file: style enqueueing, menu
// locations and theme supports.
func FunctionsPHP(td models.ThemeData) string {
	return execute("functions.php.tmpl", newView(td, 0))
}

// Readme renders the theme README.
func Readme(td models.ThemeData) string { return execute("readme.md.tmpl", newView(td, 0)) }

// Artifacts renders every file of the theme in write order.
func Artifacts(td models.ThemeData, year int) []Artifact {
	return []Artifact{
		{PathStyleSheet, StyleSheet(td)},
		{PathThemeJSON, ThemeJSON(td)},
		{PathIndex, IndexTemplate(td)},
		{PathFrontPage, FrontPageTemplate(td)},
		{PathPage, PageTemplate(td)},
		{PathSingle, SingleTemplate(td)},
		{PathHeader, HeaderPart(td)},
		{PathFooter, FooterPart(td, year)},
		{PathCustomCSS, CustomCSS(td)},
		{PathFunctions, FunctionsPHP(td)},
		{PathReadme, Readme(td)},
	}
}

// attrs encodes block attributes for a block comment. Markup characters
// are escaped by encoding/json, which keeps "-->" out of the comment.
func attrs(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// comment makes s safe inside a /* */ or /** */ comment.
func comment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

type navAttrs struct {
	Label          string `json:"label"`
	URL            string `json:"url"`
	Kind           string `json:"kind"`
	IsTopLevelLink bool   `json:"isTopLevelLink"`
}

func navLink(label string) navAttrs {
	return navAttrs{Label: label, URL: navURL(label), Kind: "custom", IsTopLevelLink: true}
}

// navURL maps a menu label to the permalink of the page the CMS creates
// for it. "Home" is the site root.
func navURL(label string) string {
	s := slug.Generate(label)
	if s == "" || s == "home" {
		return "/"
	}
	return "/" + s + "/"
}

// paragraphs splits multi-line text into non-empty paragraphs.
func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
