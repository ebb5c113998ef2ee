// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"geniewp/internal/models"
	"geniewp/internal/themedata"
)

func bakeryData() models.ThemeData {
	return themedata.Normalize(models.ThemeRequest{
		SiteName:       "Acme Bakery",
		BusinessType:   "Bakery",
		Tagline:        "Fresh every morning",
		PrimaryColor:   "#ff0000",
		SecondaryColor: "#00ff00",
	}, nil)
}

func TestArtifactsPathsAndOrder(t *testing.T) {
	got := Artifacts(bakeryData(), 2026)
	want := []string{
		PathStyleSheet, PathThemeJSON, PathIndex, PathFrontPage, PathPage,
		PathSingle, PathHeader, PathFooter, PathCustomCSS, PathFunctions, PathReadme,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d artifacts, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Path != want[i] {
			t.Errorf("artifact %d: path %q, want %q", i, a.Path, want[i])
		}
		if strings.TrimSpace(a.Content) == "" {
			t.Errorf("artifact %s is empty", a.Path)
		}
	}
}

func TestArtifactsDeterministic(t *testing.T) {
	td := bakeryData()
	a := Artifacts(td, 2026)
	b := Artifacts(td, 2026)
	for i := range a {
		if a[i].Content != b[i].Content {
			t.Errorf("%s differs between runs", a[i].Path)
		}
	}
}

func TestThemeJSONPalette(t *testing.T) {
	var doc struct {
		Schema   string `json:"$schema"`
		Version  int    `json:"version"`
		Settings struct {
			Color struct {
				Palette []struct {
					Slug  string `json:"slug"`
					Color string `json:"color"`
				} `json:"palette"`
			} `json:"color"`
			Typography struct {
				FontFamilies []struct {
					FontFamily string `json:"fontFamily"`
					Slug       string `json:"slug"`
				} `json:"fontFamilies"`
			} `json:"typography"`
			Layout struct {
				ContentSize string `json:"contentSize"`
				WideSize    string `json:"wideSize"`
			} `json:"layout"`
		} `json:"settings"`
	}
	if err := json.Unmarshal([]byte(ThemeJSON(bakeryData())), &doc); err != nil {
		t.Fatalf("theme.json is not valid JSON: %v", err)
	}

	if doc.Schema != themeJSONSchema || doc.Version != 2 {
		t.Errorf("schema/version = %q/%d", doc.Schema, doc.Version)
	}
	p := doc.Settings.Color.Palette
	if len(p) != 8 {
		t.Fatalf("palette has %d entries, want 8", len(p))
	}
	if p[0].Slug != "primary" || p[0].Color != "#ff0000" {
		t.Errorf("palette[0] = %+v", p[0])
	}
	if p[1].Slug != "secondary" || p[1].Color != "#00ff00" {
		t.Errorf("palette[1] = %+v", p[1])
	}
	if got := doc.Settings.Typography.FontFamilies[0].FontFamily; got != themedata.SystemFontStack {
		t.Errorf("heading font = %q", got)
	}
	if doc.Settings.Layout.ContentSize != "800px" || doc.Settings.Layout.WideSize != "1200px" {
		t.Errorf("layout = %+v", doc.Settings.Layout)
	}
}

func TestThemeJSONKeepsFontQuotesReadable(t *testing.T) {
	out := ThemeJSON(bakeryData())
	if strings.Contains(out, `&`) || strings.Contains(out, `<`) {
		t.Error("theme.json should not HTML-escape its contents")
	}
	if !strings.Contains(out, `\"Segoe UI\"`) {
		t.Error("font stack should be present with escaped quotes")
	}
}

func TestFrontPageUsesHeroAndServices(t *testing.T) {
	out := FrontPageTemplate(bakeryData())

	for _, want := range []string{
		"Welcome to Acme Bakery",
		"Fresh every morning",
		"Get Started",
		"Service One",
		"Service Three",
		"About Acme Bakery",
		"Ready to Get Started?",
		`<!-- wp:template-part {"slug":"header","tagName":"header"} /-->`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("front page missing %q", want)
		}
	}
}

func TestMarkupReferencesColorsBySlugOnly(t *testing.T) {
	td := bakeryData()
	hex := regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)
	for _, a := range Artifacts(td, 2026) {
		if !strings.HasSuffix(a.Path, ".html") {
			continue
		}
		if m := hex.FindString(a.Content); m != "" {
			t.Errorf("%s contains raw hex color %s", a.Path, m)
		}
	}
	if !strings.Contains(HeaderPart(td), `"backgroundColor":"primary"`) {
		t.Error("header should use the primary palette slug")
	}
}

func TestHeaderNavigation(t *testing.T) {
	td := bakeryData()
	td.Navigation = []string{"Home", "Our Menu", `Say "Hi"`}
	out := HeaderPart(td)

	for _, want := range []string{
		`<!-- wp:navigation-link {"label":"Home","url":"/","kind":"custom","isTopLevelLink":true} /-->`,
		`<!-- wp:navigation-link {"label":"Our Menu","url":"/our-menu/","kind":"custom","isTopLevelLink":true} /-->`,
		`"label":"Say \"Hi\""`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %s\n%s", want, out)
		}
	}
}

func TestFooterYearAndColumns(t *testing.T) {
	out := FooterPart(bakeryData(), 2031)

	if !strings.Contains(out, "© 2031 Acme Bakery. All rights reserved.") {
		t.Error("footer missing copyright line")
	}
	if got := strings.Count(out, "<!-- wp:column -->"); got != 3 {
		t.Errorf("footer has %d columns, want 3", got)
	}
	if !strings.Contains(out, "wp:social-links") {
		t.Error("footer missing social links")
	}
	if !strings.Contains(out, "info@acme-bakery.com") {
		t.Error("footer missing contact email")
	}
}

func TestTextIsEscaped(t *testing.T) {
	td := bakeryData()
	td.SiteName = `Tom & Jerry's <Cafe>`
	td.Content.Hero.Headline = `<script>alert(1)</script>`

	front := FrontPageTemplate(td)
	if strings.Contains(front, "<script>") {
		t.Error("hero headline not escaped")
	}
	footer := FooterPart(td, 2026)
	if !strings.Contains(footer, "Tom &amp; Jerry&#39;s &lt;Cafe&gt;") {
		t.Error("site name not escaped in footer")
	}
}

func TestStyleSheetHeader(t *testing.T) {
	out := StyleSheet(bakeryData())
	for _, want := range []string{
		"Theme Name: Acme Bakery",
		"Author: GenieWP",
		"Description: A custom WordPress block theme generated by GenieWP.",
		"Version: 1.0.0",
		"Requires at least: 6.5",
		"Text Domain: geniewp-acme-bakery",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("style.css missing %q", want)
		}
	}

	td := bakeryData()
	td.Description = "Breaks */ comments"
	if strings.Count(StyleSheet(td), "*/") != 1 {
		t.Error("description must not close the header comment")
	}
}

func TestFunctionsPHP(t *testing.T) {
	out := FunctionsPHP(bakeryData())
	for _, want := range []string{
		"function geniewp_acme_bakery_setup()",
		"'primary' => __( 'Primary Menu', 'geniewp-acme-bakery' )",
		"add_theme_support( 'wp-block-styles' );",
		"wp_enqueue_style( 'geniewp-acme-bakery-style', get_stylesheet_uri()",
		"/assets/css/custom.css",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("functions.php missing %q", want)
		}
	}
}

func TestCustomCSSBreakpoints(t *testing.T) {
	out := CustomCSS(bakeryData())
	if strings.Count(out, "@media") < 2 {
		t.Error("custom.css should declare responsive breakpoints")
	}
	if !strings.Contains(out, "transition:") {
		t.Error("custom.css should declare hover transitions")
	}
}

func TestPages(t *testing.T) {
	ic := Pages(bakeryData())
	if ic.MenuName != "Primary Menu" || ic.MenuLocation != "primary" {
		t.Errorf("menu = %q/%q", ic.MenuName, ic.MenuLocation)
	}
	titles := make([]string, len(ic.Pages))
	for i, p := range ic.Pages {
		titles[i] = p.Title
		if strings.TrimSpace(p.Content) == "" {
			t.Errorf("page %s is empty", p.Title)
		}
	}
	if strings.Join(titles, ",") != "Home,About,Services,Blog,Contact" {
		t.Errorf("pages = %v", titles)
	}
	if !strings.Contains(ic.Pages[0].Content, "Welcome to Acme Bakery") {
		t.Error("home page missing hero headline")
	}
	if !strings.Contains(ic.Pages[2].Content, "range of bakery services") {
		t.Error("services page should mention the business type")
	}
}

var colorRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"(?:textColor|backgroundColor|overlayColor|iconColor|overlayBackgroundColor|overlayTextColor)":"([a-z0-9-]+)"`),
	regexp.MustCompile(`preset\|color\|([a-z0-9-]+)`),
	regexp.MustCompile(`preset--color--([a-z0-9-]+)`),
	regexp.MustCompile(`\bhas-([a-z0-9-]+?)(?:-background)?-color\b`),
}

// colorClassSupports are has-*-color classes that flag a feature rather
// than name a palette slot.
var colorClassSupports = map[string]bool{"text": true, "icon": true, "link": true, "border": true}

func TestMinimalPalettePresetsEveryReferencedColor(t *testing.T) {
	p, err := themedata.ParsePayload([]byte(`{"colors":[
		{"slug":"primary","color":"#112233"},
		{"slug":"secondary","color":"#445566"},
		{"slug":"accent","color":"#778899"}
	]}`))
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	td := themedata.Normalize(models.ThemeRequest{
		SiteName:       "Acme Bakery",
		BusinessType:   "Bakery",
		PrimaryColor:   "#ff0000",
		SecondaryColor: "#00ff00",
	}, p)

	var sources []string
	for _, a := range Artifacts(td, 2026) {
		sources = append(sources, a.Content)
	}
	for _, page := range Pages(td).Pages {
		sources = append(sources, page.Content)
	}

	referenced := make(map[string]bool)
	for _, src := range sources {
		for _, re := range colorRefPatterns {
			for _, m := range re.FindAllStringSubmatch(src, -1) {
				if !colorClassSupports[m[1]] {
					referenced[m[1]] = true
				}
			}
		}
	}
	if len(referenced) == 0 {
		t.Fatal("no color references found in rendered output")
	}
	for s := range referenced {
		if td.ColorBySlug(s) == "" {
			t.Errorf("markup references color %q missing from the palette", s)
		}
	}
	if td.ColorBySlug("primary") != "#112233" {
		t.Errorf("primary = %q, want the payload value", td.ColorBySlug("primary"))
	}
}

func TestReservedSlugDrivesTextDomainAndPrefix(t *testing.T) {
	td := bakeryData()
	td.Slug = "geniewp-acme-bakery-2"

	if out := StyleSheet(td); !strings.Contains(out, "Text Domain: geniewp-acme-bakery-2\n") {
		t.Errorf("style.css text domain not taken from slug:\n%s", out)
	}
	out := FunctionsPHP(td)
	for _, want := range []string{
		"function geniewp_acme_bakery_2_setup()",
		"'geniewp-acme-bakery-2'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("functions.php missing %q", want)
		}
	}
}
