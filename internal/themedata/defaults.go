// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themedata

import "geniewp/internal/models"

// SystemFontStack is the default heading and body font family.
const SystemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen-Sans, Ubuntu, Cantarell, "Helvetica Neue", sans-serif`

// MaxServices caps the number of service columns on the front page.
const MaxServices = 4

// RequiredColorSlugs are referenced by the rendered markup and must always
// exist in the palette.
var RequiredColorSlugs = []string{"primary", "secondary", "white", "black", "light-gray", "gray", "dark-gray"}

// DefaultColors returns the eight-slot default palette. The first two
// slots mirror the request's brand colors.
func DefaultColors(primary, secondary string) []models.Color {
	return []models.Color{
		{Name: "Primary", Slug: "primary", Color: primary},
		{Name: "Secondary", Slug: "secondary", Color: secondary},
		{Name: "Accent", Slug: "accent", Color: "#f59e0b"},
		{Name: "White", Slug: "white", Color: "#ffffff"},
		{Name: "Black", Slug: "black", Color: "#000000"},
		{Name: "Light Gray", Slug: "light-gray", Color: "#f3f4f6"},
		{Name: "Gray", Slug: "gray", Color: "#6b7280"},
		{Name: "Dark Gray", Slug: "dark-gray", Color: "#1f2937"},
	}
}

func defaultTypography() models.Typography {
	return models.Typography{HeadingFont: SystemFontStack, BodyFont: SystemFontStack}
}

func defaultHero(req models.ThemeRequest) models.Hero {
	sub := req.Tagline
	if sub == "" {
		sub = "Your trusted partner for " + req.BusinessType
	}
	return models.Hero{
		Headline:    "Welcome to " + req.SiteName,
		Subheadline: sub,
		CTAText:     "Get Started",
	}
}

func defaultServices() []models.Service {
	return []models.Service{
		{Title: "Service One", Description: "Professional service description here."},
		{Title: "Service Two", Description: "Quality service for your needs."},
		{Title: "Service Three", Description: "Expert solutions tailored for you."},
	}
}

func defaultAbout(req models.ThemeRequest) models.About {
	content := req.Description
	if content == "" {
		content = "We are a dedicated team committed to providing exceptional service and value to our clients."
	}
	return models.About{Heading: "About " + req.SiteName, Content: content}
}

func defaultCTA() models.CTA {
	return models.CTA{
		Heading:    "Ready to Get Started?",
		Text:       "Contact us today to learn how we can help you achieve your goals.",
		ButtonText: "Contact Us",
	}
}

func defaultNavigation() []string {
	return []string{"Home", "About", "Services", "Blog", "Contact"}
}

// Defaults returns the ThemeData used when no AI content is available.
// req must already be sanitized.
func Defaults(req models.ThemeRequest) models.ThemeData {
	return models.ThemeData{
		SiteName:     req.SiteName,
		BusinessType: req.BusinessType,
		Tagline:      req.Tagline,
		Description:  req.Description,
		Colors:       DefaultColors(req.PrimaryColor, req.SecondaryColor),
		Typography:   defaultTypography(),
		Content: models.Content{
			Hero:     defaultHero(req),
			Services: defaultServices(),
			About:    defaultAbout(req),
			CTA:      defaultCTA(),
		},
		Navigation: defaultNavigation(),
	}
}
