// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the data types shared between the generator, the
// stores and the HTTP handlers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Default brand colors used when the request omits or mangles them.
const (
	DefaultPrimaryColor   = "#2563eb"
	DefaultSecondaryColor = "#10b981"
)

// ThemeRequest is the admin form submitted to generate a theme.
type ThemeRequest struct {
	SiteName       string `json:"site_name"`
	BusinessType   string `json:"business_type"`
	Tagline        string `json:"tagline"`
	Description    string `json:"description"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Color is one palette slot of the generated theme.
type Color struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// Typography names the heading and body font stacks.
type Typography struct {
	HeadingFont string `json:"heading_font"`
	BodyFont    string `json:"body_font"`
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"cta_text"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type About struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type CTA struct {
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	ButtonText string `json:"button_text"`
}

// Content holds the copy placed on the front page.
type Content struct {
	Hero     Hero      `json:"hero"`
	Services []Service `json:"services"`
	About    About     `json:"about"`
	CTA      CTA       `json:"cta"`
}

// ThemeData is the fully populated record every artifact is rendered
// from. It is also persisted per theme for the CMS's one-time page and
// menu bootstrap.
type ThemeData struct {
	// Slug is the reserved theme directory name. Empty until the theme
	// is assembled.
	Slug         string     `json:"slug,omitempty"`
	SiteName     string     `json:"site_name"`
	BusinessType string     `json:"business_type"`
	Tagline      string     `json:"tagline"`
	Description  string     `json:"description"`
	Colors       []Color    `json:"colors"`
	Typography   Typography `json:"typography"`
	Content      Content    `json:"content"`
	Navigation   []string   `json:"navigation"`
}

// ColorBySlug returns the palette value for slug, or "" when absent.
func (td *ThemeData) ColorBySlug(slug string) string {
	for _, c := range td.Colors {
		if c.Slug == slug {
			return c.Color
		}
	}
	return ""
}

// GeneratedTheme summarises one successful generation.
type GeneratedTheme struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"theme_slug"`
	Name        string    `json:"theme_name"`
	Dir         string    `json:"theme_dir"`
	Files       []string  `json:"files"`
	AIEnhanced  bool      `json:"ai_enhanced"`
	DownloadURL string    `json:"download_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ThemeRecord is the persisted form of a generated theme.
type ThemeRecord struct {
	Slug                  string    `json:"slug"`
	Name                  string    `json:"name"`
	Data                  ThemeData `json:"data"`
	AIEnhanced            bool      `json:"ai_enhanced"`
	DownloadURL           string    `json:"download_url,omitempty"`
	InitialContentCreated bool      `json:"initial_content_created"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
