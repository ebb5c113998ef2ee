// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package themedata turns a theme request plus an optional AI payload into
// the fully populated ThemeData every artifact is rendered from. Nothing in
// this package performs I/O.
package themedata

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"geniewp/internal/apperr"
	"geniewp/internal/models"
)

// Validation limits for the theme request fields.
const (
	maxSiteNameLen     = 100
	maxBusinessTypeLen = 100
	maxTaglineLen      = 200
	maxDescriptionLen  = 2_000
)

var (
	tagPattern = regexp.MustCompile(`(?s)<[^>]*>`)
	hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	spaceRun   = regexp.MustCompile(`[ \t]+`)
)

// Text strips markup and control characters and collapses whitespace to
// single spaces.
func Text(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// Textarea is Text for multi-line input: newlines survive, everything else
// is cleaned the same way.
func Textarea(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(l, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// IsHex reports whether s is a #rrggbb color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Hex returns s lowercased when it is a valid #rrggbb color, otherwise
// fallback.
func Hex(s, fallback string) string {
	s = strings.TrimSpace(s)
	if !IsHex(s) {
		return fallback
	}
	return strings.ToLower(s)
}

// Sanitize returns a cleaned copy of the request with color defaults
// applied.
func Sanitize(req models.ThemeRequest) models.ThemeRequest {
	return models.ThemeRequest{
		SiteName:       Text(req.SiteName),
		BusinessType:   Text(req.BusinessType),
		Tagline:        Text(req.Tagline),
		Description:    Textarea(req.Description),
		PrimaryColor:   Hex(req.PrimaryColor, models.DefaultPrimaryColor),
		SecondaryColor: Hex(req.SecondaryColor, models.DefaultSecondaryColor),
	}
}

// Validate checks a sanitized request. It returns an InvalidInput error
// for the first problem found.
func Validate(req models.ThemeRequest) error {
	if req.SiteName == "" || req.BusinessType == "" {
		return apperr.New(apperr.InvalidInput, "Site name and business type are required.")
	}
	if utf8.RuneCountInString(req.SiteName) > maxSiteNameLen {
		return apperr.New(apperr.InvalidInput, "Site name is too long (max 100 characters).")
	}
	if utf8.RuneCountInString(req.BusinessType) > maxBusinessTypeLen {
		return apperr.New(apperr.InvalidInput, "Business type is too long (max 100 characters).")
	}
	if utf8.RuneCountInString(req.Tagline) > maxTaglineLen {
		return apperr.New(apperr.InvalidInput, "Tagline is too long (max 200 characters).")
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLen {
		return apperr.New(apperr.InvalidInput, "Description is too long (max 2,000 characters).")
	}
	return nil
}
