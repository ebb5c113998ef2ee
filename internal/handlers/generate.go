// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"geniewp/internal/apperr"
	"geniewp/internal/middleware"
	"geniewp/internal/models"
	"geniewp/internal/session"
)

// ThemeGenerator runs the theme generation pipeline.
type ThemeGenerator interface {
	Generate(ctx context.Context, req models.ThemeRequest) (*models.GeneratedTheme, error)
}

// generateResponse is the flat action response the admin form expects.
type generateResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ThemeSlug    string `json:"theme_slug,omitempty"`
	ThemeName    string `json:"theme_name,omitempty"`
	ActivateURL  string `json:"activate_url,omitempty"`
	CustomizeURL string `json:"customize_url,omitempty"`
	AIEnhanced   bool   `json:"ai_enhanced"`
	DownloadURL  string `json:"download_url,omitempty"`
}

// Generate handles the admin "generate theme" form action.
type Generate struct {
	generator ThemeGenerator
	adminURL  string
}

// NewGenerate creates the action handler. adminURL is the CMS admin base
// used to build the activate and customize links.
func NewGenerate(generator ThemeGenerator, adminURL string) *Generate {
	return &Generate{generator: generator, adminURL: strings.TrimRight(adminURL, "/")}
}

// GenerateTheme validates the session and nonce, then builds a theme from
// the form fields. Failures use the flat {success:false, message} shape.
func (g *Generate) GenerateTheme(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		g.fail(w, http.StatusUnauthorized, middleware.MsgNotLoggedIn)
		return
	}
	if !sess.Can(session.CapManageOptions) {
		g.fail(w, http.StatusForbidden, "You do not have permission to generate themes.")
		return
	}
	if !middleware.ValidNonce(r, sess) {
		g.fail(w, http.StatusForbidden, middleware.MsgBadNonce)
		return
	}

	req := models.ThemeRequest{
		SiteName:       r.PostFormValue("site_name"),
		BusinessType:   r.PostFormValue("business_type"),
		Tagline:        r.PostFormValue("tagline"),
		Description:    r.PostFormValue("description"),
		PrimaryColor:   r.PostFormValue("primary_color"),
		SecondaryColor: r.PostFormValue("secondary_color"),
	}

	theme, err := g.generator.Generate(r.Context(), req)
	if err != nil {
		g.fail(w, statusFor(err), apperr.Message(err))
		return
	}

	message := "Theme generated successfully!"
	if !theme.AIEnhanced {
		message = "Theme generated successfully with default content."
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:      true,
		Message:      message,
		ThemeSlug:    theme.Slug,
		ThemeName:    theme.Name,
		ActivateURL:  g.adminURL + "/themes.php",
		CustomizeURL: g.adminURL + "/customize.php?theme=" + url.QueryEscape(theme.Slug),
		AIEnhanced:   theme.AIEnhanced,
		DownloadURL:  theme.DownloadURL,
	})
}

func (g *Generate) fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Message: message})
}
