// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for
// GenieWP: the guided onboarding REST namespace, the theme generation
// action and the admin support endpoints.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"geniewp/internal/handlers"
	"geniewp/internal/middleware"
	"geniewp/internal/session"
)

// DefaultNamespace is the REST namespace of the guided onboarding API.
const DefaultNamespace = "quickwp"

// Deps holds the handler groups and shared infrastructure the router wires.
type Deps struct {
	Sessions  *session.Store
	Namespace string
	Secure    bool

	API      *handlers.API
	Generate *handlers.Generate
	Auth     *handlers.Auth
	Settings *handlers.Settings
	Themes   *handlers.Themes
	Health   http.HandlerFunc

	// Limiter throttles the endpoints that call paid remote APIs and the
	// login form. Nil disables throttling.
	Limiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	ns := strings.Trim(d.Namespace, "/")
	if ns == "" {
		ns = DefaultNamespace
	}
	throttle := func(next http.Handler) http.Handler { return next }
	if d.Limiter != nil {
		throttle = d.Limiter.Middleware
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(d.Secure))
	r.Use(middleware.LoadSession(d.Sessions))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "No route was found matching the URL and request method.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/health", d.Health)

	r.Route("/admin", func(r chi.Router) {
		// Login and logout run before a nonce exists, so they use the
		// double-submit cookie instead.
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewCSRF(d.Secure))
			r.With(throttle).Post("/login", d.Auth.Login)
			r.Post("/logout", d.Auth.Logout)
		})
		r.Get("/session", d.Auth.Session)

		// The generate action checks session, capability and nonce itself
		// so every failure keeps its flat response shape.
		r.With(throttle).Post("/ajax/generate-theme", d.Generate.GenerateTheme)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCapability(session.CapManageOptions))
			r.Use(middleware.RequireNonce)

			r.Get("/settings", d.Settings.Get)
			r.Post("/settings", d.Settings.Update)

			r.Get("/themes", d.Themes.List)
			r.Get("/themes/{slug}/initial-content", d.Themes.InitialContent)
			r.Post("/themes/{slug}/initial-content", d.Themes.MarkInitialContent)
		})
	})

	r.Route("/"+ns+"/v1", func(r chi.Router) {
		r.Use(middleware.RequireCapability(session.CapManageOptions))
		r.Use(middleware.RequireNonce)

		r.With(throttle).Post("/send", d.API.Send)
		r.Get("/status", d.API.Status)
		r.Get("/get", d.API.Get)
		r.Get("/templates", d.API.Templates)
		r.With(throttle).Post("/export", d.API.Export)
		r.Get("/values", d.API.Values)
		r.Delete("/thread", d.API.ResetThread)
	})

	return r
}
