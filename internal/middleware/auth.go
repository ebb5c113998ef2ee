// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"geniewp/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"
)

// Messages returned by the guards.
const (
	MsgNotLoggedIn  = "You must be logged in."
	MsgForbidden    = "Sorry, you are not allowed to do that."
	MsgBadNonce     = "Security check failed. Please refresh the page and try again."
	NonceHeaderName = "X-WP-Nonce"
	NonceFormField  = "nonce"
)

// LoadSession retrieves the session and stores it in the request context.
// Downstream handlers can access it via SessionFromCtx(). This middleware
// does NOT enforce authentication.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				slog.Warn("session load failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				r = r.WithContext(WithSession(r.Context(), data))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCapability answers 403 unless the session holds capability c.
// Must be applied after LoadSession.
func RequireCapability(c string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromCtx(r.Context())
			if sess == nil {
				WriteError(w, http.StatusForbidden, MsgNotLoggedIn)
				return
			}
			if !sess.Can(c) {
				WriteError(w, http.StatusForbidden, MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireNonce rejects state-changing requests whose nonce does not match
// the session's. The nonce is read from the X-WP-Nonce header or the
// "nonce" form field. Must be applied after RequireCapability.
func RequireNonce(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isSafeMethod(r.Method) {
			next.ServeHTTP(w, r)
			return
		}
		if !ValidNonce(r, SessionFromCtx(r.Context())) {
			WriteError(w, http.StatusForbidden, MsgBadNonce)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ValidNonce reports whether r carries the nonce of sess.
func ValidNonce(r *http.Request, sess *session.Data) bool {
	if sess == nil || sess.Nonce == "" {
		return false
	}
	submitted := r.Header.Get(NonceHeaderName)
	if submitted == "" {
		submitted = r.FormValue(NonceFormField)
	}
	return tokensEqual(sess.Nonce, submitted)
}

// WithSession returns a context carrying data, as LoadSession does.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded (user is not authenticated).
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}
