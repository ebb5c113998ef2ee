// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"geniewp/internal/middleware"
	"geniewp/internal/session"
)

// Auth failure messages.
const (
	msgBadCredentials = "Invalid email or password."
	msgBadCode        = "Invalid authentication code."
)

// Credentials identify the single administrator. TOTPSecret is optional;
// when set, login also requires a valid code.
type Credentials struct {
	Email        string
	PasswordHash string
	TOTPSecret   string
}

// Auth groups the login, logout and session endpoints.
type Auth struct {
	sessions *session.Store
	creds    Credentials
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, creds Credentials) *Auth {
	return &Auth{sessions: sessions, creds: creds}
}

type sessionInfo struct {
	Email        string   `json:"email"`
	Nonce        string   `json:"nonce"`
	Capabilities []string `json:"capabilities"`
}

// Login checks the credentials (and TOTP code when enrolled) and starts
// a session holding the manage_options capability.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	email := strings.TrimSpace(p.Get("email"))
	password := p.Get("password")

	if a.creds.PasswordHash == "" || !strings.EqualFold(email, a.creds.Email) ||
		bcrypt.CompareHashAndPassword([]byte(a.creds.PasswordHash), []byte(password)) != nil {
		middleware.WriteError(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	if a.creds.TOTPSecret != "" && !totp.Validate(strings.TrimSpace(p.Get("code")), a.creds.TOTPSecret) {
		middleware.WriteError(w, http.StatusUnauthorized, msgBadCode)
		return
	}

	data := &session.Data{
		Email:        a.creds.Email,
		Capabilities: []string{session.CapManageOptions},
	}
	if _, err := a.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("session create failed", "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("admin logged in", "email", data.Email)
	writeSuccess(w, sessionInfo{Email: data.Email, Nonce: data.Nonce, Capabilities: data.Capabilities})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	writeSuccess(w, map[string]bool{"logged_out": true})
}

// Session returns the current session and its nonce.
func (a *Auth) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.MsgNotLoggedIn)
		return
	}
	writeSuccess(w, sessionInfo{Email: sess.Email, Nonce: sess.Nonce, Capabilities: sess.Capabilities})
}
