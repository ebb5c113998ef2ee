// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides HTTP session management for the admin surface.
// Sessions are identified by a secure cookie and stored as JSON, in Valkey
// in production or in process memory for database-less runs, with a TTL.
// Each session carries the operator's capabilities and a per-session nonce
// that state-changing admin calls must echo back.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "geniewp_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	DefaultTTL = 12 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32

	nonceLength = 16
)

// CapManageOptions is the capability every admin and REST endpoint requires.
const CapManageOptions = "manage_options"

// Data holds the session payload.
type Data struct {
	Email        string    `json:"email"`
	Capabilities []string  `json:"capabilities"`
	Nonce        string    `json:"nonce"`
	CreatedAt    time.Time `json:"created_at"`
}

// Can reports whether the session holds capability c.
func (d *Data) Can(c string) bool {
	return d != nil && slices.Contains(d.Capabilities, c)
}

// backend is the key-value storage behind a Store.
type backend interface {
	set(ctx context.Context, id string, payload []byte, ttl time.Duration) error
	get(ctx context.Context, id string) ([]byte, error) // nil, nil when absent
	del(ctx context.Context, id string) error
}

// Store manages session lifecycle.
type Store struct {
	backend backend
	ttl     time.Duration
	secure  bool
}

// NewStore creates a session store backed by the given Valkey client.
// secure controls the cookie's Secure flag and should be true behind TLS.
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{backend: &valkeyBackend{client: client}, ttl: DefaultTTL, secure: secure}
}

// NewMemoryStore creates a session store that keeps sessions in process
// memory. Sessions do not survive a restart.
func NewMemoryStore(secure bool) *Store {
	return &Store{backend: newMemoryBackend(), ttl: DefaultTTL, secure: secure}
}

// Create generates a new session with a fresh nonce, stores it, and sets
// the session cookie on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := randomHex(idLength)
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	nonce, err := randomHex(nonceLength)
	if err != nil {
		return "", fmt.Errorf("session nonce: %w", err)
	}

	data.Nonce = nonce
	data.CreatedAt = time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.backend.set(ctx, id, payload, s.ttl); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data using the session ID from the request
// cookie. Returns nil if no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, err := s.backend.get(ctx, cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if payload == nil {
		return nil, nil
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	return &data, nil
}

// Destroy removes the session and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	if err := s.backend.del(ctx, cookie.Value); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		MaxAge:   -1,
	})

	return nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
