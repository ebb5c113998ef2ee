// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"geniewp/internal/ai"
	"geniewp/internal/apperr"
	"geniewp/internal/models"
)

type stubProvider struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, system, user string) (string, error) {
	s.lastSystem, s.lastUser = system, user
	return s.reply, s.err
}

type stubSource struct {
	p   *stubProvider
	err error
}

func (s stubSource) Provider(string) (ai.Provider, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.p, nil
}

func TestBuildPrompt(t *testing.T) {
	full := BuildPrompt(models.ThemeRequest{
		SiteName: "Acme", BusinessType: "Bakery", Tagline: "Fresh", Description: "Since 1990",
		PrimaryColor: "#ff0000", SecondaryColor: "#00ff00",
	})
	for _, want := range []string{
		"Website Name: Acme\n", "Business Type: Bakery\n", "Tagline: Fresh\n",
		"Description: Since 1990\n", "Primary Color: #ff0000\n", "Secondary Color: #00ff00\n",
		`"theme_name"`, `"navigation"`,
	} {
		if !strings.Contains(full, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	bare := BuildPrompt(models.ThemeRequest{SiteName: "Acme", BusinessType: "Bakery"})
	if strings.Contains(bare, "Tagline:") || strings.Contains(bare, "Description:") {
		t.Error("empty optional fields should be omitted")
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		err      error
		kind     apperr.Kind
		wantHero string
	}{
		{"plain json", `{"content":{"hero":{"headline":"Bread!"}}}`, nil, "", "Bread!"},
		{"fenced json", "Sure:\n```json\n{\"content\":{\"hero\":{\"headline\":\"Rolls\"}}}\n```", nil, "", "Rolls"},
		{"prose", "I am unable to comply.", nil, apperr.MalformedAIResponse, ""},
		{"array", `[1,2,3]`, nil, apperr.MalformedAIResponse, ""},
		{"remote error", "", apperr.New(apperr.RemoteAPIError, "HTTP 500"), apperr.RemoteAPIError, ""},
		{"unclassified error", "", errors.New("boom"), apperr.TransportError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProvider{reply: tt.reply, err: tt.err}
			f := NewFetcher(stubSource{p: p})

			payload, err := f.Fetch(context.Background(), "sk", models.ThemeRequest{SiteName: "Acme", BusinessType: "Bakery"})
			if tt.kind != "" {
				if got := apperr.KindOf(err); got != tt.kind {
					t.Fatalf("kind = %q, want %q (err %v)", got, tt.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if !payload.Hero.Valid || payload.Hero.Value.Headline != tt.wantHero {
				t.Errorf("hero = %+v", payload.Hero)
			}
			if p.lastSystem != SystemPrompt {
				t.Errorf("system prompt = %q", p.lastSystem)
			}
		})
	}
}

func TestFetchWithoutProvider(t *testing.T) {
	f := NewFetcher(stubSource{err: errors.New("no provider")})
	_, err := f.Fetch(context.Background(), "sk", models.ThemeRequest{})
	if !apperr.IsKind(err, apperr.AIUnavailable) {
		t.Errorf("expected AIUnavailable, got %v", err)
	}

	_, err = f.Fetch(context.Background(), "", models.ThemeRequest{})
	if !apperr.IsKind(err, apperr.AIUnavailable) {
		t.Errorf("expected AIUnavailable for empty key, got %v", err)
	}
}
