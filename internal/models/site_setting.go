// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Option keys persisted in the settings store. The names match the ones
// the CMS side of the plugin reads.
const (
	OptionAPIKey     = "open_ai_api_key"
	OptionThreadID   = "quickwp_thread_id"
	OptionAIProvider = "ai_provider"
)

// SiteSettings maps option keys to their stored values.
type SiteSettings map[string]string

// Get returns the value for key, or fallback when it is unset or empty.
func (s SiteSettings) Get(key, fallback string) string {
	if v := s[key]; v != "" {
		return v
	}
	return fallback
}
