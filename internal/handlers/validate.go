// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Limits on free-text inputs forwarded to the assistants API.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 5_000
	maxImages         = 20
	maxMessageLen     = 10_000
	maxAPIKeyLen      = 256
)

// validateExport checks export inputs and returns the first error found.
func validateExport(title, description string, images []string) string {
	if utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLen {
		return "Title is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 5,000 characters)."
	}
	if len(images) > maxImages {
		return "Too many images (max 20)."
	}
	return ""
}

// validateMessage checks a conversation message.
func validateMessage(message string) string {
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateAPIKey checks an API key before it is stored. An empty key is
// allowed and clears the setting.
func validateAPIKey(key string) string {
	if len(key) > maxAPIKeyLen {
		return "API key is too long."
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return "API key must not contain whitespace."
	}
	return ""
}
