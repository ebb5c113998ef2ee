// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"encoding/json"
	"regexp"

	"geniewp/internal/apperr"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// ExtractJSON returns the JSON document embedded in a model reply. The
// whole reply is tried first; failing that, the first fenced code block
// that holds valid JSON wins.
func ExtractJSON(text string) ([]byte, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return trimmed, nil
	}

	for _, m := range fencedBlock.FindAllStringSubmatch(text, -1) {
		block := bytes.TrimSpace([]byte(m[1]))
		if len(block) > 0 && json.Valid(block) {
			return block, nil
		}
	}
	return nil, apperr.New(apperr.MalformedAIResponse, "AI response did not contain valid JSON")
}
