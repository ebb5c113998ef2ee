// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

// Steps of the guided onboarding flow.
const (
	StepWelcome         = "welcome"
	StepSiteDescription = "site-description"
	StepSiteTopic       = "site-topic"
	StepColorPalette    = "color-palette"
	StepTemplate        = "template"
	StepImage           = "image"
	StepViewSite        = "view-site"
	StepExport          = "export"
)

// DefaultAssistantID handles every step without a dedicated assistant.
const DefaultAssistantID = "asst_gZK2vTq5EIN2LJOKI6DlG33S"

var stepAssistants = map[string]string{
	StepWelcome:         DefaultAssistantID,
	StepSiteDescription: DefaultAssistantID,
	StepSiteTopic:       DefaultAssistantID,
	StepColorPalette:    "asst_13H3CB33PlF99C3KOX3z9D4x",
	StepTemplate:        DefaultAssistantID,
	StepImage:           "asst_5p0q4VWVbJKG0X1zH23Zk33S",
	StepViewSite:        DefaultAssistantID,
}

// AssistantFor returns the assistant id for step. Steps that map to the
// built-in default, and unknown steps, resolve to fallback when it is set.
func AssistantFor(step, fallback string) string {
	id, ok := stepAssistants[step]
	if !ok || id == DefaultAssistantID {
		if fallback != "" {
			return fallback
		}
		return DefaultAssistantID
	}
	return id
}
