// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"geniewp/internal/apperr"
)

// classifyOpenAI maps a go-openai error onto the shared taxonomy. A
// non-2xx answer becomes RemoteAPIError; anything that never produced a
// response (DNS, refused connection, timeout) is a TransportError.
func classifyOpenAI(provider string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperr.Wrap(apperr.RemoteAPIError,
			fmt.Sprintf("%s: HTTP %d", provider, apiErr.HTTPStatusCode), err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apperr.Wrap(apperr.RemoteAPIError,
			fmt.Sprintf("%s: HTTP %d", provider, reqErr.HTTPStatusCode), err)
	}
	return apperr.Wrap(apperr.TransportError, provider, err)
}

func classifyGemini(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apperr.Wrap(apperr.RemoteAPIError, fmt.Sprintf("gemini: HTTP %d", apiErr.Code), err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apperr.Wrap(apperr.RemoteAPIError, fmt.Sprintf("gemini: HTTP %d", apiErrPtr.Code), err)
	}
	return apperr.Wrap(apperr.TransportError, "gemini", err)
}
