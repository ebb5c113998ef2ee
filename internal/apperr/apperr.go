// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperr defines the error taxonomy shared by the theme generation
// pipeline and the assistant proxy. Every failure surfaced to a caller is an
// *Error carrying one Kind, so handlers can map it to a response without
// string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	InvalidInput        Kind = "invalid_input"
	ThemeAlreadyExists  Kind = "theme_already_exists"
	StorageError        Kind = "storage_error"
	RemoteAPIError      Kind = "remote_api_error"
	TransportError      Kind = "transport_error"
	MalformedAIResponse Kind = "malformed_ai_response"
	AIUnavailable       Kind = "ai_unavailable"
)

// Error is a classified failure. Message is safe to show to an administrator.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind, so errors.Is(err, apperr.New(k, ""))
// and errors.Is(err, apperr.Sentinel(k)) both work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New returns an error of the given kind with a display message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies err. The display message is msg followed by the cause.
func Wrap(kind Kind, msg string, err error) *Error {
	if err == nil {
		return New(kind, msg)
	}
	if msg == "" {
		return &Error{Kind: kind, Message: err.Error(), Err: err}
	}
	return &Error{Kind: kind, Message: msg + ": " + err.Error(), Err: err}
}

// Sentinel returns a comparison value for errors.Is.
func Sentinel(kind Kind) error {
	return &Error{Kind: kind}
}

// KindOf reports the kind of err, or "" when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether any error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the display message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsAI reports whether the failure came from the AI side of the pipeline.
// Such failures never abort generation.
func IsAI(err error) bool {
	switch KindOf(err) {
	case RemoteAPIError, TransportError, MalformedAIResponse, AIUnavailable:
		return true
	}
	return false
}
