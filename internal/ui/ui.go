// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ui styles the command-line output of the geniewp tool.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#2563EB")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	muted   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warningStyle = lipgloss.NewStyle().Foreground(warning)
	infoStyle    = lipgloss.NewStyle().Foreground(primary)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(primary)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
)

// Banner returns the tool name and version line.
func Banner(version string) string {
	return titleStyle.Render("GenieWP") + " " + mutedStyle.Render(version)
}

// Divider returns a horizontal rule.
func Divider() string {
	return mutedStyle.Render("─────────────────────────────────────────")
}

// Header writes a section header.
func Header(w io.Writer, text string) {
	fmt.Fprintln(w, titleStyle.Render("▸ "+text))
}

// Success writes a success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Info writes an informational line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render("• "+fmt.Sprintf(format, args...)))
}

// Warning writes a warning line.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Error writes an error line.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// KeyValue writes an indented "key: value" pair.
func KeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(key+":"), valueStyle.Render(value))
}
