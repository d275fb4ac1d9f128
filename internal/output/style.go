// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tspin/tspin/internal/config"
)

// Describe returns a compact description of s such as
// "fg=red bg=black bold italic", or "plain" for the zero style.
func Describe(s config.Style) string {
	if s.IsPlain() {
		return "plain"
	}

	var parts []string
	if s.Fg != config.ColorNone {
		parts = append(parts, "fg="+s.Fg.String())
	}
	if s.Bg != config.ColorNone {
		parts = append(parts, "bg="+s.Bg.String())
	}
	for _, flag := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Faint, "faint"},
		{s.Italic, "italic"},
		{s.Underline, "underline"},
	} {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}
	return strings.Join(parts, " ")
}

// Lipgloss converts s into a lipgloss style using the terminal's basic
// 8-color palette.
func Lipgloss(s config.Style) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Faint(s.Faint).
		Italic(s.Italic).
		Underline(s.Underline)

	if i := s.Fg.ANSIIndex(); i >= 0 {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	if i := s.Bg.ANSIIndex(); i >= 0 {
		style = style.Background(lipgloss.Color(strconv.Itoa(i)))
	}
	return style
}

// Swatch renders sample with s when color is true, otherwise returns sample
// unchanged.
func Swatch(s config.Style, sample string, color bool) string {
	if !color || s.IsPlain() {
		return sample
	}
	return Lipgloss(s).Render(sample)
}
