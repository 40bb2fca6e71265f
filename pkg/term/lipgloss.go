// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package term

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss converts the color into a lipgloss color so koutil palettes can
// drive lipgloss layouts. The default color (39) maps to lipgloss.NoColor.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.Tag {
	case TagRGB:
		return lipgloss.Color(c.Hex())
	case TagPalette:
		return lipgloss.ANSIColor(c.Index)
	default:
		if n, ok := ansiIndex(c.Index); ok {
			return lipgloss.ANSIColor(uint(n))
		}
		return lipgloss.NoColor{}
	}
}

// Lipgloss applies the style attributes onto base. Hidden has no lipgloss
// equivalent and is ignored.
func (s Style) Lipgloss(base lipgloss.Style) lipgloss.Style {
	return base.
		Bold(s.Contains(Bold)).
		Faint(s.Contains(Dim)).
		Italic(s.Contains(Italic)).
		Underline(s.Contains(Underline)).
		Blink(s.Contains(Blink)).
		Reverse(s.Contains(Inverse)).
		Strikethrough(s.Contains(Strikethrough))
}
