// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package term

import (
	"github.com/muesli/termenv"
)

// ColorSupport is the richest color encoding a terminal understands.
type ColorSupport int

const (
	Color16 ColorSupport = iota
	Color256
	TrueColor
)

// String returns the canonical name used in configuration files.
func (s ColorSupport) String() string {
	switch s {
	case Color16:
		return "16"
	case Color256:
		return "256"
	case TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseColorSupport converts a configuration value into a ColorSupport.
// ok is false for unknown names.
func ParseColorSupport(name string) (support ColorSupport, ok bool) {
	switch name {
	case "16", "ansi":
		return Color16, true
	case "256", "ansi256":
		return Color256, true
	case "truecolor", "24bit":
		return TrueColor, true
	default:
		return Color16, false
	}
}

// Degrade returns the closest color the given support level can render.
//
// # Description
//
// TrueColor keeps every color. Color256 maps RGB colors to the nearest
// palette slot. Color16 maps RGB and palette colors to the nearest SGR id.
// SGR id colors never change.
//
// # Example
//
//	c := term.FromRGB(250, 10, 10).Degrade(term.Color16) // term.RedBright
func (c Color) Degrade(support ColorSupport) Color {
	if c.Tag == TagID || support >= TrueColor {
		return c
	}

	var src termenv.Color
	switch c.Tag {
	case TagRGB:
		src = termenv.RGBColor(c.Hex())
	case TagPalette:
		if support == Color256 {
			return c
		}
		src = termenv.ANSI256Color(int(c.Index))
	default:
		return c
	}

	profile := termenv.ANSI
	if support == Color256 {
		profile = termenv.ANSI256
	}

	switch converted := profile.Convert(src).(type) {
	case termenv.ANSI256Color:
		return FromPalette(uint8(converted))
	case termenv.ANSIColor:
		return fromANSIIndex(int(converted))
	default:
		return c
	}
}

// fromANSIIndex maps a 0-15 ANSI color index to its SGR foreground id.
func fromANSIIndex(n int) Color {
	if n < 8 {
		return FromID(uint8(30 + n))
	}
	return FromID(uint8(90 + n - 8))
}

// ansiIndex is the inverse of fromANSIIndex. ok is false for ids outside
// the 16-color range, including the default color 39.
func ansiIndex(id uint8) (n int, ok bool) {
	switch {
	case 30 <= id && id <= 37:
		return int(id - 30), true
	case 90 <= id && id <= 97:
		return int(id-90) + 8, true
	default:
		return 0, false
	}
}
