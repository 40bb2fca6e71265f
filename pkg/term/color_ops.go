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
	"strconv"
)

// Reset sequences.
const (
	// ResetFG restores the default foreground color.
	ResetFG = ESC + "[39m"

	// ResetBG restores the default background color.
	ResetBG = ESC + "[49m"

	// ResetColor restores both default colors.
	ResetColor = ESC + "[39;49m"

	// ResetAll clears every style and color attribute.
	ResetAll = ESC + "[0m"
)

// 16-color SGR ids.
var (
	Black        = FromID(30)
	Red          = FromID(31)
	Green        = FromID(32)
	Yellow       = FromID(33)
	Blue         = FromID(34)
	Magenta      = FromID(35)
	Cyan         = FromID(36)
	White        = FromID(37)
	DefaultColor = FromID(39)

	BlackBright   = FromID(90)
	RedBright     = FromID(91)
	GreenBright   = FromID(92)
	YellowBright  = FromID(93)
	BlueBright    = FromID(94)
	MagentaBright = FromID(95)
	CyanBright    = FromID(96)
	WhiteBright   = FromID(97)
)

// Foreground renders a color as a foreground SGR sequence.
type Foreground struct {
	Color Color
}

// String returns the escape sequence.
func (f Foreground) String() string {
	return sgrColor(f.Color, "38", 0)
}

// Background renders a color as a background SGR sequence.
type Background struct {
	Color Color
}

// String returns the escape sequence.
func (b Background) String() string {
	return sgrColor(b.Color, "48", 10)
}

// sgrColor renders c using the extended prefix ("38" or "48") for RGB and
// palette colors, and adds idOffset to SGR ids.
func sgrColor(c Color, extended string, idOffset int) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, ESC...)
	buf = append(buf, '[')

	switch c.Tag {
	case TagRGB:
		buf = append(buf, extended...)
		buf = append(buf, ";2;"...)
		buf = strconv.AppendUint(buf, uint64(c.Red), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(c.Green), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(c.Blue), 10)
	case TagPalette:
		buf = append(buf, extended...)
		buf = append(buf, ";5;"...)
		buf = strconv.AppendUint(buf, uint64(c.Index), 10)
	default:
		buf = strconv.AppendInt(buf, int64(c.Index)+int64(idOffset), 10)
	}

	buf = append(buf, 'm')
	return string(buf)
}
