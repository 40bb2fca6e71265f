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
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ESC is the escape byte that starts every control sequence.
const ESC = "\x1b"

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// =============================================================================
// Color Type
// =============================================================================

// ColorTag identifies how a Color is encoded on the wire.
type ColorTag uint8

const (
	// TagRGB is a 24-bit color rendered with the 38;2 / 48;2 sequences.
	TagRGB ColorTag = iota

	// TagID is an SGR color code (30-37, 39, 90-97) rendered as-is.
	TagID

	// TagPalette is an xterm 256-color index rendered with 38;5 / 48;5.
	TagPalette
)

// String returns the tag name.
func (t ColorTag) String() string {
	switch t {
	case TagRGB:
		return "rgb"
	case TagID:
		return "id"
	case TagPalette:
		return "palette"
	default:
		return "unknown"
	}
}

// Color is a terminal color value.
//
// # Description
//
// A Color is either an RGB triple, an SGR color id, or a 256-palette index,
// as reported by Tag. Only the fields matching the tag are meaningful; the
// zero Color is RGB black.
//
// # Thread Safety
//
// Color is an immutable comparable value.
//
// # Example
//
//	teal := term.FromRGB(55, 145, 127)
//	fmt.Print(teal.FG(), "teal text", term.ResetFG)
type Color struct {
	// Red, Green and Blue are the channels of an RGB color.
	Red   uint8
	Green uint8
	Blue  uint8

	// Index is the SGR id of a TagID color or the palette slot of a
	// TagPalette color.
	Index uint8

	// Tag selects the encoding.
	Tag ColorTag
}

// FromRGB creates an RGB color.
func FromRGB(r, g, b uint8) Color {
	return Color{Red: r, Green: g, Blue: b, Tag: TagRGB}
}

// FromID creates a color from an SGR foreground code such as 31 or 94.
// The background form adds 10 when rendered.
func FromID(id uint8) Color {
	return Color{Index: id, Tag: TagID}
}

// FromPalette creates a color from an xterm 256-color palette index.
func FromPalette(n uint8) Color {
	return Color{Index: n, Tag: TagPalette}
}

// FromHSV creates an RGB color from hue, saturation and value.
//
// # Description
//
// The hue is reduced modulo 360. Saturation and value are clamped to [0, 1].
// A saturation at or below 0.0001 yields the grey round(v*255).
//
// # Inputs
//
//   - h: Hue in degrees.
//   - s: Saturation in [0, 1].
//   - v: Value in [0, 1].
//
// # Outputs
//
//   - Color: The RGB color, each channel rounded to the nearest integer.
//
// # Example
//
//	c := term.FromHSV(168, 0.62, 0.57) // ~ (55, 145, 127)
func FromHSV(h uint16, s, v float64) Color {
	s = clampUnit(s)
	v = clampUnit(v)

	if s <= 0.0001 {
		grey := channel(v)
		return FromRGB(grey, grey, grey)
	}

	r, g, b := colorful.Hsv(float64(h%360), s, v).RGB255()
	return FromRGB(r, g, b)
}

// ParseHex parses "#RGB" or "#RRGGBB" into an RGB color.
//
// # Description
//
// The short form duplicates each nibble, so "#F00" equals "#FF0000".
// Digits are case-insensitive.
//
// # Outputs
//
//   - Color: The parsed color.
//   - error: ErrInvalidHex (wrapped) when the prefix, length or digits are
//     wrong.
func ParseHex(hex string) (Color, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q must start with '#'", ErrInvalidHex, hex)
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("%w: %q must have 3 or 6 digits", ErrInvalidHex, hex)
	}
	for i := 1; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, fmt.Errorf("%w: %q has non-hex digit %q", ErrInvalidHex, hex, hex[i])
		}
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// MustHex is like ParseHex but panics on error. It is meant for
// package-level color literals.
func MustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// HexFG parses a hex color and returns its foreground form. Panics on error.
func HexFG(hex string) Foreground {
	return MustHex(hex).FG()
}

// HexBG parses a hex color and returns its background form. Panics on error.
func HexBG(hex string) Background {
	return MustHex(hex).BG()
}

// Channels returns the RGB channels. ok is false for non-RGB colors.
func (c Color) Channels() (channels [3]uint8, ok bool) {
	if c.Tag != TagRGB {
		return channels, false
	}
	return [3]uint8{c.Red, c.Green, c.Blue}, true
}

// ID returns the SGR id or palette index of the color.
func (c Color) ID() uint8 {
	return c.Index
}

// Hex returns "#rrggbb" for RGB colors and "" otherwise.
func (c Color) Hex() string {
	if c.Tag != TagRGB {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// FG returns the foreground form of the color.
func (c Color) FG() Foreground {
	return Foreground{Color: c}
}

// BG returns the background form of the color.
func (c Color) BG() Background {
	return Background{Color: c}
}

// String describes the color for logs and debugging.
func (c Color) String() string {
	switch c.Tag {
	case TagRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
	case TagID:
		return fmt.Sprintf("id(%d)", c.Index)
	case TagPalette:
		return fmt.Sprintf("palette(%d)", c.Index)
	default:
		return "color(?)"
	}
}

func channel(val float64) uint8 {
	return uint8(math.Round(val * 255.0))
}

func clampUnit(val float64) float64 {
	switch {
	case val < 0:
		return 0
	case val > 1:
		return 1
	default:
		return val
	}
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
