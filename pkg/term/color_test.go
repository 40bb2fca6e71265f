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
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HSV Tests
// =============================================================================

const maxChannelErr = 3

var hsvTests = []struct {
	h        uint16
	s, v     float64
	expected Color
}{
	{138, 0.26, 0.9, FromRGB(169, 229, 187)},
	{89, 0.24, 0.93, FromRGB(211, 238, 182)},
	{55, 0.3, 0.99, FromRGB(252, 246, 177)},
	{44, 0.56, 0.98, FromRGB(250, 213, 110)},
	{40, 0.83, 0.97, FromRGB(247, 179, 43)},
	{21, 0.84, 0.97, FromRGB(247, 112, 40)},
	{2, 0.85, 0.97, FromRGB(247, 44, 37)},
	{357, 0.75, 0.57, FromRGB(146, 37, 42)},
	{349, 0.65, 0.38, FromRGB(96, 34, 45)},
	{293, 0.36, 0.18, FromRGB(45, 30, 47)},
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// TestFromHSV checks the conversion against a reference table.
func TestFromHSV(t *testing.T) {
	for _, tc := range hsvTests {
		got := FromHSV(tc.h, tc.s, tc.v)
		assert.Equal(t, TagRGB, got.Tag)
		assert.LessOrEqual(t, channelDiff(got.Red, tc.expected.Red), maxChannelErr, "h=%d red", tc.h)
		assert.LessOrEqual(t, channelDiff(got.Green, tc.expected.Green), maxChannelErr, "h=%d green", tc.h)
		assert.LessOrEqual(t, channelDiff(got.Blue, tc.expected.Blue), maxChannelErr, "h=%d blue", tc.h)
	}
}

func TestFromHSV_Grey(t *testing.T) {
	assert.Equal(t, FromRGB(128, 128, 128), FromHSV(200, 0, 0.5))
	assert.Equal(t, FromRGB(255, 255, 255), FromHSV(0, 0.00001, 1))
}

func TestFromHSV_HueWraps(t *testing.T) {
	assert.Equal(t, FromHSV(10, 0.5, 0.5), FromHSV(370, 0.5, 0.5))
}

func TestFromHSV_MatchesHexExample(t *testing.T) {
	hsv := FromHSV(168, 0.62, 0.57)
	hex := MustHex("#37917f")
	assert.LessOrEqual(t, channelDiff(hsv.Red, hex.Red), maxChannelErr)
	assert.LessOrEqual(t, channelDiff(hsv.Green, hex.Green), maxChannelErr)
	assert.LessOrEqual(t, channelDiff(hsv.Blue, hex.Blue), maxChannelErr)
}

// =============================================================================
// Hex Tests
// =============================================================================

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#37917f", FromRGB(0x37, 0x91, 0x7f)},
		{"#37917F", FromRGB(0x37, 0x91, 0x7f)},
		{"#F00", FromRGB(255, 0, 0)},
		{"#abc", FromRGB(0xaa, 0xbb, 0xcc)},
		{"#000000", FromRGB(0, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "37917f", "#12", "#12345", "#1234567", "#ggg", "#12345z"} {
		_, err := ParseHex(in)
		assert.True(t, errors.Is(err, ErrInvalidHex), "input %q", in)
	}
}

func TestMustHex_Panics(t *testing.T) {
	assert.Panics(t, func() { MustHex("nope") })
}

func TestColor_HexRoundTrip(t *testing.T) {
	c := FromRGB(1, 2, 255)
	assert.Equal(t, "#0102ff", c.Hex())
	assert.Equal(t, "", Red.Hex())
}

func TestColor_Channels(t *testing.T) {
	ch, ok := FromRGB(1, 2, 3).Channels()
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{1, 2, 3}, ch)

	_, ok = Red.Channels()
	assert.False(t, ok)
	assert.Equal(t, uint8(31), Red.ID())
}

func TestColor_Equality(t *testing.T) {
	assert.Equal(t, FromRGB(55, 145, 127), MustHex("#37917f"))
	assert.NotEqual(t, FromID(31), FromPalette(31))
}

// =============================================================================
// Rendering Tests
// =============================================================================

func TestForegroundBackground(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rgb fg", FromRGB(55, 145, 127).FG().String(), "\x1b[38;2;55;145;127m"},
		{"rgb bg", FromRGB(55, 145, 127).BG().String(), "\x1b[48;2;55;145;127m"},
		{"id fg", Red.FG().String(), "\x1b[31m"},
		{"id bg", Red.BG().String(), "\x1b[41m"},
		{"bright bg", WhiteBright.BG().String(), "\x1b[107m"},
		{"palette fg", FromPalette(208).FG().String(), "\x1b[38;5;208m"},
		{"palette bg", FromPalette(208).BG().String(), "\x1b[48;5;208m"},
		{"hex fg", HexFG("#F00").String(), "\x1b[38;2;255;0;0m"},
		{"hex bg", HexBG("#00f").String(), "\x1b[48;2;0;0;255m"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}

func TestResetSequences(t *testing.T) {
	assert.Equal(t, "\x1b[39m", ResetFG)
	assert.Equal(t, "\x1b[49m", ResetBG)
	assert.Equal(t, "\x1b[39;49m", ResetColor)
	assert.Equal(t, "\x1b[0m", ResetAll)
}

func TestNamedColors(t *testing.T) {
	ids := map[Color]uint8{
		Black: 30, Red: 31, Green: 32, Yellow: 33, Blue: 34, Magenta: 35, Cyan: 36, White: 37,
		DefaultColor: 39, BlackBright: 90, RedBright: 91, GreenBright: 92, YellowBright: 93,
		BlueBright: 94, MagentaBright: 95, CyanBright: 96, WhiteBright: 97,
	}
	for c, id := range ids {
		assert.Equal(t, TagID, c.Tag)
		assert.Equal(t, id, c.ID())
	}
}

// =============================================================================
// Degrade Tests
// =============================================================================

func TestDegrade_TrueColorKeeps(t *testing.T) {
	c := FromRGB(12, 34, 56)
	assert.Equal(t, c, c.Degrade(TrueColor))
}

func TestDegrade_IDKeeps(t *testing.T) {
	assert.Equal(t, Cyan, Cyan.Degrade(Color16))
	assert.Equal(t, Cyan, Cyan.Degrade(Color256))
}

func TestDegrade_To256(t *testing.T) {
	got := FromRGB(255, 0, 0).Degrade(Color256)
	assert.Equal(t, TagPalette, got.Tag)
	assert.Equal(t, uint8(196), got.Index)

	p := FromPalette(42)
	assert.Equal(t, p, p.Degrade(Color256))
}

func TestDegrade_To16(t *testing.T) {
	got := FromRGB(255, 0, 0).Degrade(Color16)
	assert.Equal(t, TagID, got.Tag)
	assert.True(t, got == Red || got == RedBright, "got %v", got)

	fromPalette := FromPalette(196).Degrade(Color16)
	assert.Equal(t, TagID, fromPalette.Tag)
	_, ok := ansiIndex(fromPalette.Index)
	assert.True(t, ok)
}

func TestParseColorSupport(t *testing.T) {
	for name, want := range map[string]ColorSupport{"16": Color16, "256": Color256, "truecolor": TrueColor, "24bit": TrueColor} {
		got, ok := ParseColorSupport(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ParseColorSupport("rainbow")
	assert.False(t, ok)
}

// =============================================================================
// Lipgloss Bridge Tests
// =============================================================================

func TestColor_Lipgloss(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#37917f"), MustHex("#37917f").Lipgloss())
	assert.Equal(t, lipgloss.ANSIColor(1), Red.Lipgloss())
	assert.Equal(t, lipgloss.ANSIColor(9), RedBright.Lipgloss())
	assert.Equal(t, lipgloss.ANSIColor(208), FromPalette(208).Lipgloss())
	assert.Equal(t, lipgloss.NoColor{}, DefaultColor.Lipgloss())
}

func TestStyle_Lipgloss(t *testing.T) {
	s := Bold.Add(Italic).Lipgloss(lipgloss.NewStyle())
	assert.True(t, s.GetBold())
	assert.True(t, s.GetItalic())
	assert.False(t, s.GetUnderline())
}
