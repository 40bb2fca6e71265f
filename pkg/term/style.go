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
	"strings"
)

// Style is a set of text attributes.
//
// # Description
//
// Rendering a Style emits one SGR sequence that sets every attribute in the
// set and explicitly clears every attribute that is not, so styles can be
// switched without an intermediate ResetAll. StyleNone renders nothing.
//
// # Example
//
//	heading := term.Bold.Add(term.Underline)
//	fmt.Print(heading, "Title", term.ResetAll)
type Style uint8

const (
	StyleNone     Style = 0
	Bold          Style = 1 << 0
	Dim           Style = 1 << 1
	Italic        Style = 1 << 2
	Underline     Style = 1 << 3
	Blink         Style = 1 << 4
	Inverse       Style = 1 << 5
	Hidden        Style = 1 << 6
	Strikethrough Style = 1 << 7
)

// boldDimCodes is indexed by the bold (bit 0) and dim (bit 1) flags.
// SGR 22 clears both, so it has to come first when only one is set.
var boldDimCodes = [4]string{"22", "22;1", "22;2", "1;2"}

var toggles = []struct {
	flag Style
	on   string
	off  string
}{
	{Italic, ";3", ";23"},
	{Underline, ";4", ";24"},
	{Blink, ";5", ";25"},
	{Inverse, ";7", ";27"},
	{Hidden, ";8", ";28"},
	{Strikethrough, ";9", ";29"},
}

// Add returns the union of s and other.
func (s Style) Add(other Style) Style {
	return s | other
}

// Remove returns s without the flags in other.
func (s Style) Remove(other Style) Style {
	return s &^ other
}

// Intersect returns the flags present in both s and other.
func (s Style) Intersect(other Style) Style {
	return s & other
}

// Contains reports whether every flag in flags is set in s.
func (s Style) Contains(flags Style) bool {
	return s&flags == flags
}

// String returns the SGR sequence for the style.
func (s Style) String() string {
	if s == StyleNone {
		return ""
	}

	var b strings.Builder
	b.Grow(32)
	b.WriteString(ESC)
	b.WriteByte('[')
	b.WriteString(boldDimCodes[s&(Bold|Dim)])

	for _, t := range toggles {
		if s.Contains(t.flag) {
			b.WriteString(t.on)
		} else {
			b.WriteString(t.off)
		}
	}

	b.WriteByte('m')
	return b.String()
}

// Names returns the attribute names in the set, in flag order.
func (s Style) Names() []string {
	names := []string{"bold", "dim", "italic", "underline", "blink", "inverse", "hidden", "strikethrough"}
	var out []string
	for i, name := range names {
		if s&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}
