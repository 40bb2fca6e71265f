// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides styled terminal output for the koutil CLI.
//
// Output goes through a Printer bound to one writer. The Printer renders
// with pkg/term escape sequences for text and lipgloss for boxes, degrades
// colors to the writer's color support, and drops every escape sequence at
// PersonalityMachine so output stays parseable.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// koutil palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = term.MustHex("#2CD7C7") // highlights, success
	ColorTealPrimary = term.MustHex("#20B9B4") // main accent
	ColorTealDeep    = term.MustHex("#16858E") // borders
	ColorSlate       = term.MustHex("#5C7A84") // muted text

	ColorSuccess = ColorTealBright
	ColorWarning = term.MustHex("#F4D03F")
	ColorError   = term.MustHex("#E74C3C")
	ColorMuted   = ColorSlate
)

// Icon provides status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// boxWidth is the outer width of Box output.
const boxWidth = 60

// =============================================================================
// Printer
// =============================================================================

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithErrorOutput sets the writer used for machine-mode warnings and
// errors. Default: the main writer.
func WithErrorOutput(w io.Writer) PrinterOption {
	return func(p *Printer) { p.errOut = w }
}

// WithPersonality overrides the process personality for this Printer.
func WithPersonality(personality Personality) PrinterOption {
	return func(p *Printer) { p.personality = personality }
}

// WithColorSupport sets the richest color encoding the writer accepts.
// Default: term.TrueColor.
func WithColorSupport(s term.ColorSupport) PrinterOption {
	return func(p *Printer) { p.support = s }
}

// Printer writes styled messages to one writer.
//
// # Description
//
// The personality is captured at construction. Full and standard render
// colors; minimal colors only icons; machine renders plain prefixed lines
// ("OK: ...", "WARN: ...", "ERROR: ...") and omits decorative output such
// as titles.
//
// # Thread Safety
//
// A Printer holds no mutable state after construction. Concurrent calls
// are as safe as concurrent writes to the underlying writer.
type Printer struct {
	out         io.Writer
	errOut      io.Writer
	personality Personality
	support     term.ColorSupport
	renderer    *lipgloss.Renderer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		out:         out,
		errOut:      out,
		personality: GetPersonality(),
		support:     term.TrueColor,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.renderer = lipgloss.NewRenderer(out)
	p.renderer.SetColorProfile(colorProfile(p.support, p.personality.Level))
	return p
}

// colorProfile maps koutil color support onto the lipgloss/termenv profile.
func colorProfile(support term.ColorSupport, level PersonalityLevel) termenv.Profile {
	if level == PersonalityMachine {
		return termenv.Ascii
	}
	switch support {
	case term.TrueColor:
		return termenv.TrueColor
	case term.Color256:
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}

// Level returns the personality level the Printer renders at.
func (p *Printer) Level() PersonalityLevel { return p.personality.Level }

// ColorSupport returns the color support the Printer degrades to.
func (p *Printer) ColorSupport() term.ColorSupport { return p.support }

// Writer returns the main writer.
func (p *Printer) Writer() io.Writer { return p.out }

// Paint wraps text in style and foreground color, followed by a full
// reset. At PersonalityMachine it returns text unchanged.
func (p *Printer) Paint(c term.Color, s term.Style, text string) string {
	if p.personality.Level == PersonalityMachine {
		return text
	}
	return s.String() + c.Degrade(p.support).FG().String() + text + term.ResetAll
}

func (p *Printer) icon(i Icon, c term.Color) string {
	return p.Paint(c, term.StyleNone, string(i))
}

// Title prints a bold title. Omitted in machine mode.
func (p *Printer) Title(text string) {
	if p.personality.Level == PersonalityMachine {
		return
	}
	fmt.Fprintln(p.out, p.Paint(ColorTealBright, term.Bold, text))
}

// Success prints a success message with checkmark
func (p *Printer) Success(text string) {
	p.status(p.out, "OK", IconSuccess, ColorSuccess, text)
}

// Warning prints a warning message. Machine mode writes to the error
// output.
func (p *Printer) Warning(text string) {
	p.status(p.errOut, "WARN", IconWarning, ColorWarning, text)
}

// Error prints an error message. Machine mode writes to the error output.
func (p *Printer) Error(text string) {
	p.status(p.errOut, "ERROR", IconError, ColorError, text)
}

func (p *Printer) status(machineOut io.Writer, prefix string, i Icon, c term.Color, text string) {
	switch p.personality.Level {
	case PersonalityMachine:
		fmt.Fprintf(machineOut, "%s: %s\n", prefix, text)
	case PersonalityMinimal:
		fmt.Fprintf(p.out, "%s %s\n", p.icon(i, c), text)
	default:
		fmt.Fprintf(p.out, "%s %s\n", p.icon(i, c), p.Paint(c, term.StyleNone, text))
	}
}

// Info prints an informational message
func (p *Printer) Info(text string) {
	if p.personality.Level == PersonalityMachine {
		fmt.Fprintln(p.out, text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.Paint(ColorMuted, term.StyleNone, "│"), text)
}

// Muted prints secondary text. Omitted in machine mode.
func (p *Printer) Muted(text string) {
	if p.personality.Level == PersonalityMachine {
		return
	}
	fmt.Fprintln(p.out, p.Paint(ColorMuted, term.StyleNone, text))
}

// Tip prints a hint, only in full mode with tips enabled.
func (p *Printer) Tip(text string) {
	if p.personality.Level != PersonalityFull || !p.personality.ShowTips {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.Paint(ColorTealPrimary, term.Italic, string(IconArrow)+" tip:"), p.Paint(ColorMuted, term.Italic, text))
}

// KeyValue prints "key: value", or "key=value" in machine mode.
func (p *Printer) KeyValue(key, value string) {
	if p.personality.Level == PersonalityMachine {
		fmt.Fprintf(p.out, "%s=%s\n", key, value)
		return
	}
	fmt.Fprintf(p.out, "  %s %s\n", p.Paint(ColorTealPrimary, term.Bold, key+":"), value)
}

// Swatch prints a block of color c followed by label. Machine mode prints
// "label<TAB>color".
func (p *Printer) Swatch(c term.Color, label string) {
	if p.personality.Level == PersonalityMachine {
		fmt.Fprintf(p.out, "%s\t%s\n", label, c)
		return
	}
	block := c.Degrade(p.support).BG().String() + "    " + term.ResetAll
	fmt.Fprintf(p.out, "%s %s\n", block, label)
}

// Box prints content in a rounded box under a title. Machine mode prints
// "title: content" with newlines in content folded to spaces.
func (p *Printer) Box(title, content string) {
	if p.personality.Level == PersonalityMachine {
		fmt.Fprintf(p.out, "%s: %s\n", title, strings.ReplaceAll(content, "\n", " "))
		return
	}
	box := p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep.Lipgloss()).
		Padding(0, 1).
		Width(boxWidth)
	heading := term.Bold.Lipgloss(p.renderer.NewStyle()).
		Foreground(ColorTealBright.Lipgloss()).
		Render(title)
	fmt.Fprintln(p.out, box.Render(heading+"\n"+content))
}

// Bullets prints one bulleted line per item.
func (p *Printer) Bullets(items ...string) {
	for _, item := range items {
		if p.personality.Level == PersonalityMachine {
			fmt.Fprintf(p.out, "- %s\n", item)
			continue
		}
		fmt.Fprintf(p.out, "  %s %s\n", p.icon(IconBullet, ColorTealPrimary), item)
	}
}
