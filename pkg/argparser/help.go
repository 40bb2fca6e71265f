// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package argparser

import (
	"fmt"
	"io"
	"strings"
)

// WriteHelp writes the usage text for the root option and command sets.
//
// # Example
//
//	_ = p.WriteHelp(os.Stdout, "koutil")
//
// produces
//
//	usage: koutil [options] <command>
//
//	Options:
//	  -a, --all         include hidden entries
//	      --out=value   output path
//
//	Commands:
//	  build   compile the project
func (p *Parser) WriteHelp(w io.Writer, program string) error {
	return writeHelp(w, program, p.args, p.cmds)
}

// WriteHelp writes the usage text for the subcommand. program is the full
// invocation prefix, e.g. "koutil build".
func (c *Subcommand) WriteHelp(w io.Writer, program string) error {
	return writeHelp(w, program, c.Args, c.Commands)
}

func writeHelp(w io.Writer, program string, args *Arguments, cmds *Commands) error {
	var b strings.Builder

	b.WriteString("usage: ")
	b.WriteString(program)
	if args.Len() > 0 {
		b.WriteString(" [options]")
	}
	if cmds.Len() > 0 {
		b.WriteString(" <command>")
	}
	b.WriteByte('\n')

	if args.Len() > 0 {
		b.WriteString("\nOptions:\n")
		labels := make([]string, 0, args.Len())
		width := 0
		for _, a := range args.Args() {
			l := optionLabel(a)
			labels = append(labels, l)
			width = max(width, len(l))
		}
		for i, a := range args.Args() {
			writeRow(&b, labels[i], width, a.Description)
		}
	}

	if cmds.Len() > 0 {
		b.WriteString("\nCommands:\n")
		width := 0
		for _, c := range cmds.All() {
			width = max(width, len(c.Name))
		}
		for _, c := range cmds.All() {
			writeRow(&b, c.Name, width, c.Description)
		}
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return nil
}

// optionLabel renders "-a, --all", "    --all", "-a" or "    --name=value".
func optionLabel(a Arg) string {
	var b strings.Builder
	if a.HasShort() {
		b.WriteByte('-')
		b.WriteByte(a.Short)
		if a.HasLong() {
			b.WriteString(", ")
		}
	} else {
		b.WriteString("    ")
	}
	if a.HasLong() {
		b.WriteString("--")
		b.WriteString(a.Long)
	}
	if a.Kind == OptionValue {
		if a.HasLong() {
			b.WriteString("=value")
		} else {
			b.WriteString(" value")
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, label string, width int, desc string) {
	b.WriteString("  ")
	b.WriteString(label)
	if desc != "" {
		b.WriteString(strings.Repeat(" ", width-len(label)+3))
		b.WriteString(desc)
	}
	b.WriteByte('\n')
}
