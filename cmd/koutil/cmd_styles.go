// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/AleutianAI/koutil/pkg/ux"
	"github.com/spf13/cobra"
)

var singleStyles = []term.Style{
	term.Bold, term.Dim, term.Italic, term.Underline,
	term.Blink, term.Inverse, term.Hidden, term.Strikethrough,
}

func newStylesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Print each text attribute and a few combinations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runStyles(a.printer)
			return nil
		},
	}
}

func runStyles(p *ux.Printer) {
	p.Title("Styles")

	heading := term.Bold.Add(term.Underline)
	if p.Level() == ux.PersonalityMachine {
		fmt.Fprintln(p.Writer(), "Hello world!!!")
	} else {
		fmt.Fprintln(p.Writer(), "Hello "+heading.String()+"world"+term.ResetAll+"!!!")
	}

	for _, s := range singleStyles {
		p.Bullets(p.Paint(term.DefaultColor, s, styleLabel(s)))
	}

	combos := []term.Style{
		heading,
		term.Bold.Add(term.Italic).Add(term.Strikethrough),
		term.Dim.Add(term.Inverse),
		// Intersect keeps only the shared flags.
		heading.Intersect(term.Underline.Add(term.Italic)),
		heading.Remove(term.Bold),
	}
	for _, s := range combos {
		p.Bullets(p.Paint(ux.ColorTealPrimary, s, styleLabel(s)))
	}
}

func styleLabel(s term.Style) string {
	return strings.Join(s.Names(), "+")
}
