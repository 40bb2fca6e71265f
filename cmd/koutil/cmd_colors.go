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

	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/AleutianAI/koutil/pkg/ux"
	"github.com/spf13/cobra"
)

// namedColor pairs a color with its display label.
type namedColor struct {
	label string
	color term.Color
}

var ansiColors = []namedColor{
	{"black", term.Black}, {"red", term.Red}, {"green", term.Green}, {"yellow", term.Yellow},
	{"blue", term.Blue}, {"magenta", term.Magenta}, {"cyan", term.Cyan}, {"white", term.White},
	{"bright black", term.BlackBright}, {"bright red", term.RedBright},
	{"bright green", term.GreenBright}, {"bright yellow", term.YellowBright},
	{"bright blue", term.BlueBright}, {"bright magenta", term.MagentaBright},
	{"bright cyan", term.CyanBright}, {"bright white", term.WhiteBright},
}

func newColorsCmd(a *app) *cobra.Command {
	var (
		extraHex []string
		hueStep  int
	)

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print color swatches degraded to the terminal's color support",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hueStep <= 0 || hueStep > 360 {
				return fmt.Errorf("--hue-step must be in 1..360, got %d", hueStep)
			}
			runColors(a.printer, extraHex, hueStep)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&extraHex, "hex", nil, "extra #RGB or #RRGGBB colors to show")
	cmd.Flags().IntVar(&hueStep, "hue-step", 30, "degrees between HSV ramp entries")
	return cmd
}

func runColors(p *ux.Printer, extraHex []string, hueStep int) {
	p.Title("Colors")
	p.Muted("rendered at " + p.ColorSupport().String() + " color support")

	// One color, four constructions.
	p.Swatch(term.FromRGB(55, 145, 127), "rgb(55, 145, 127)")
	p.Swatch(term.FromHSV(168, 0.62, 0.57), "hsv(168, 0.62, 0.57)")
	p.Swatch(term.MustHex("#37917f"), "#37917f")
	p.Swatch(term.MustHex("#F00"), "#F00")

	for _, hex := range extraHex {
		c, err := term.ParseHex(hex)
		if err != nil {
			p.Warning(fmt.Sprintf("skipping %q: %v", hex, err))
			continue
		}
		p.Swatch(c, hex)
	}

	p.Title("16 colors")
	for _, nc := range ansiColors {
		p.Swatch(nc.color, nc.label)
	}

	p.Title("HSV ramp")
	for h := 0; h < 360; h += hueStep {
		p.Swatch(term.FromHSV(uint16(h), 0.62, 0.85), fmt.Sprintf("hue %d", h))
	}

	p.Tip("force a level with --color 16|256|truecolor")
}
