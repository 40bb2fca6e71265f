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
	"log/slog"
	"strconv"

	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/spf13/cobra"
)

// terminalInfo is what the info command reports.
type terminalInfo struct {
	Dimensions   term.Dimensions
	ColorSupport term.ColorSupport
	TTY          bool
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show terminal size, color support and personality",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := queryTerminal(a)
			if err != nil {
				return err
			}

			p := a.printer
			p.Title("Terminal")
			p.KeyValue("tty", strconv.FormatBool(info.TTY))
			p.KeyValue("width", strconv.Itoa(info.Dimensions.Width))
			p.KeyValue("height", strconv.Itoa(info.Dimensions.Height))
			p.KeyValue("color_support", info.ColorSupport.String())
			p.KeyValue("personality", string(p.Level()))
			p.KeyValue("version", version)
			return nil
		},
	}
}

// queryTerminal opens a short-lived session on a tty output. Other outputs
// report zero dimensions and the resolved color support.
func queryTerminal(a *app) (terminalInfo, error) {
	out, ok := ttyFile(a.out)
	if !ok {
		return terminalInfo{ColorSupport: a.support}, nil
	}

	t, err := term.New(
		term.WithOutput(out),
		term.WithColorSupport(a.support),
		term.WithLogger(slog.Default()),
	)
	if err != nil {
		return terminalInfo{}, err
	}
	defer t.Close()

	return terminalInfo{
		Dimensions:   t.QueryDimensions(),
		ColorSupport: t.ColorSupport(),
		TTY:          t.IsTerminal(),
	}, nil
}
