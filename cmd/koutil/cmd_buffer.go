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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/AleutianAI/koutil/pkg/ux"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("not an interactive terminal")

func newBufferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buffer",
		Short: "Switch to the alternate screen buffer until Enter is pressed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ux.IsInteractive(a.in, a.out) {
				return fmt.Errorf("buffer: %w", errNotInteractive)
			}
			out := a.out.(*os.File)
			if err := term.Init(
				term.WithOutput(out),
				term.WithColorSupport(a.support),
				term.WithLogger(slog.Default()),
			); err != nil {
				return err
			}
			defer term.Rollback()

			if err := runBuffer(term.Current(), a.in); err != nil {
				return err
			}
			term.Rollback()
			a.printer.Success("Normal buffer!")
			return nil
		},
	}
}

// runBuffer enters the alternate buffer on t and waits for a line on in.
// Leaving the buffer is registered as an exit handler so it also happens
// on signals.
func runBuffer(t *term.Terminal, in io.Reader) error {
	t.RegisterSignals()

	w := t.Writer()
	t.OnExit(func() {
		_, _ = io.WriteString(w, term.CursorShow.String()+term.DisableAltBuffer.String())
	})

	dims := t.QueryDimensions()
	caption := "Alternative buffer!"
	if dims.Width > 0 {
		caption += " (" + strconv.Itoa(dims.Width) + "x" + strconv.Itoa(dims.Height) + ")"
	}

	_, err := io.WriteString(w,
		term.EnableAltBuffer.String()+
			term.EraseScreen.String()+
			term.CursorHome.String()+
			term.CursorHide.String()+
			caption+"\n"+
			term.CursorMove{N: 2, Direction: term.MoveColumn}.String()+
			"press Enter to return",
	)
	if err != nil {
		return fmt.Errorf("write buffer: %w", err)
	}

	_, err = bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
