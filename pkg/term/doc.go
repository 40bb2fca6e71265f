// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package term provides ANSI terminal control for koutil.
//
// The package covers four areas:
//
//   - Colors: RGB, SGR-id and 256-palette colors, with HSV and hex
//     constructors and foreground/background rendering
//   - Styles: bold/dim/italic/... bit sets rendered as a single SGR sequence
//   - Commands: cursor positioning and movement, alternate screen buffer,
//     erase commands
//   - Terminal: a session object that prepares the console, detects color
//     support, restores state on exit and on termination signals
//
// Every renderable value implements [fmt.Stringer], so they compose with the
// fmt package directly:
//
//	fmt.Fprint(os.Stdout, term.Bold.Add(term.Underline), "hello", term.ResetAll)
//	fmt.Fprint(os.Stdout, term.FromHSV(168, 0.62, 0.57).FG(), "teal", term.ResetColor)
//
// # Terminal Session
//
//	if err := term.Init(); err != nil {
//	    return err
//	}
//	defer term.Rollback()
//	term.Current().RegisterSignals()
//
// Rollback runs the registered exit handlers in reverse order, which restores
// console modes and resets all attributes.
//
// # Thread Safety
//
// Color, Style and the command types are immutable values. [Terminal] is safe
// for concurrent use.
package term
