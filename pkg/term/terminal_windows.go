// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build windows

package term

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

const (
	platformTrueColor = true
	codePageUTF8      = 65001
)

func defaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

// platformSetup switches the console to UTF-8 and enables virtual terminal
// sequences on both handles. The original modes are restored on exit.
func platformSetup(t *Terminal) error {
	out := windows.Handle(t.out.Fd())
	in := windows.Handle(t.in.Fd())

	if err := windows.SetConsoleOutputCP(codePageUTF8); err != nil {
		return fmt.Errorf("%w: %v", ErrCodePage, err)
	}

	var modeIn, modeOut uint32
	if in == windows.InvalidHandle || windows.GetConsoleMode(in, &modeIn) != nil {
		return ErrInputHandle
	}
	if out == windows.InvalidHandle || windows.GetConsoleMode(out, &modeOut) != nil {
		return ErrOutputHandle
	}

	origIn, origOut := modeIn, modeOut
	t.OnExit(func() { _ = windows.SetConsoleMode(in, origIn) })
	t.OnExit(func() { _ = windows.SetConsoleMode(out, origOut) })

	modeOut |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.DISABLE_NEWLINE_AUTO_RETURN
	modeIn |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT | windows.ENABLE_WINDOW_INPUT

	if err := windows.SetConsoleMode(in, modeIn); err != nil {
		return fmt.Errorf("%w: input: %v", ErrSetup, err)
	}
	if err := windows.SetConsoleMode(out, modeOut); err != nil {
		return fmt.Errorf("%w: output: %v", ErrSetup, err)
	}
	return nil
}

func queryDimensions(out *os.File) Dimensions {
	var info windows.ConsoleScreenBufferInfo
	h := windows.Handle(out.Fd())
	if h == windows.InvalidHandle || windows.GetConsoleScreenBufferInfo(h, &info) != nil {
		return Dimensions{}
	}
	return Dimensions{
		Width:  int(info.Window.Right-info.Window.Left) + 1,
		Height: int(info.Window.Bottom-info.Window.Top) + 1,
	}
}
