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
	"strconv"
)

// =============================================================================
// Cursor Commands
// =============================================================================

// CursorPos moves the cursor to an absolute 1-based line and column.
type CursorPos struct {
	Line   uint16
	Column uint16
}

// String returns the CUP sequence.
func (p CursorPos) String() string {
	return ESC + "[" + strconv.Itoa(int(p.Line)) + ";" + strconv.Itoa(int(p.Column)) + "H"
}

// Direction is the final byte of a relative cursor movement.
type Direction byte

const (
	MoveUp            Direction = 'A'
	MoveDown          Direction = 'B'
	MoveRight         Direction = 'C'
	MoveLeft          Direction = 'D'
	MoveDownLineStart Direction = 'E'
	MoveUpLineStart   Direction = 'F'
	MoveColumn        Direction = 'G'
)

// CursorMove moves the cursor relative to its position. For MoveColumn, N
// is the absolute target column.
type CursorMove struct {
	N         uint16
	Direction Direction
}

// String returns the movement sequence.
func (m CursorMove) String() string {
	return ESC + "[" + strconv.Itoa(int(m.N)) + string(rune(m.Direction))
}

// CursorCommand is a parameterless cursor operation.
type CursorCommand int

const (
	CursorHome CursorCommand = iota
	CursorSave
	CursorRestore
	CursorHide
	CursorShow
)

// String returns the escape sequence.
func (c CursorCommand) String() string {
	switch c {
	case CursorHome:
		return ESC + "[H"
	case CursorSave:
		return ESC + "7"
	case CursorRestore:
		return ESC + "8"
	case CursorHide:
		return ESC + "[?25l"
	case CursorShow:
		return ESC + "[?25h"
	default:
		return ""
	}
}

// =============================================================================
// Buffer and Erase Commands
// =============================================================================

// BufferCommand switches between the main and alternate screen buffers.
type BufferCommand byte

const (
	EnableAltBuffer  BufferCommand = 'h'
	DisableAltBuffer BufferCommand = 'l'
)

// String returns the DECSET/DECRST 1049 sequence.
func (c BufferCommand) String() string {
	return ESC + "[?1049" + string(rune(c))
}

// EraseCommand clears part of the screen or the current line.
type EraseCommand int

const (
	EraseToScreenEnd EraseCommand = iota
	EraseToScreenStart
	EraseScreen
	EraseLine
	EraseToLineEnd
	EraseToLineStart
)

// String returns the ED/EL sequence.
func (c EraseCommand) String() string {
	switch c {
	case EraseToScreenEnd:
		return ESC + "[0J"
	case EraseToScreenStart:
		return ESC + "[1J"
	case EraseScreen:
		return ESC + "[2J"
	case EraseLine:
		return ESC + "[2K"
	case EraseToLineEnd:
		return ESC + "[0K"
	case EraseToLineStart:
		return ESC + "[1K"
	default:
		return ""
	}
}
