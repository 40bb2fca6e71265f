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
	"errors"
	"fmt"
)

// Declaration errors.
var (
	ErrDuplicateArg     = errors.New("duplicate or nameless option")
	ErrDuplicateCommand = errors.New("duplicate command name")
)

// Parse errors. Handlers return these, or wrap them, to select a
// ParseResult.
var (
	ErrGeneric      = errors.New("parse error")
	ErrEmptyOption  = errors.New("empty option")
	ErrUnknown      = errors.New("unknown option or command")
	ErrInvalidValue = errors.New("invalid option value")
	ErrMissingValue = errors.New("missing option value")
)

// ParseResult classifies the outcome of a parse.
type ParseResult int

const (
	ResultOK ParseResult = iota
	ResultErr
	ResultEmptyOption
	ResultUnknown
	ResultInvalidValue
	ResultMissingValue
)

// String returns the result in upper-case words, e.g. "ERR UNKNOWN".
func (r ParseResult) String() string {
	switch r {
	case ResultOK:
		return "OK"
	case ResultEmptyOption:
		return "ERR EMPTY OPTION"
	case ResultUnknown:
		return "ERR UNKNOWN"
	case ResultInvalidValue:
		return "ERR INVALID VALUE"
	case ResultMissingValue:
		return "ERR MISSING VALUE"
	default:
		return "ERR"
	}
}

// label is the metric label value.
func (r ParseResult) label() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultEmptyOption:
		return "empty_option"
	case ResultUnknown:
		return "unknown"
	case ResultInvalidValue:
		return "invalid_value"
	case ResultMissingValue:
		return "missing_value"
	default:
		return "error"
	}
}

// Result maps an error returned by Parse to a ParseResult. nil is ResultOK
// and errors matching none of the sentinels are ResultErr.
func Result(err error) ParseResult {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrEmptyOption):
		return ResultEmptyOption
	case errors.Is(err, ErrUnknown):
		return ResultUnknown
	case errors.Is(err, ErrInvalidValue):
		return ResultInvalidValue
	case errors.Is(err, ErrMissingValue):
		return ResultMissingValue
	default:
		return ResultErr
	}
}

// ParseError reports the token that stopped a parse.
type ParseError struct {
	// Token is the offending argv element.
	Token string

	// Index is the position of Token in argv.
	Index int

	// Err is the walk error or the error returned by the handler.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argparser: argument %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
