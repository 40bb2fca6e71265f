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

// Handler receives the pieces recognized by a Parser.
//
// # Description
//
// Each method is called once per recognized token, in argv order. Returning
// a non-nil error stops the parse; the error is returned from Parse wrapped
// in a *ParseError. Return one of the package sentinels, or wrap one, to
// select the matching ParseResult.
type Handler interface {
	// ParseArgument receives a positional argument.
	ParseArgument(value string) error

	// ParseOptionFlag receives a flag option.
	ParseOptionFlag(arg Arg) error

	// ParseOptionValue receives a value option and its value.
	ParseOptionValue(arg Arg, value string) error

	// ParseCommand receives a matched subcommand. Options after it are
	// looked up in the subcommand's own set.
	ParseCommand(cmd *Subcommand) error
}

// HandlerFuncs adapts plain functions to Handler. A nil Argument rejects
// positional arguments with ErrUnknown; the other nil funcs accept.
type HandlerFuncs struct {
	Argument    func(value string) error
	OptionFlag  func(arg Arg) error
	OptionValue func(arg Arg, value string) error
	Command     func(cmd *Subcommand) error
}

var _ Handler = HandlerFuncs{}

func (h HandlerFuncs) ParseArgument(value string) error {
	if h.Argument == nil {
		return ErrUnknown
	}
	return h.Argument(value)
}

func (h HandlerFuncs) ParseOptionFlag(arg Arg) error {
	if h.OptionFlag == nil {
		return nil
	}
	return h.OptionFlag(arg)
}

func (h HandlerFuncs) ParseOptionValue(arg Arg, value string) error {
	if h.OptionValue == nil {
		return nil
	}
	return h.OptionValue(arg, value)
}

func (h HandlerFuncs) ParseCommand(cmd *Subcommand) error {
	if h.Command == nil {
		return nil
	}
	return h.Command(cmd)
}
