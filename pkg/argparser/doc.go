// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package argparser is a declarative command-line parser.
//
// Options and subcommands are declared up front as immutable values. The
// parser walks argv and reports every recognized piece to a [Handler],
// which owns the resulting state. Nothing is stored by the parser itself,
// so one Parser can be reused across calls.
//
// # Token Grammar
//
//	--            every following token is a positional argument
//	--name        long flag, or value option taking the next token
//	--name=value  value option with an inline value
//	-abc          short flags a, b and c
//	word          subcommand when commands are declared, else positional
//
// A matched subcommand replaces the active option set and command set with
// its own, so options are scoped to the command they follow.
//
// # Example
//
//	all := argparser.ShortLongFlag('a', "all", "include hidden entries")
//	args := argparser.MustArguments(all)
//	build := argparser.NewSubcommand("build", nil, nil)
//	cmds := argparser.MustCommands(build)
//
//	var showAll bool
//	p := argparser.NewParser(argparser.HandlerFuncs{
//	    OptionFlag: func(a argparser.Arg) error {
//	        showAll = showAll || a.Equal(all)
//	        return nil
//	    },
//	}, args, cmds)
//	err := p.Parse(ctx, os.Args[1:])
package argparser
