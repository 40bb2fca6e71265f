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
	"io"
	"log/slog"
	"strconv"

	"github.com/AleutianAI/koutil/pkg/argparser"
	"github.com/spf13/cobra"
)

// buildTarget is the subcommand path selected on the demo tree.
type buildTarget int

const (
	targetNone buildTarget = iota
	targetExe
	targetLib
)

func (t buildTarget) String() string {
	switch t {
	case targetExe:
		return "BUILD_EXE"
	case targetLib:
		return "BUILD_LIB"
	default:
		return "NONE"
	}
}

// demoState collects what the demo handler saw.
type demoState struct {
	A       bool
	B       bool
	Release bool
	Out     string
	Cmd     buildTarget
}

// demoTree declares
//
//	koutil argparse [-a] [-b] build [-r|--release] [--out=value] (exe|lib)
func demoTree() (*argparser.Arguments, *argparser.Commands) {
	buildArgs := argparser.MustArguments(
		argparser.ShortLongFlag('r', "release", "optimized build"),
		argparser.Value("out", "output path"),
	)
	build := argparser.NewSubcommand("build", buildArgs, argparser.MustCommands(
		argparser.NewSubcommand("exe", nil, nil).Describe("build an executable"),
		argparser.NewSubcommand("lib", nil, nil).Describe("build a library"),
	)).Describe("compile the project")

	args := argparser.MustArguments(
		argparser.Flag('a', "set a"),
		argparser.Flag('b', "set b"),
	)
	return args, argparser.MustCommands(build)
}

// demoHandler records parse events into a demoState. Positional arguments
// are rejected.
func demoHandler(state *demoState) argparser.HandlerFuncs {
	return argparser.HandlerFuncs{
		OptionFlag: func(arg argparser.Arg) error {
			switch {
			case arg.Is('a'):
				state.A = true
			case arg.Is('b'):
				state.B = true
			case arg.IsLong("release"):
				state.Release = true
			}
			return nil
		},
		OptionValue: func(arg argparser.Arg, value string) error {
			if arg.IsLong("out") {
				if value == "" {
					return argparser.ErrInvalidValue
				}
				state.Out = value
			}
			return nil
		},
		Command: func(cmd *argparser.Subcommand) error {
			switch {
			case cmd.Is("exe"):
				state.Cmd = targetExe
			case cmd.Is("lib"):
				state.Cmd = targetLib
			}
			return nil
		},
	}
}

func newArgparseCmd(a *app) *cobra.Command {
	var helpTree bool

	cmd := &cobra.Command{
		Use:   "argparse [-- argv...]",
		Short: "Run the koutil argument parser over a demo command tree",
		Long: `Parses argv with the koutil argument parser. Pass argv after "--" so
its options are not taken as koutil flags:

  koutil argparse -- -ab build --out=bin exe`,
		RunE: func(cmd *cobra.Command, argv []string) error {
			args, cmds := demoTree()
			if helpTree {
				return writeHelpTree(a.out, "koutil argparse --", args, cmds)
			}

			var state demoState
			parser := argparser.NewParser(demoHandler(&state), args, cmds,
				argparser.WithLogger(slog.Default()))
			err := parser.Parse(cmd.Context(), argv)

			p := a.printer
			if err != nil {
				p.Error(argparser.Result(err).String())
				slog.Debug("argparse failed", slog.String("error", err.Error()))
			} else {
				p.Success(argparser.ResultOK.String())
			}
			p.KeyValue("a", strconv.FormatBool(state.A))
			p.KeyValue("b", strconv.FormatBool(state.B))
			p.KeyValue("release", strconv.FormatBool(state.Release))
			p.KeyValue("out", strconv.Quote(state.Out))
			p.KeyValue("cmd", state.Cmd.String())

			if err != nil {
				return &exitError{code: 2}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&helpTree, "help-tree", false, "print generated help for every level of the demo tree")
	return cmd
}

// writeHelpTree writes help for the root sets and then, depth first, for
// every subcommand.
func writeHelpTree(w io.Writer, program string, args *argparser.Arguments, cmds *argparser.Commands) error {
	root := argparser.NewParser(argparser.HandlerFuncs{}, args, cmds)
	if err := root.WriteHelp(w, program); err != nil {
		return err
	}

	var walk func(prefix string, cmds *argparser.Commands) error
	walk = func(prefix string, cmds *argparser.Commands) error {
		for _, c := range cmds.All() {
			name := prefix + " " + c.Name
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := c.WriteHelp(w, name); err != nil {
				return err
			}
			if err := walk(name, c.Commands); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(program, cmds)
}
