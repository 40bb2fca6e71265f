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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Handler that records every call as a string.
type recorder struct {
	events     []string
	positional bool
	failOn     string
	failWith   error
}

func (r *recorder) check(event string) error {
	r.events = append(r.events, event)
	if r.failOn != "" && event == r.failOn {
		return r.failWith
	}
	return nil
}

func (r *recorder) ParseArgument(value string) error {
	if !r.positional {
		return ErrUnknown
	}
	return r.check("arg " + value)
}

func (r *recorder) ParseOptionFlag(arg Arg) error {
	return r.check("flag " + arg.String())
}

func (r *recorder) ParseOptionValue(arg Arg, value string) error {
	return r.check(fmt.Sprintf("value %s %q", arg.String(), value))
}

func (r *recorder) ParseCommand(cmd *Subcommand) error {
	return r.check("cmd " + cmd.Name)
}

var (
	flagA = Flag('a', "")
	flagB = Flag('b', "")
)

// buildTree declares "-a -b" at the root and "build exe|lib" below it.
func buildTree() (*Arguments, *Commands) {
	exe := NewSubcommand("exe", nil, nil)
	lib := NewSubcommand("lib", nil, nil)
	build := NewSubcommand("build", nil, MustCommands(exe, lib))
	return MustArguments(flagA, flagB), MustCommands(build)
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parse(t *testing.T, h Handler, args *Arguments, cmds *Commands, argv ...string) error {
	t.Helper()
	return NewParser(h, args, cmds, quiet()).Parse(context.Background(), argv)
}

// =============================================================================
// Command Tree Tests
// =============================================================================

func TestParse_CommandTree(t *testing.T) {
	args, cmds := buildTree()

	tests := []struct {
		name   string
		argv   []string
		events []string
		result ParseResult
		index  int
	}{
		{"empty", nil, nil, ResultOK, 0},
		{"flags", []string{"-a", "-b"}, []string{"flag -a", "flag -b"}, ResultOK, 0},
		{"cluster", []string{"-ab"}, []string{"flag -a", "flag -b"}, ResultOK, 0},
		{"build exe", []string{"-a", "build", "exe"}, []string{"flag -a", "cmd build", "cmd exe"}, ResultOK, 0},
		{"build lib", []string{"build", "lib"}, []string{"cmd build", "cmd lib"}, ResultOK, 0},
		{"empty tokens skipped", []string{"", "-b", ""}, []string{"flag -b"}, ResultOK, 0},
		{"unknown short", []string{"-c"}, nil, ResultUnknown, 0},
		{"unknown in cluster", []string{"-ac"}, []string{"flag -a"}, ResultUnknown, 0},
		{"empty option", []string{"-a", "-"}, []string{"flag -a"}, ResultEmptyOption, 1},
		{"unknown command", []string{"deploy"}, nil, ResultUnknown, 0},
		{"unknown subcommand", []string{"build", "test"}, []string{"cmd build"}, ResultUnknown, 1},
		{"root flag scoped out", []string{"build", "-a"}, []string{"cmd build"}, ResultUnknown, 1},
		{"positional rejected", []string{"build", "exe", "main.go"}, []string{"cmd build", "cmd exe"}, ResultUnknown, 2},
		{"unknown long", []string{"--all"}, nil, ResultUnknown, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			err := parse(t, rec, args, cmds, tc.argv...)

			if diff := cmp.Diff(tc.events, rec.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.result, Result(err))

			if tc.result != ResultOK {
				var pe *ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tc.index, pe.Index)
				assert.Equal(t, tc.argv[tc.index], pe.Token)
			}
		})
	}
}

func TestParse_ParserReusable(t *testing.T) {
	args, cmds := buildTree()
	rec := &recorder{}
	p := NewParser(rec, args, cmds, quiet())

	require.NoError(t, p.Parse(context.Background(), []string{"build", "exe"}))
	require.NoError(t, p.Parse(context.Background(), []string{"-a", "build", "lib"}))

	want := []string{"cmd build", "cmd exe", "flag -a", "cmd build", "cmd lib"}
	assert.Equal(t, want, rec.events)
}

// =============================================================================
// Option Tests
// =============================================================================

func TestParse_LongOptions(t *testing.T) {
	args := MustArguments(
		LongFlag("verbose", "more output"),
		Value("out", "output path"),
		ShortLongFlag('q', "quiet", "less output"),
	)

	tests := []struct {
		name   string
		argv   []string
		events []string
		result ParseResult
	}{
		{"flag", []string{"--verbose"}, []string{"flag --verbose"}, ResultOK},
		{"short and long", []string{"-q", "--quiet"}, []string{"flag --quiet", "flag --quiet"}, ResultOK},
		{"inline value", []string{"--out=a.txt"}, []string{`value --out=value "a.txt"`}, ResultOK},
		{"inline value with equals", []string{"--out=a=b"}, []string{`value --out=value "a=b"`}, ResultOK},
		{"empty inline value", []string{"--out="}, []string{`value --out=value ""`}, ResultOK},
		{"next token value", []string{"--out", "-x"}, []string{`value --out=value "-x"`}, ResultOK},
		{"missing value", []string{"--verbose", "--out"}, []string{"flag --verbose"}, ResultMissingValue},
		{"flag with value", []string{"--verbose=yes"}, nil, ResultInvalidValue},
		{"unknown", []string{"--nope"}, nil, ResultUnknown},
		{"leading equals is a name", []string{"--=out"}, nil, ResultUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			err := parse(t, rec, args, nil, tc.argv...)
			assert.Equal(t, tc.events, rec.events)
			assert.Equal(t, tc.result, Result(err), "err: %v", err)
		})
	}
}

func TestParse_ValueConsumesToken(t *testing.T) {
	args := MustArguments(Value("out", ""))
	rec := &recorder{positional: true}

	require.NoError(t, parse(t, rec, args, nil, "--out", "a", "b"))
	assert.Equal(t, []string{`value --out=value "a"`, "arg b"}, rec.events)
}

func TestParse_ShortValueOption(t *testing.T) {
	args := MustArguments(Flag('v', ""), Arg{Kind: OptionValue, Short: 'n', Description: "count"})

	tests := []struct {
		argv   []string
		events []string
		result ParseResult
	}{
		{[]string{"-n5"}, []string{`value -n=value "5"`}, ResultOK},
		{[]string{"-n", "5"}, []string{`value -n=value "5"`}, ResultOK},
		{[]string{"-vn5"}, []string{"flag -v", `value -n=value "5"`}, ResultOK},
		{[]string{"-n"}, nil, ResultMissingValue},
	}
	for _, tc := range tests {
		rec := &recorder{}
		err := parse(t, rec, args, nil, tc.argv...)
		assert.Equal(t, tc.events, rec.events, "argv %v", tc.argv)
		assert.Equal(t, tc.result, Result(err), "argv %v", tc.argv)
	}
}

// =============================================================================
// Positional Tests
// =============================================================================

func TestParse_DoubleDash(t *testing.T) {
	args, cmds := buildTree()
	rec := &recorder{positional: true}

	require.NoError(t, parse(t, rec, args, cmds, "-a", "--", "-b", "build", "", "--"))
	assert.Equal(t, []string{"flag -a", "arg -b", "arg build", "arg ", "arg --"}, rec.events)
}

func TestParse_PositionalWithoutCommands(t *testing.T) {
	rec := &recorder{positional: true}
	require.NoError(t, parse(t, rec, MustArguments(flagA), nil, "x", "-a", "y"))
	assert.Equal(t, []string{"arg x", "flag -a", "arg y"}, rec.events)
}

func TestParse_DoubleDashHandlerError(t *testing.T) {
	rec := &recorder{positional: true, failOn: "arg two", failWith: ErrInvalidValue}
	err := parse(t, rec, nil, nil, "--", "one", "two", "three")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Index)
	assert.Equal(t, "two", pe.Token)
	assert.Equal(t, ResultInvalidValue, Result(err))
}

// =============================================================================
// Handler Error Tests
// =============================================================================

var errCustom = errors.New("custom failure")

func TestParse_HandlerErrorStops(t *testing.T) {
	args, cmds := buildTree()
	rec := &recorder{failOn: "cmd build", failWith: errCustom}

	err := parse(t, rec, args, cmds, "-a", "build", "exe")
	assert.ErrorIs(t, err, errCustom)
	assert.Equal(t, ResultErr, Result(err))
	assert.Equal(t, []string{"flag -a", "cmd build"}, rec.events)
}

func TestParse_HandlerSentinelWrapped(t *testing.T) {
	args := MustArguments(Value("level", ""))
	h := HandlerFuncs{
		OptionValue: func(_ Arg, v string) error {
			return fmt.Errorf("level %q: %w", v, ErrInvalidValue)
		},
	}
	err := parse(t, h, args, nil, "--level=loud")
	assert.Equal(t, ResultInvalidValue, Result(err))
	assert.Contains(t, err.Error(), `"--level=loud"`)
}

func TestParse_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := NewParser(rec, MustArguments(flagA), nil, quiet()).Parse(ctx, []string{"-a"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.events)
}

func TestHandlerFuncs_Defaults(t *testing.T) {
	var h HandlerFuncs
	assert.ErrorIs(t, h.ParseArgument("x"), ErrUnknown)
	assert.NoError(t, h.ParseOptionFlag(flagA))
	assert.NoError(t, h.ParseOptionValue(Value("x", ""), "1"))
	assert.NoError(t, h.ParseCommand(NewSubcommand("x", nil, nil)))
}

func TestProcessArgs(t *testing.T) {
	args, cmds := buildTree()
	var cmd string
	err := ProcessArgs(context.Background(), []string{"build", "lib"}, HandlerFuncs{
		Command: func(c *Subcommand) error {
			cmd = c.Name
			return nil
		},
	}, args, cmds)
	require.NoError(t, err)
	assert.Equal(t, "lib", cmd)
}

func TestNewParser_NilHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { NewParser(nil, nil, nil) })
}

// =============================================================================
// Result Tests
// =============================================================================

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want ParseResult
		str  string
	}{
		{nil, ResultOK, "OK"},
		{ErrGeneric, ResultErr, "ERR"},
		{errCustom, ResultErr, "ERR"},
		{ErrEmptyOption, ResultEmptyOption, "ERR EMPTY OPTION"},
		{&ParseError{Err: ErrUnknown}, ResultUnknown, "ERR UNKNOWN"},
		{fmt.Errorf("x: %w", ErrInvalidValue), ResultInvalidValue, "ERR INVALID VALUE"},
		{ErrMissingValue, ResultMissingValue, "ERR MISSING VALUE"},
	}
	for _, tc := range tests {
		got := Result(tc.err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.str, got.String())
	}
}

func TestParse_Metrics(t *testing.T) {
	ok := parseTotal.WithLabelValues("ok")
	unknown := parseTotal.WithLabelValues("unknown")
	okBefore, unknownBefore := testutil.ToFloat64(ok), testutil.ToFloat64(unknown)

	args, cmds := buildTree()
	_ = parse(t, &recorder{}, args, cmds, "-a")
	_ = parse(t, &recorder{}, args, cmds, "-z")

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(unknown))
}
