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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Arg Tests
// =============================================================================

func TestArgConstructors(t *testing.T) {
	f := Flag('a', "all")
	assert.Equal(t, OptionFlag, f.Kind)
	assert.True(t, f.Is('a'))
	assert.False(t, f.IsLong(""))

	l := LongFlag("verbose", "")
	assert.True(t, l.IsLong("verbose"))
	assert.False(t, l.Is(0))

	sl := ShortLongFlag('q', "quiet", "")
	assert.True(t, sl.Is('q'))
	assert.True(t, sl.IsLong("quiet"))

	v := Value("out", "")
	assert.Equal(t, OptionValue, v.Kind)
	assert.Equal(t, "--out=value", v.String())
	assert.Equal(t, "value", v.Kind.String())
}

func TestArgConstructors_PanicOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { Flag(0, "") })
	assert.Panics(t, func() { LongFlag("", "") })
	assert.Panics(t, func() { ShortLongFlag('a', "", "") })
	assert.Panics(t, func() { ShortLongFlag(0, "all", "") })
	assert.Panics(t, func() { Value("", "") })
}

func TestArg_Equal(t *testing.T) {
	assert.True(t, Flag('a', "x").Equal(Flag('a', "x")))
	assert.False(t, Flag('a', "x").Equal(Flag('a', "y")))
	assert.False(t, LongFlag("out", "").Equal(Value("out", "")))
}

// =============================================================================
// Arguments Tests
// =============================================================================

func TestNewArguments_Index(t *testing.T) {
	args, err := NewArguments(
		Flag('a', ""),
		LongFlag("verbose", ""),
		ShortLongFlag('q', "quiet", ""),
		Value("out", ""),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, args.Len())
	assert.Equal(t, 2, args.CountShort())
	assert.Equal(t, 3, args.CountLong())

	q, ok := args.FindShort('q')
	require.True(t, ok)
	byLong, ok := args.FindLong("quiet")
	require.True(t, ok)
	assert.Equal(t, q, byLong)

	_, ok = args.FindShort('z')
	assert.False(t, ok)
	_, ok = args.FindLong("a")
	assert.False(t, ok)
}

func TestNewArguments_Duplicates(t *testing.T) {
	tests := []struct {
		name string
		args []Arg
	}{
		{"short", []Arg{Flag('a', "1"), Flag('a', "2")}},
		{"long", []Arg{LongFlag("all", ""), Value("all", "")}},
		{"mixed", []Arg{ShortLongFlag('a', "all", ""), LongFlag("all", "")}},
		{"nameless", []Arg{{Kind: OptionFlag}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewArguments(tc.args...)
			assert.True(t, errors.Is(err, ErrDuplicateArg))
		})
	}
	assert.Panics(t, func() { MustArguments(Flag('a', ""), Flag('a', "")) })
}

func TestArguments_ArgsIsCopy(t *testing.T) {
	args := MustArguments(Flag('a', ""), Flag('b', ""))
	got := args.Args()
	got[0] = Flag('z', "")

	_, ok := args.FindShort('a')
	assert.True(t, ok)
	assert.Equal(t, byte('a'), args.Args()[0].Short)
}

func TestArguments_NilIsEmpty(t *testing.T) {
	var args *Arguments
	assert.Equal(t, 0, args.Len())
	assert.Equal(t, 0, args.CountShort())
	assert.Equal(t, 0, args.CountLong())
	assert.Nil(t, args.Args())
	_, ok := args.FindLong("x")
	assert.False(t, ok)
}

// =============================================================================
// Commands Tests
// =============================================================================

func TestNewCommands(t *testing.T) {
	build := NewSubcommand("build", nil, nil)
	test := NewSubcommand("test", nil, nil)
	cmds, err := NewCommands(build, test)
	require.NoError(t, err)

	assert.Equal(t, 2, cmds.Len())
	got, ok := cmds.Find("test")
	require.True(t, ok)
	assert.Same(t, test, got)
	assert.True(t, got.Is("test"))

	_, ok = cmds.Find("tes")
	assert.False(t, ok)
	assert.Equal(t, []*Subcommand{build, test}, cmds.All())
}

func TestNewCommands_SingleCommandExactMatch(t *testing.T) {
	cmds := MustCommands(NewSubcommand("build", nil, nil))
	_, ok := cmds.Find("other")
	assert.False(t, ok)
}

func TestNewCommands_Duplicate(t *testing.T) {
	_, err := NewCommands(NewSubcommand("x", nil, nil), NewSubcommand("x", nil, nil))
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Panics(t, func() { NewSubcommand("", nil, nil) })
}

func TestNewCommands_NilSubcommandPanics(t *testing.T) {
	assert.PanicsWithValue(t, "argparser: NewCommands given a nil subcommand at 1", func() {
		_, _ = NewCommands(NewSubcommand("x", nil, nil), nil)
	})
}

// =============================================================================
// Help Tests
// =============================================================================

func TestWriteHelp(t *testing.T) {
	args := MustArguments(
		ShortLongFlag('a', "all", "include hidden entries"),
		Value("out", "output path"),
		Flag('v', ""),
	)
	build := NewSubcommand("build", nil, nil).Describe("compile the project")
	cmds := MustCommands(build, NewSubcommand("clean", nil, nil))

	var buf bytes.Buffer
	require.NoError(t, NewParser(HandlerFuncs{}, args, cmds).WriteHelp(&buf, "koutil"))

	want := "usage: koutil [options] <command>\n" +
		"\n" +
		"Options:\n" +
		"  -a, --all         include hidden entries\n" +
		"      --out=value   output path\n" +
		"  -v\n" +
		"\n" +
		"Commands:\n" +
		"  build   compile the project\n" +
		"  clean\n"
	assert.Equal(t, want, buf.String())
}

func TestSubcommand_WriteHelp(t *testing.T) {
	exe := NewSubcommand("exe", MustArguments(LongFlag("release", "optimize")), nil)

	var buf bytes.Buffer
	require.NoError(t, exe.WriteHelp(&buf, "koutil build exe"))
	assert.Equal(t, "usage: koutil build exe [options]\n\nOptions:\n      --release   optimize\n", buf.String())
}
