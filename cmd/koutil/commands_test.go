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
	"strings"
	"testing"

	"github.com/AleutianAI/koutil/pkg/argparser"
	"github.com/AleutianAI/koutil/pkg/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// argparse
// =============================================================================

func TestArgparse(t *testing.T) {
	tests := []struct {
		name       string
		argv       []string
		wantCode   int
		wantResult string
		wantState  string
	}{
		{
			name:       "no arguments",
			wantResult: "OK: OK\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "clustered flags and command path",
			argv:       []string{"-ab", "build", "exe"},
			wantResult: "OK: OK\n",
			wantState:  "a=true\nb=true\nrelease=false\nout=\"\"\ncmd=BUILD_EXE\n",
		},
		{
			name:       "build options",
			argv:       []string{"-b", "build", "--release", "--out=bin/app", "lib"},
			wantResult: "OK: OK\n",
			wantState:  "a=false\nb=true\nrelease=true\nout=\"bin/app\"\ncmd=BUILD_LIB\n",
		},
		{
			name:       "value in next token",
			argv:       []string{"build", "--out", "dist", "exe"},
			wantResult: "OK: OK\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"dist\"\ncmd=BUILD_EXE\n",
		},
		{
			name:       "unknown flag",
			argv:       []string{"-x"},
			wantCode:   2,
			wantResult: "ERROR: ERR UNKNOWN\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "unknown command",
			argv:       []string{"-a", "test"},
			wantCode:   2,
			wantResult: "ERROR: ERR UNKNOWN\n",
			wantState:  "a=true\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "root flags are gone after the command switch",
			argv:       []string{"build", "-a"},
			wantCode:   2,
			wantResult: "ERROR: ERR UNKNOWN\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "empty option",
			argv:       []string{"-"},
			wantCode:   2,
			wantResult: "ERROR: ERR EMPTY OPTION\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "missing value",
			argv:       []string{"build", "--out"},
			wantCode:   2,
			wantResult: "ERROR: ERR MISSING VALUE\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "flag given a value",
			argv:       []string{"build", "--release=yes"},
			wantCode:   2,
			wantResult: "ERROR: ERR INVALID VALUE\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "empty value rejected by handler",
			argv:       []string{"build", "--out="},
			wantCode:   2,
			wantResult: "ERROR: ERR INVALID VALUE\n",
			wantState:  "a=false\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
		{
			name:       "positional after double dash",
			argv:       []string{"-a", "--", "file"},
			wantCode:   2,
			wantResult: "ERROR: ERR UNKNOWN\n",
			wantState:  "a=true\nb=false\nrelease=false\nout=\"\"\ncmd=NONE\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--personality", "machine", "argparse", "--"}, tt.argv...)
			res := runCLI(t, args...)

			assert.Equal(t, tt.wantCode, res.code)
			if tt.wantCode == 0 {
				assert.Equal(t, tt.wantResult+tt.wantState, res.stdout)
				assert.Empty(t, res.stderr)
			} else {
				assert.Equal(t, tt.wantState, res.stdout)
				assert.Equal(t, tt.wantResult, res.stderr)
			}
		})
	}
}

func TestArgparse_HelpTree(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "argparse", "--help-tree")
	require.Equal(t, 0, res.code, res.stderr)

	want := `usage: koutil argparse -- [options] <command>

Options:
  -a   set a
  -b   set b

Commands:
  build   compile the project

usage: koutil argparse -- build [options] <command>

Options:
  -r, --release     optimized build
      --out=value   output path

Commands:
  exe   build an executable
  lib   build a library

usage: koutil argparse -- build exe

usage: koutil argparse -- build lib
`
	assert.Equal(t, want, res.stdout)
}

func TestDemoHandler_IgnoresUnrelatedNames(t *testing.T) {
	var state demoState
	h := demoHandler(&state)

	require.NoError(t, h.ParseOptionFlag(argparser.LongFlag("other", "")))
	require.NoError(t, h.ParseCommand(argparser.NewSubcommand("build", nil, nil)))
	assert.Equal(t, demoState{}, state)
	assert.ErrorIs(t, h.ParseArgument("x"), argparser.ErrUnknown)
}

// =============================================================================
// hasharray
// =============================================================================

func TestRunHashArray(t *testing.T) {
	tests := []struct {
		count   int
		want    hashArrayReport
		buckets int
	}{
		{count: 0, want: hashArrayReport{Buckets: 1}},
		{count: 10, want: hashArrayReport{Inserted: 20, Numbers: 10, Chars: 10, Buckets: 32, LoadFactor: 20.0 / 32, StoredTotal: 20}},
		{count: 1000, want: hashArrayReport{Inserted: 177, Numbers: 50, Chars: 127, Buckets: 256, LoadFactor: 177.0 / 256, StoredTotal: 177}},
	}
	for _, tt := range tests {
		got := runHashArray(tt.count)
		assert.Equal(t, tt.want, got, "count=%d", tt.count)
	}
}

func TestRunHashArray_Options(t *testing.T) {
	got := runHashArray(1000, container.WithBucketCount(512), container.WithMaxLoadFactor(4))
	assert.Equal(t, 512, got.Buckets)
	assert.Equal(t, 177, got.StoredTotal)
}

func TestKeyStore_TagMismatch(t *testing.T) {
	store := &keyStore{}
	id := store.insert(tagNumber, demoKey{number: 7})

	assert.True(t, store.Equal(tagNumber, demoKey{number: 7}, id))
	assert.False(t, store.Equal(tagNumber, demoKey{number: 8}, id))
	assert.False(t, store.Equal(tagChar, demoKey{char: 7}, id))
}

func TestHashArrayCmd_Output(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "hasharray")
	require.Equal(t, 0, res.code, res.stderr)

	want := "Inserting 1000 keys...\n" +
		"numbers=50\n" +
		"chars=127\n" +
		"indexed=177\n" +
		"buckets=256\n" +
		"load_factor=0.691\n"
	assert.Equal(t, want, res.stdout)
}

func TestHashArrayCmd_NegativeCount(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "hasharray", "--count", "-1")
	assert.Equal(t, 1, res.code)
}

// =============================================================================
// colors and styles
// =============================================================================

func TestColorsCmd_Machine(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "colors", "--hex", "#abc,nothex", "--hue-step", "180")
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	assert.Equal(t, "rgb(55, 145, 127)\trgb(55,145,127)", lines[0])
	assert.Equal(t, "#37917f\trgb(55,145,127)", lines[2])
	assert.Equal(t, "#F00\trgb(255,0,0)", lines[3])
	assert.Equal(t, "#abc\trgb(170,187,204)", lines[4])
	assert.Equal(t, "black\tid(30)", lines[5])
	assert.Equal(t, "bright white\tid(97)", lines[20])
	assert.Len(t, lines, 23, "4 base + 1 extra + 16 named + 2 ramp")
	assert.Contains(t, res.stderr, `WARN: skipping "nothex"`)
}

func TestColorsCmd_BadHueStep(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "colors", "--hue-step", "0")
	assert.Equal(t, 1, res.code)
}

func TestColorsCmd_DegradesSwatches(t *testing.T) {
	res := runCLI(t, "--personality", "standard", "--color", "16", "colors")
	require.Equal(t, 0, res.code, res.stderr)

	assert.NotContains(t, res.stdout, "48;2;", "16-color output must not contain truecolor backgrounds")
	assert.Contains(t, res.stdout, "\x1b[41m    \x1b[0m red\n")
}

func TestStylesCmd_Machine(t *testing.T) {
	res := runCLI(t, "--personality", "machine", "styles")
	require.Equal(t, 0, res.code, res.stderr)

	want := "Hello world!!!\n" +
		"- bold\n- dim\n- italic\n- underline\n- blink\n- inverse\n- hidden\n- strikethrough\n" +
		"- bold+underline\n" +
		"- bold+italic+strikethrough\n" +
		"- dim+inverse\n" +
		"- underline\n" +
		"- underline\n"
	assert.Equal(t, want, res.stdout)
}

func TestStylesCmd_Styled(t *testing.T) {
	res := runCLI(t, "--personality", "full", "styles")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "Hello \x1b[22;1;23;4;25;27;28;29mworld\x1b[0m!!!\n")
}
