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
	"strings"
)

// ArgKind distinguishes options that stand alone from options that take a
// value.
type ArgKind int

const (
	// OptionFlag is a boolean switch such as -v or --verbose.
	OptionFlag ArgKind = iota

	// OptionValue carries a value, given as --name=value or --name value.
	OptionValue
)

// String returns the kind name.
func (k ArgKind) String() string {
	switch k {
	case OptionFlag:
		return "flag"
	case OptionValue:
		return "value"
	default:
		return "unknown"
	}
}

// Arg declares one command-line option.
//
// # Description
//
// An Arg has a short name, a long name, or both. A zero Short means no short
// name and an empty Long means no long name. Use the constructors, which
// reject nameless options.
//
// # Thread Safety
//
// Arg is an immutable comparable value.
type Arg struct {
	Kind        ArgKind
	Short       byte
	Long        string
	Description string
}

// Flag declares a flag with only a short name. Panics if short is zero.
func Flag(short byte, desc string) Arg {
	if short == 0 {
		panic("argparser: Flag requires a non-zero short name")
	}
	return Arg{Kind: OptionFlag, Short: short, Description: desc}
}

// LongFlag declares a flag with only a long name. Panics if long is empty.
func LongFlag(long, desc string) Arg {
	if long == "" {
		panic("argparser: LongFlag requires a long name")
	}
	return Arg{Kind: OptionFlag, Long: long, Description: desc}
}

// ShortLongFlag declares a flag reachable by both names. Panics if either
// name is missing.
func ShortLongFlag(short byte, long, desc string) Arg {
	if short == 0 || long == "" {
		panic("argparser: ShortLongFlag requires both a short and a long name")
	}
	return Arg{Kind: OptionFlag, Short: short, Long: long, Description: desc}
}

// Value declares a value option with a long name. Panics if long is empty.
func Value(long, desc string) Arg {
	if long == "" {
		panic("argparser: Value requires a long name")
	}
	return Arg{Kind: OptionValue, Long: long, Description: desc}
}

// Is reports whether the arg has the given short name.
func (a Arg) Is(short byte) bool {
	return a.Short != 0 && a.Short == short
}

// IsLong reports whether the arg has the given long name.
func (a Arg) IsLong(long string) bool {
	return a.Long != "" && a.Long == long
}

// Equal reports whether both args declare the same option.
func (a Arg) Equal(other Arg) bool {
	return a == other
}

// HasShort reports whether the arg has a short name.
func (a Arg) HasShort() bool { return a.Short != 0 }

// HasLong reports whether the arg has a long name.
func (a Arg) HasLong() bool { return a.Long != "" }

// String returns the option as it is written on the command line, using
// the long form when available: "--all", "--name=value", "-a".
func (a Arg) String() string {
	var b strings.Builder
	switch {
	case a.HasLong():
		b.WriteString("--")
		b.WriteString(a.Long)
	case a.HasShort():
		b.WriteByte('-')
		b.WriteByte(a.Short)
	}
	if a.Kind == OptionValue {
		b.WriteString("=value")
	}
	return b.String()
}
