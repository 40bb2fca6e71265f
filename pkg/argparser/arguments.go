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
	"fmt"
	"slices"
)

// Arguments is an immutable option set.
//
// # Description
//
// Options are indexed by short name and by long name. An option declared
// with both names is found under either. A nil *Arguments is a valid empty
// set.
//
// # Thread Safety
//
// Safe for concurrent reads. There are no mutating methods.
type Arguments struct {
	args  []Arg
	short map[byte]int
	long  map[string]int
}

// NewArguments builds an option set.
//
// # Outputs
//
//   - *Arguments: The set, nil on error.
//   - error: ErrDuplicateArg (wrapped) if two options share a short or long
//     name or an option has no name.
func NewArguments(args ...Arg) (*Arguments, error) {
	set := &Arguments{
		args:  slices.Clone(args),
		short: make(map[byte]int, len(args)),
		long:  make(map[string]int, len(args)),
	}

	for i, a := range set.args {
		if !a.HasShort() && !a.HasLong() {
			return nil, fmt.Errorf("%w: option %d has no name", ErrDuplicateArg, i)
		}
		if a.HasShort() {
			if _, dup := set.short[a.Short]; dup {
				return nil, fmt.Errorf("%w: -%c", ErrDuplicateArg, a.Short)
			}
			set.short[a.Short] = i
		}
		if a.HasLong() {
			if _, dup := set.long[a.Long]; dup {
				return nil, fmt.Errorf("%w: --%s", ErrDuplicateArg, a.Long)
			}
			set.long[a.Long] = i
		}
	}
	return set, nil
}

// MustArguments is like NewArguments but panics on error.
func MustArguments(args ...Arg) *Arguments {
	set, err := NewArguments(args...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of options.
func (s *Arguments) Len() int {
	if s == nil {
		return 0
	}
	return len(s.args)
}

// CountShort returns the number of options with a short name.
func (s *Arguments) CountShort() int {
	if s == nil {
		return 0
	}
	return len(s.short)
}

// CountLong returns the number of options with a long name.
func (s *Arguments) CountLong() int {
	if s == nil {
		return 0
	}
	return len(s.long)
}

// FindShort looks up an option by short name.
func (s *Arguments) FindShort(name byte) (Arg, bool) {
	if s == nil {
		return Arg{}, false
	}
	i, ok := s.short[name]
	if !ok {
		return Arg{}, false
	}
	return s.args[i], true
}

// FindLong looks up an option by long name.
func (s *Arguments) FindLong(name string) (Arg, bool) {
	if s == nil {
		return Arg{}, false
	}
	i, ok := s.long[name]
	if !ok {
		return Arg{}, false
	}
	return s.args[i], true
}

// Args returns a copy of the options in declaration order.
func (s *Arguments) Args() []Arg {
	if s == nil {
		return nil
	}
	return slices.Clone(s.args)
}
