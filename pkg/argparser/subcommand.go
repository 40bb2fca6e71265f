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

// Subcommand is a named command with its own options and nested commands.
//
// # Description
//
// Once the parser matches a Subcommand, only its Args and Commands are
// active for the remaining tokens. Nil Args and Commands are empty sets;
// a Subcommand without Commands receives positional arguments.
type Subcommand struct {
	Name        string
	Description string
	Args        *Arguments
	Commands    *Commands
}

// NewSubcommand declares a subcommand. Panics if name is empty.
func NewSubcommand(name string, args *Arguments, cmds *Commands) *Subcommand {
	if name == "" {
		panic("argparser: NewSubcommand requires a name")
	}
	return &Subcommand{Name: name, Args: args, Commands: cmds}
}

// Describe sets the help text and returns the subcommand.
func (c *Subcommand) Describe(desc string) *Subcommand {
	c.Description = desc
	return c
}

// Is reports whether the subcommand has the given name.
func (c *Subcommand) Is(name string) bool {
	return c != nil && c.Name == name
}

// Commands is an immutable set of subcommands with unique names. A nil
// *Commands is a valid empty set.
type Commands struct {
	cmds  []*Subcommand
	index map[string]int
}

// NewCommands builds a command set.
//
// # Outputs
//
//   - *Commands: The set, nil on error.
//   - error: ErrDuplicateCommand (wrapped) if two commands share a name.
//
// NewCommands panics on a nil subcommand.
func NewCommands(cmds ...*Subcommand) (*Commands, error) {
	set := &Commands{
		cmds:  slices.Clone(cmds),
		index: make(map[string]int, len(cmds)),
	}
	for i, c := range set.cmds {
		if c == nil {
			panic(fmt.Sprintf("argparser: NewCommands given a nil subcommand at %d", i))
		}
		if _, dup := set.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCommand, c.Name)
		}
		set.index[c.Name] = i
	}
	return set, nil
}

// MustCommands is like NewCommands but panics on error.
func MustCommands(cmds ...*Subcommand) *Commands {
	set, err := NewCommands(cmds...)
	if err != nil {
		panic(err)
	}
	return set
}

// Find looks up a command by exact name.
func (s *Commands) Find(name string) (*Subcommand, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.cmds[i], true
}

// Len returns the number of commands.
func (s *Commands) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cmds)
}

// All returns the commands in declaration order.
func (s *Commands) All() []*Subcommand {
	if s == nil {
		return nil
	}
	return slices.Clone(s.cmds)
}
