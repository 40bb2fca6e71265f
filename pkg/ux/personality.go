// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// PersonalityLevel defines the verbosity and richness of CLI output
type PersonalityLevel string

const (
	// PersonalityFull enables all visual flourishes, tips, and rich formatting
	PersonalityFull PersonalityLevel = "full"

	// PersonalityStandard enables colors, icons, and boxes but no tips
	PersonalityStandard PersonalityLevel = "standard"

	// PersonalityMinimal uses icons and basic formatting only
	PersonalityMinimal PersonalityLevel = "minimal"

	// PersonalityMachine outputs plain text suitable for scripting and parsing
	PersonalityMachine PersonalityLevel = "machine"
)

// EnvPersonality overrides the detected personality level.
const EnvPersonality = "KOUTIL_PERSONALITY"

// Personality holds the current UX personality configuration
type Personality struct {
	// Level controls overall verbosity (full, standard, minimal, machine)
	Level PersonalityLevel

	// ShowTips enables tip lines in full mode
	ShowTips bool
}

var (
	currentPersonality = DefaultPersonality()
	personalityMu      sync.RWMutex
)

// GetPersonality returns the current personality settings
func GetPersonality() Personality {
	personalityMu.RLock()
	defer personalityMu.RUnlock()
	return currentPersonality
}

// SetPersonality updates the current personality settings
func SetPersonality(p Personality) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality = p
}

// SetPersonalityLevel updates just the personality level
func SetPersonalityLevel(level PersonalityLevel) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality.Level = level
}

// ParsePersonalityLevel converts a string to PersonalityLevel. Unknown
// values map to PersonalityStandard.
func ParsePersonalityLevel(s string) PersonalityLevel {
	switch strings.ToLower(s) {
	case "full", "f":
		return PersonalityFull
	case "standard", "std", "s":
		return PersonalityStandard
	case "minimal", "min", "m":
		return PersonalityMinimal
	case "machine", "quiet", "q":
		return PersonalityMachine
	default:
		return PersonalityStandard
	}
}

// DetectPersonality picks a level for output written to out.
//
// # Description
//
// KOUTIL_PERSONALITY wins when set. Otherwise NO_COLOR (any value) or a
// non-terminal out selects PersonalityMachine, and an interactive terminal
// gets PersonalityFull.
//
// # Inputs
//
//   - out: The file output will be written to, usually os.Stdout.
//
// # Outputs
//
//   - PersonalityLevel: The detected level.
func DetectPersonality(out *os.File) PersonalityLevel {
	return detectPersonality(os.LookupEnv, isTerminal(out))
}

func detectPersonality(lookupEnv func(string) (string, bool), tty bool) PersonalityLevel {
	if envLevel, ok := lookupEnv(EnvPersonality); ok && envLevel != "" {
		return ParsePersonalityLevel(envLevel)
	}
	if _, noColor := lookupEnv("NO_COLOR"); noColor {
		return PersonalityMachine
	}
	if !tty {
		return PersonalityMachine
	}
	return PersonalityFull
}

// isTerminal checks if f is an interactive terminal
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether prompts and screen takeovers may be used on
// in and out: the personality is not machine and both are terminals.
func IsInteractive(in io.Reader, out io.Writer) bool {
	if GetPersonality().Level == PersonalityMachine {
		return false
	}
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	return ok && isTerminal(inFile) && isTerminal(outFile)
}

// DefaultPersonality returns the default personality settings
func DefaultPersonality() Personality {
	return Personality{
		Level:    PersonalityFull,
		ShowTips: true,
	}
}
