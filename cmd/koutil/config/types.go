// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

// KoutilConfig is the on-disk CLI configuration.
type KoutilConfig struct {
	// Personality: full, standard, minimal, machine. Empty means detect
	// from the environment and output.
	Personality string `yaml:"personality,omitempty" validate:"omitempty,oneof=full standard minimal machine"`

	// ColorSupport: auto, 16, 256, truecolor.
	ColorSupport string `yaml:"color_support" validate:"required,oneof=auto 16 256 truecolor"`

	// Logging: console level and optional log directory
	Logging LoggingConfig `yaml:"logging"`

	// HashArray: construction options for the hasharray demo
	HashArray HashArrayConfig `yaml:"hash_array"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Dir   string `yaml:"dir,omitempty"` // e.g. ~/.koutil/logs
}

type HashArrayConfig struct {
	BucketCount   int     `yaml:"bucket_count" validate:"gte=1"`
	MaxLoadFactor float64 `yaml:"max_load_factor" validate:"gt=0"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() KoutilConfig {
	return KoutilConfig{
		ColorSupport: "auto",
		Logging: LoggingConfig{
			Level: "warn",
		},
		HashArray: HashArrayConfig{
			BucketCount:   1,
			MaxLoadFactor: 1.0,
		},
	}
}
