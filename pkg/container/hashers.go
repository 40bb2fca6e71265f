// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package container

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// StringHasher hashes strings with xxhash.
type StringHasher struct{}

// Hash returns the xxhash64 of s.
func (StringHasher) Hash(s string) uint64 { return xxhash.Sum64String(s) }

// BytesHasher hashes byte slices with xxhash.
type BytesHasher struct{}

// Hash returns the xxhash64 of b.
func (BytesHasher) Hash(b []byte) uint64 { return xxhash.Sum64(b) }

// Uint64Hasher hashes integers through xxhash of their little-endian bytes.
type Uint64Hasher struct{}

// Hash returns the xxhash64 of v.
func (Uint64Hasher) Hash(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// HashUint64s combines several integers into one xxhash64. It is meant for
// composite keys and for folding a tag into a key hash.
func HashUint64s(vals ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

var (
	_ Hasher[string] = StringHasher{}
	_ Hasher[[]byte] = BytesHasher{}
	_ Hasher[uint64] = Uint64Hasher{}
)
