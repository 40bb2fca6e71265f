// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package container provides generic containers used across koutil.
//
//   - TaggedHashArray / HashArray: a hash index over keys stored elsewhere.
//     The index keeps only (hash, id) pairs; the caller owns the keys and
//     resolves an id back to its key through an adapter.
//   - MultiVector2 / MultiVector3: struct-of-arrays vectors that keep one
//     slice per column at equal length.
//   - SortedMap: an immutable key-sorted lookup table with binary search.
//
// None of the containers are safe for concurrent mutation.
package container
