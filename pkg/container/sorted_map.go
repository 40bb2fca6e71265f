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
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicateKey is returned when a SortedMap would hold a key twice.
var ErrDuplicateKey = errors.New("duplicate key")

// Pair is one entry of a SortedMap.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// P is shorthand for building a Pair literal.
func P[K cmp.Ordered, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// SortedMap is an immutable lookup table kept sorted by key.
//
// # Description
//
// Lookups are binary searches over a single slice, which makes SortedMap a
// good fit for small, fixed tables built once at init time. Extend and
// Merge return new maps and leave the receiver unchanged.
//
// # Thread Safety
//
// Safe for concurrent use. There are no mutating methods.
//
// # Example
//
//	levels := container.MustSortedMap(
//	    container.P("debug", slog.LevelDebug),
//	    container.P("info", slog.LevelInfo),
//	)
//	lvl := levels.GetOr("warn", slog.LevelWarn)
type SortedMap[K cmp.Ordered, V any] struct {
	pairs []Pair[K, V]
}

// NewSortedMap builds a map from pairs in any order.
//
// # Outputs
//
//   - SortedMap: The map, empty on error.
//   - error: ErrDuplicateKey (wrapped) if a key repeats.
func NewSortedMap[K cmp.Ordered, V any](pairs ...Pair[K, V]) (SortedMap[K, V], error) {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b Pair[K, V]) int { return cmp.Compare(a.Key, b.Key) })

	for i := 1; i < len(sorted); i++ {
		if cmp.Compare(sorted[i-1].Key, sorted[i].Key) == 0 {
			return SortedMap[K, V]{}, fmt.Errorf("%w: %v", ErrDuplicateKey, sorted[i].Key)
		}
	}
	return SortedMap[K, V]{pairs: sorted}, nil
}

// MustSortedMap is like NewSortedMap but panics on error. It is meant for
// package-level tables.
func MustSortedMap[K cmp.Ordered, V any](pairs ...Pair[K, V]) SortedMap[K, V] {
	m, err := NewSortedMap(pairs...)
	if err != nil {
		panic(err)
	}
	return m
}

// SortedMapFrom copies a Go map. It cannot fail since map keys are unique.
func SortedMapFrom[K cmp.Ordered, V any](src map[K]V) SortedMap[K, V] {
	pairs := make([]Pair[K, V], 0, len(src))
	for k, v := range src {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(pairs, func(a, b Pair[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return SortedMap[K, V]{pairs: pairs}
}

// Len returns the number of entries.
func (m SortedMap[K, V]) Len() int { return len(m.pairs) }

// Find returns the index of key. ok is false if key is absent.
func (m SortedMap[K, V]) Find(key K) (index int, ok bool) {
	return slices.BinarySearchFunc(m.pairs, key, func(p Pair[K, V], k K) int {
		return cmp.Compare(p.Key, k)
	})
}

// Get returns the value for key.
func (m SortedMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.Find(key); ok {
		return m.pairs[i].Value, true
	}
	var zero V
	return zero, false
}

// GetOr returns the value for key, or def if key is absent.
func (m SortedMap[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// ValueAt returns the value at a sorted index from Find. Panics if index is
// out of range.
func (m SortedMap[K, V]) ValueAt(index int) V { return m.pairs[index].Value }

// PairOf returns the entry for key.
func (m SortedMap[K, V]) PairOf(key K) (Pair[K, V], bool) {
	if i, ok := m.Find(key); ok {
		return m.pairs[i], true
	}
	return Pair[K, V]{}, false
}

// Contains reports whether key is present.
func (m SortedMap[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Extend returns a new map with the extra pairs added.
//
// # Outputs
//
//   - SortedMap: The combined map.
//   - error: ErrDuplicateKey (wrapped) if a new key is already present or
//     repeats within pairs.
func (m SortedMap[K, V]) Extend(pairs ...Pair[K, V]) (SortedMap[K, V], error) {
	return NewSortedMap(slices.Concat(m.pairs, pairs)...)
}

// Merge returns a new map holding the entries of both maps. Shared keys are
// an error.
func (m SortedMap[K, V]) Merge(other SortedMap[K, V]) (SortedMap[K, V], error) {
	return m.Extend(other.pairs...)
}

// All iterates over the entries in key order.
func (m SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (m SortedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in key order.
func (m SortedMap[K, V]) Pairs() []Pair[K, V] { return slices.Clone(m.pairs) }

// HasValue reports whether any entry of m holds v.
func HasValue[K cmp.Ordered, V comparable](m SortedMap[K, V], v V) bool {
	for _, p := range m.pairs {
		if p.Value == v {
			return true
		}
	}
	return false
}

// LacksValue reports whether no entry of m holds v.
func LacksValue[K cmp.Ordered, V comparable](m SortedMap[K, V], v V) bool {
	return !HasValue(m, v)
}
