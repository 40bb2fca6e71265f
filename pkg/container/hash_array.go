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
	"iter"
	"math"
	"slices"
)

// =============================================================================
// Adapters and Hashers
// =============================================================================

// TaggedAdapter compares a key against the key identified by id, under tag.
//
// # Description
//
// The index never stores keys. An adapter typically looks id up in caller
// storage (a slice, a column of a MultiVector) and compares it to key. The
// tag lets one index hold several kinds of keys; an adapter must report
// false when the stored key has a different tag.
type TaggedAdapter[K, ID any, T comparable] interface {
	Equal(tag T, key K, id ID) bool
}

// TaggedAdapterFunc adapts a function to TaggedAdapter.
type TaggedAdapterFunc[K, ID any, T comparable] func(tag T, key K, id ID) bool

// Equal calls f.
func (f TaggedAdapterFunc[K, ID, T]) Equal(tag T, key K, id ID) bool { return f(tag, key, id) }

// TaggedHasher hashes a key under a tag. Equal keys under the same tag must
// hash equally.
type TaggedHasher[K any, T comparable] interface {
	Hash(tag T, key K) uint64
}

// TaggedHasherFunc adapts a function to TaggedHasher.
type TaggedHasherFunc[K any, T comparable] func(tag T, key K) uint64

// Hash calls f.
func (f TaggedHasherFunc[K, T]) Hash(tag T, key K) uint64 { return f(tag, key) }

// =============================================================================
// Options
// =============================================================================

type hashArrayConfig struct {
	buckets int
	maxLoad float64
}

// HashArrayOption configures a TaggedHashArray or HashArray.
type HashArrayOption func(*hashArrayConfig)

// WithBucketCount sets the initial number of buckets. Default: 1. Panics if
// n is not positive.
func WithBucketCount(n int) HashArrayOption {
	if n <= 0 {
		panic("container: bucket count must be positive")
	}
	return func(c *hashArrayConfig) { c.buckets = n }
}

// WithMaxLoadFactor sets the load factor above which the bucket count
// doubles. Default: 1.0. Panics if f is not positive.
func WithMaxLoadFactor(f float64) HashArrayOption {
	if !(f > 0) {
		panic("container: max load factor must be positive")
	}
	return func(c *hashArrayConfig) { c.maxLoad = f }
}

// =============================================================================
// TaggedHashArray
// =============================================================================

type hashEntry[ID any] struct {
	hash uint64
	id   ID
}

// TaggedHashArray is a separate-chaining hash index of ids.
//
// # Description
//
// Each entry is the id of a key plus the key's hash. Lookups hash the probe
// key with the hasher fixed at construction, then ask the per-call adapter
// whether each candidate id refers to an equal key. The stored hash is
// reused on rehash, so keys are never re-read after insertion.
//
// When an insert takes Len/BucketCount above MaxLoadFactor, the bucket
// count doubles.
//
// # Thread Safety
//
// Not safe for concurrent use. Concurrent read-only calls (Find, All, Len)
// are safe when nothing mutates.
//
// # Example
//
//	type kind int
//	words := []string{}
//	same := container.TaggedAdapterFunc[string, int, kind](
//	    func(_ kind, key string, id int) bool { return words[id] == key })
//	idx := container.NewTaggedHashArray[string, int, kind](
//	    container.TaggedHasherFunc[string, kind](func(_ kind, s string) uint64 {
//	        return container.StringHasher{}.Hash(s)
//	    }))
//
//	words = append(words, "go")
//	idx.TryInsert(0, "go", len(words)-1, same)
type TaggedHashArray[K, ID any, T comparable] struct {
	buckets [][]hashEntry[ID]
	size    int
	maxLoad float64
	hasher  TaggedHasher[K, T]
}

// NewTaggedHashArray creates an empty index. Panics if hasher is nil.
func NewTaggedHashArray[K, ID any, T comparable](hasher TaggedHasher[K, T], opts ...HashArrayOption) *TaggedHashArray[K, ID, T] {
	if hasher == nil {
		panic("container: NewTaggedHashArray requires a hasher")
	}
	cfg := hashArrayConfig{buckets: 1, maxLoad: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TaggedHashArray[K, ID, T]{
		buckets: make([][]hashEntry[ID], cfg.buckets),
		maxLoad: cfg.maxLoad,
		hasher:  hasher,
	}
}

// Len returns the number of ids stored.
func (h *TaggedHashArray[K, ID, T]) Len() int { return h.size }

// Empty reports whether no ids are stored.
func (h *TaggedHashArray[K, ID, T]) Empty() bool { return h.size == 0 }

// BucketCount returns the number of buckets.
func (h *TaggedHashArray[K, ID, T]) BucketCount() int { return len(h.buckets) }

// MaxLoadFactor returns the load factor that triggers a rehash.
func (h *TaggedHashArray[K, ID, T]) MaxLoadFactor() float64 { return h.maxLoad }

// LoadFactor returns Len divided by BucketCount.
func (h *TaggedHashArray[K, ID, T]) LoadFactor() float64 {
	return float64(h.size) / float64(len(h.buckets))
}

// SetMaxLoadFactor changes the rehash threshold. The next insert applies
// it. Panics if f is not positive.
func (h *TaggedHashArray[K, ID, T]) SetMaxLoadFactor(f float64) {
	if !(f > 0) {
		panic("container: max load factor must be positive")
	}
	h.maxLoad = f
}

// TryInsert stores id for key. It returns false, leaving the index
// unchanged, if an equal key is already present.
func (h *TaggedHashArray[K, ID, T]) TryInsert(tag T, key K, id ID, adapter TaggedAdapter[K, ID, T]) bool {
	hash := h.hasher.Hash(tag, key)
	b := h.bucketOf(hash)
	if h.indexIn(b, hash, tag, key, adapter) >= 0 {
		return false
	}

	h.buckets[b] = append(h.buckets[b], hashEntry[ID]{hash: hash, id: id})
	h.size++
	h.rehashIfNeeded()
	return true
}

// TrySet replaces the id stored for key. It returns false if key is absent.
func (h *TaggedHashArray[K, ID, T]) TrySet(tag T, key K, id ID, adapter TaggedAdapter[K, ID, T]) bool {
	hash := h.hasher.Hash(tag, key)
	b := h.bucketOf(hash)
	i := h.indexIn(b, hash, tag, key, adapter)
	if i < 0 {
		return false
	}
	h.buckets[b][i].id = id
	return true
}

// Erase removes key and reports whether it was present.
func (h *TaggedHashArray[K, ID, T]) Erase(tag T, key K, adapter TaggedAdapter[K, ID, T]) bool {
	hash := h.hasher.Hash(tag, key)
	b := h.bucketOf(hash)
	i := h.indexIn(b, hash, tag, key, adapter)
	if i < 0 {
		return false
	}
	h.buckets[b] = slices.Delete(h.buckets[b], i, i+1)
	h.size--
	return true
}

// Find returns the id stored for key.
func (h *TaggedHashArray[K, ID, T]) Find(tag T, key K, adapter TaggedAdapter[K, ID, T]) (ID, bool) {
	hash := h.hasher.Hash(tag, key)
	b := h.bucketOf(hash)
	if i := h.indexIn(b, hash, tag, key, adapter); i >= 0 {
		return h.buckets[b][i].id, true
	}
	var zero ID
	return zero, false
}

// Contains reports whether key is present.
func (h *TaggedHashArray[K, ID, T]) Contains(tag T, key K, adapter TaggedAdapter[K, ID, T]) bool {
	_, ok := h.Find(tag, key, adapter)
	return ok
}

// All iterates over every stored id in bucket order.
func (h *TaggedHashArray[K, ID, T]) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, bucket := range h.buckets {
			for _, e := range bucket {
				if !yield(e.id) {
					return
				}
			}
		}
	}
}

// Clear removes every id. The bucket count is kept.
func (h *TaggedHashArray[K, ID, T]) Clear() {
	for i := range h.buckets {
		clear(h.buckets[i])
		h.buckets[i] = h.buckets[i][:0]
	}
	h.size = 0
}

// Clone returns an independent copy sharing only the hasher.
func (h *TaggedHashArray[K, ID, T]) Clone() *TaggedHashArray[K, ID, T] {
	buckets := make([][]hashEntry[ID], len(h.buckets))
	for i, b := range h.buckets {
		buckets[i] = slices.Clone(b)
	}
	return &TaggedHashArray[K, ID, T]{
		buckets: buckets,
		size:    h.size,
		maxLoad: h.maxLoad,
		hasher:  h.hasher,
	}
}

// Rehash redistributes the entries over n buckets, or over the smallest
// count that keeps the load within MaxLoadFactor if n is smaller.
func (h *TaggedHashArray[K, ID, T]) Rehash(n int) {
	need := int(math.Ceil(float64(h.size) / h.maxLoad))
	h.rehash(max(n, need, 1))
}

func (h *TaggedHashArray[K, ID, T]) bucketOf(hash uint64) int {
	return int(hash % uint64(len(h.buckets)))
}

// indexIn returns the position of key in bucket b, or -1.
func (h *TaggedHashArray[K, ID, T]) indexIn(b int, hash uint64, tag T, key K, adapter TaggedAdapter[K, ID, T]) int {
	for i, e := range h.buckets[b] {
		if e.hash == hash && adapter.Equal(tag, key, e.id) {
			return i
		}
	}
	return -1
}

func (h *TaggedHashArray[K, ID, T]) rehashIfNeeded() {
	if h.LoadFactor() <= h.maxLoad {
		return
	}
	h.rehash(len(h.buckets) * 2)
}

func (h *TaggedHashArray[K, ID, T]) rehash(n int) {
	if n == len(h.buckets) {
		return
	}
	buckets := make([][]hashEntry[ID], n)
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			i := e.hash % uint64(n)
			buckets[i] = append(buckets[i], e)
		}
	}
	h.buckets = buckets
	rehashTotal.Inc()
}

// =============================================================================
// HashArray
// =============================================================================

// Adapter compares a key against the key identified by id.
type Adapter[K, ID any] interface {
	Equal(key K, id ID) bool
}

// AdapterFunc adapts a function to Adapter.
type AdapterFunc[K, ID any] func(key K, id ID) bool

// Equal calls f.
func (f AdapterFunc[K, ID]) Equal(key K, id ID) bool { return f(key, id) }

// Hasher hashes a key.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a function to Hasher.
type HasherFunc[K any] func(key K) uint64

// Hash calls f.
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

type untagged = struct{}

type untaggedAdapter[K, ID any] struct{ a Adapter[K, ID] }

func (u untaggedAdapter[K, ID]) Equal(_ untagged, key K, id ID) bool { return u.a.Equal(key, id) }

type untaggedHasher[K any] struct{ h Hasher[K] }

func (u untaggedHasher[K]) Hash(_ untagged, key K) uint64 { return u.h.Hash(key) }

// HashArray is a TaggedHashArray with a single key kind.
type HashArray[K, ID any] struct {
	inner *TaggedHashArray[K, ID, untagged]
}

// NewHashArray creates an empty index. Panics if hasher is nil.
func NewHashArray[K, ID any](hasher Hasher[K], opts ...HashArrayOption) *HashArray[K, ID] {
	if hasher == nil {
		panic("container: NewHashArray requires a hasher")
	}
	return &HashArray[K, ID]{
		inner: NewTaggedHashArray[K, ID, untagged](untaggedHasher[K]{hasher}, opts...),
	}
}

// Len returns the number of ids stored.
func (h *HashArray[K, ID]) Len() int { return h.inner.Len() }

// Empty reports whether no ids are stored.
func (h *HashArray[K, ID]) Empty() bool { return h.inner.Empty() }

// BucketCount returns the number of buckets.
func (h *HashArray[K, ID]) BucketCount() int { return h.inner.BucketCount() }

// MaxLoadFactor returns the load factor that triggers a rehash.
func (h *HashArray[K, ID]) MaxLoadFactor() float64 { return h.inner.MaxLoadFactor() }

// LoadFactor returns Len divided by BucketCount.
func (h *HashArray[K, ID]) LoadFactor() float64 { return h.inner.LoadFactor() }

// SetMaxLoadFactor changes the rehash threshold. Panics if f is not
// positive.
func (h *HashArray[K, ID]) SetMaxLoadFactor(f float64) { h.inner.SetMaxLoadFactor(f) }

// TryInsert stores id for key unless an equal key is present.
func (h *HashArray[K, ID]) TryInsert(key K, id ID, adapter Adapter[K, ID]) bool {
	return h.inner.TryInsert(untagged{}, key, id, untaggedAdapter[K, ID]{adapter})
}

// TrySet replaces the id stored for key. It returns false if key is absent.
func (h *HashArray[K, ID]) TrySet(key K, id ID, adapter Adapter[K, ID]) bool {
	return h.inner.TrySet(untagged{}, key, id, untaggedAdapter[K, ID]{adapter})
}

// Erase removes key and reports whether it was present.
func (h *HashArray[K, ID]) Erase(key K, adapter Adapter[K, ID]) bool {
	return h.inner.Erase(untagged{}, key, untaggedAdapter[K, ID]{adapter})
}

// Find returns the id stored for key.
func (h *HashArray[K, ID]) Find(key K, adapter Adapter[K, ID]) (ID, bool) {
	return h.inner.Find(untagged{}, key, untaggedAdapter[K, ID]{adapter})
}

// Contains reports whether key is present.
func (h *HashArray[K, ID]) Contains(key K, adapter Adapter[K, ID]) bool {
	return h.inner.Contains(untagged{}, key, untaggedAdapter[K, ID]{adapter})
}

// All iterates over every stored id.
func (h *HashArray[K, ID]) All() iter.Seq[ID] { return h.inner.All() }

// Clear removes every id. The bucket count is kept.
func (h *HashArray[K, ID]) Clear() { h.inner.Clear() }

// Clone returns an independent copy.
func (h *HashArray[K, ID]) Clone() *HashArray[K, ID] {
	return &HashArray[K, ID]{inner: h.inner.Clone()}
}

// Rehash redistributes the entries over at least n buckets.
func (h *HashArray[K, ID]) Rehash(n int) { h.inner.Rehash(n) }
