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
	"slices"
)

// Row2 is one row of a MultiVector2.
type Row2[A, B any] struct {
	V0 A
	V1 B
}

// Ref2 points at the cells of one row of a MultiVector2. The pointers are
// invalidated by any call that changes the length or capacity.
type Ref2[A, B any] struct {
	V0 *A
	V1 *B
}

// MultiVector2 is a two-column struct-of-arrays vector.
//
// # Description
//
// Each column is stored in its own slice so a single column can be scanned
// without touching the other. Every method keeps the columns at equal
// length. Index arguments out of range panic like slice indexing.
//
// # Thread Safety
//
// Not safe for concurrent use.
//
// # Example
//
//	v := container.NewMultiVector2[string, int](0)
//	v.PushBack("a", 1)
//	v.PushBack("b", 2)
//	for i, row := range v.All() {
//	    fmt.Println(i, row.V0, row.V1)
//	}
type MultiVector2[A, B any] struct {
	c0 []A
	c1 []B
}

// NewMultiVector2 creates a vector of n zero rows.
func NewMultiVector2[A, B any](n int) *MultiVector2[A, B] {
	return &MultiVector2[A, B]{c0: make([]A, n), c1: make([]B, n)}
}

// FilledMultiVector2 creates a vector of n copies of the given row.
func FilledMultiVector2[A, B any](n int, a A, b B) *MultiVector2[A, B] {
	v := NewMultiVector2[A, B](n)
	for i := range n {
		v.c0[i], v.c1[i] = a, b
	}
	return v
}

// Len returns the number of rows.
func (v *MultiVector2[A, B]) Len() int { return len(v.c0) }

// Cap returns the number of rows that fit without reallocating.
func (v *MultiVector2[A, B]) Cap() int { return min(cap(v.c0), cap(v.c1)) }

// Empty reports whether the vector has no rows.
func (v *MultiVector2[A, B]) Empty() bool { return len(v.c0) == 0 }

// PushBack appends a row.
func (v *MultiVector2[A, B]) PushBack(a A, b B) {
	v.c0 = append(v.c0, a)
	v.c1 = append(v.c1, b)
}

// PopBack removes and returns the last row. ok is false on an empty vector.
func (v *MultiVector2[A, B]) PopBack() (a A, b B, ok bool) {
	n := len(v.c0)
	if n == 0 {
		return a, b, false
	}
	a, b = v.c0[n-1], v.c1[n-1]
	var za A
	var zb B
	v.c0[n-1], v.c1[n-1] = za, zb
	v.c0, v.c1 = v.c0[:n-1], v.c1[:n-1]
	return a, b, true
}

// At returns row i.
func (v *MultiVector2[A, B]) At(i int) (A, B) { return v.c0[i], v.c1[i] }

// Row returns row i as a Row2.
func (v *MultiVector2[A, B]) Row(i int) Row2[A, B] { return Row2[A, B]{v.c0[i], v.c1[i]} }

// Ref returns pointers to the cells of row i.
func (v *MultiVector2[A, B]) Ref(i int) (*A, *B) { return &v.c0[i], &v.c1[i] }

// Set overwrites row i.
func (v *MultiVector2[A, B]) Set(i int, a A, b B) { v.c0[i], v.c1[i] = a, b }

// Front returns the first row. Panics on an empty vector.
func (v *MultiVector2[A, B]) Front() (A, B) { return v.At(0) }

// Back returns the last row. Panics on an empty vector.
func (v *MultiVector2[A, B]) Back() (A, B) { return v.At(len(v.c0) - 1) }

// Erase removes row i, shifting later rows down by one.
func (v *MultiVector2[A, B]) Erase(i int) {
	v.c0 = slices.Delete(v.c0, i, i+1)
	v.c1 = slices.Delete(v.c1, i, i+1)
}

// Clear removes every row and keeps the capacity.
func (v *MultiVector2[A, B]) Clear() {
	clear(v.c0)
	clear(v.c1)
	v.c0, v.c1 = v.c0[:0], v.c1[:0]
}

// Swap exchanges the contents of v and other.
func (v *MultiVector2[A, B]) Swap(other *MultiVector2[A, B]) {
	v.c0, other.c0 = other.c0, v.c0
	v.c1, other.c1 = other.c1, v.c1
}

// Resize sets the length to n. New rows are zero.
func (v *MultiVector2[A, B]) Resize(n int) {
	var a A
	var b B
	v.ResizeWith(n, a, b)
}

// ResizeWith sets the length to n. New rows are copies of the given row.
func (v *MultiVector2[A, B]) ResizeWith(n int, a A, b B) {
	old := len(v.c0)
	if n <= old {
		clear(v.c0[n:])
		clear(v.c1[n:])
		v.c0, v.c1 = v.c0[:n], v.c1[:n]
		return
	}
	v.Reserve(n)
	v.c0, v.c1 = v.c0[:n], v.c1[:n]
	for i := old; i < n; i++ {
		v.c0[i], v.c1[i] = a, b
	}
}

// Reserve grows the capacity to at least n rows.
func (v *MultiVector2[A, B]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.c0 = slices.Grow(v.c0, n-len(v.c0))
	v.c1 = slices.Grow(v.c1, n-len(v.c1))
}

// ShrinkToFit reallocates the columns to exactly Len rows.
func (v *MultiVector2[A, B]) ShrinkToFit() {
	v.c0 = exact(v.c0)
	v.c1 = exact(v.c1)
}

// Col0 returns the first column. Writes to the slice modify the vector;
// appending to it does not.
func (v *MultiVector2[A, B]) Col0() []A { return v.c0 }

// Col1 returns the second column.
func (v *MultiVector2[A, B]) Col1() []B { return v.c1 }

// All iterates over the rows by value.
func (v *MultiVector2[A, B]) All() iter.Seq2[int, Row2[A, B]] {
	return func(yield func(int, Row2[A, B]) bool) {
		for i := range v.c0 {
			if !yield(i, Row2[A, B]{v.c0[i], v.c1[i]}) {
				return
			}
		}
	}
}

// Refs iterates over the rows by reference, so the loop body can modify
// the cells in place.
func (v *MultiVector2[A, B]) Refs() iter.Seq2[int, Ref2[A, B]] {
	return func(yield func(int, Ref2[A, B]) bool) {
		for i := range v.c0 {
			if !yield(i, Ref2[A, B]{&v.c0[i], &v.c1[i]}) {
				return
			}
		}
	}
}

// Clone returns a copy with its own columns. Elements are copied shallowly.
func (v *MultiVector2[A, B]) Clone() *MultiVector2[A, B] {
	return &MultiVector2[A, B]{c0: exact(v.c0), c1: exact(v.c1)}
}

// =============================================================================
// MultiVector3
// =============================================================================

// Row3 is one row of a MultiVector3.
type Row3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Ref3 points at the cells of one row of a MultiVector3.
type Ref3[A, B, C any] struct {
	V0 *A
	V1 *B
	V2 *C
}

// MultiVector3 is the three-column form of MultiVector2.
type MultiVector3[A, B, C any] struct {
	c0 []A
	c1 []B
	c2 []C
}

// NewMultiVector3 creates a vector of n zero rows.
func NewMultiVector3[A, B, C any](n int) *MultiVector3[A, B, C] {
	return &MultiVector3[A, B, C]{c0: make([]A, n), c1: make([]B, n), c2: make([]C, n)}
}

// FilledMultiVector3 creates a vector of n copies of the given row.
func FilledMultiVector3[A, B, C any](n int, a A, b B, c C) *MultiVector3[A, B, C] {
	v := NewMultiVector3[A, B, C](n)
	for i := range n {
		v.c0[i], v.c1[i], v.c2[i] = a, b, c
	}
	return v
}

func (v *MultiVector3[A, B, C]) Len() int { return len(v.c0) }
func (v *MultiVector3[A, B, C]) Cap() int { return min(cap(v.c0), cap(v.c1), cap(v.c2)) }
func (v *MultiVector3[A, B, C]) Empty() bool { return len(v.c0) == 0 }

func (v *MultiVector3[A, B, C]) PushBack(a A, b B, c C) {
	v.c0 = append(v.c0, a)
	v.c1 = append(v.c1, b)
	v.c2 = append(v.c2, c)
}

// PopBack removes and returns the last row. ok is false on an empty vector.
func (v *MultiVector3[A, B, C]) PopBack() (a A, b B, c C, ok bool) {
	n := len(v.c0)
	if n == 0 {
		return a, b, c, false
	}
	a, b, c = v.c0[n-1], v.c1[n-1], v.c2[n-1]
	clear(v.c0[n-1:])
	clear(v.c1[n-1:])
	clear(v.c2[n-1:])
	v.c0, v.c1, v.c2 = v.c0[:n-1], v.c1[:n-1], v.c2[:n-1]
	return a, b, c, true
}

func (v *MultiVector3[A, B, C]) At(i int) (A, B, C) { return v.c0[i], v.c1[i], v.c2[i] }

func (v *MultiVector3[A, B, C]) Row(i int) Row3[A, B, C] {
	return Row3[A, B, C]{v.c0[i], v.c1[i], v.c2[i]}
}

func (v *MultiVector3[A, B, C]) Ref(i int) (*A, *B, *C) { return &v.c0[i], &v.c1[i], &v.c2[i] }

func (v *MultiVector3[A, B, C]) Set(i int, a A, b B, c C) {
	v.c0[i], v.c1[i], v.c2[i] = a, b, c
}

func (v *MultiVector3[A, B, C]) Front() (A, B, C) { return v.At(0) }
func (v *MultiVector3[A, B, C]) Back() (A, B, C) { return v.At(len(v.c0) - 1) }

// Erase removes row i, shifting later rows down by one.
func (v *MultiVector3[A, B, C]) Erase(i int) {
	v.c0 = slices.Delete(v.c0, i, i+1)
	v.c1 = slices.Delete(v.c1, i, i+1)
	v.c2 = slices.Delete(v.c2, i, i+1)
}

func (v *MultiVector3[A, B, C]) Clear() {
	clear(v.c0)
	clear(v.c1)
	clear(v.c2)
	v.c0, v.c1, v.c2 = v.c0[:0], v.c1[:0], v.c2[:0]
}

func (v *MultiVector3[A, B, C]) Swap(other *MultiVector3[A, B, C]) {
	v.c0, other.c0 = other.c0, v.c0
	v.c1, other.c1 = other.c1, v.c1
	v.c2, other.c2 = other.c2, v.c2
}

func (v *MultiVector3[A, B, C]) Resize(n int) {
	var (
		a A
		b B
		c C
	)
	v.ResizeWith(n, a, b, c)
}

func (v *MultiVector3[A, B, C]) ResizeWith(n int, a A, b B, c C) {
	old := len(v.c0)
	if n <= old {
		clear(v.c0[n:])
		clear(v.c1[n:])
		clear(v.c2[n:])
		v.c0, v.c1, v.c2 = v.c0[:n], v.c1[:n], v.c2[:n]
		return
	}
	v.Reserve(n)
	v.c0, v.c1, v.c2 = v.c0[:n], v.c1[:n], v.c2[:n]
	for i := old; i < n; i++ {
		v.c0[i], v.c1[i], v.c2[i] = a, b, c
	}
}

func (v *MultiVector3[A, B, C]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.c0 = slices.Grow(v.c0, n-len(v.c0))
	v.c1 = slices.Grow(v.c1, n-len(v.c1))
	v.c2 = slices.Grow(v.c2, n-len(v.c2))
}

func (v *MultiVector3[A, B, C]) ShrinkToFit() {
	v.c0 = exact(v.c0)
	v.c1 = exact(v.c1)
	v.c2 = exact(v.c2)
}

func (v *MultiVector3[A, B, C]) Col0() []A { return v.c0 }
func (v *MultiVector3[A, B, C]) Col1() []B { return v.c1 }
func (v *MultiVector3[A, B, C]) Col2() []C { return v.c2 }

func (v *MultiVector3[A, B, C]) All() iter.Seq2[int, Row3[A, B, C]] {
	return func(yield func(int, Row3[A, B, C]) bool) {
		for i := range v.c0 {
			if !yield(i, Row3[A, B, C]{v.c0[i], v.c1[i], v.c2[i]}) {
				return
			}
		}
	}
}

func (v *MultiVector3[A, B, C]) Refs() iter.Seq2[int, Ref3[A, B, C]] {
	return func(yield func(int, Ref3[A, B, C]) bool) {
		for i := range v.c0 {
			if !yield(i, Ref3[A, B, C]{&v.c0[i], &v.c1[i], &v.c2[i]}) {
				return
			}
		}
	}
}

func (v *MultiVector3[A, B, C]) Clone() *MultiVector3[A, B, C] {
	return &MultiVector3[A, B, C]{c0: exact(v.c0), c1: exact(v.c1), c2: exact(v.c2)}
}

// exact copies s into a slice whose capacity equals its length.
func exact[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}
