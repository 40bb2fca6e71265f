// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strconv"

	"github.com/AleutianAI/koutil/pkg/container"
	"github.com/spf13/cobra"
)

// keyTag selects which storage column a key lives in.
type keyTag int

const (
	tagNumber keyTag = iota
	tagChar
)

var tagNames = container.MustSortedMap(
	container.P(tagNumber, "numbers"),
	container.P(tagChar, "chars"),
)

// demoKey is a number or a character, depending on the tag it is used with.
type demoKey struct {
	number int
	char   byte
}

// keyStore keeps keys outside the index. Row i of entries holds the tag
// of id i and its position in numbers or chars.
type keyStore struct {
	entries container.MultiVector2[keyTag, int]
	numbers []int
	chars   []byte
}

func (s *keyStore) insert(tag keyTag, key demoKey) int {
	id := s.entries.Len()
	switch tag {
	case tagNumber:
		s.entries.PushBack(tag, len(s.numbers))
		s.numbers = append(s.numbers, key.number)
	case tagChar:
		s.entries.PushBack(tag, len(s.chars))
		s.chars = append(s.chars, key.char)
	}
	return id
}

// Equal resolves id against the store.
func (s *keyStore) Equal(tag keyTag, key demoKey, id int) bool {
	stored, pos := s.entries.At(id)
	if stored != tag {
		return false
	}
	switch tag {
	case tagNumber:
		return s.numbers[pos] == key.number
	case tagChar:
		return s.chars[pos] == key.char
	default:
		return false
	}
}

func hashDemoKey(tag keyTag, key demoKey) uint64 {
	switch tag {
	case tagNumber:
		return container.HashUint64s(uint64(tag), uint64(key.number))
	default:
		return container.HashUint64s(uint64(tag), uint64(key.char))
	}
}

// hashArrayReport summarizes one run.
type hashArrayReport struct {
	Inserted    int
	Numbers     int
	Chars       int
	Buckets     int
	LoadFactor  float64
	StoredTotal int
}

func newHashArrayCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "hasharray",
		Short: "Index tagged number and character keys kept in external storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}
			opts := []container.HashArrayOption{
				container.WithBucketCount(a.cfg.HashArray.BucketCount),
				container.WithMaxLoadFactor(a.cfg.HashArray.MaxLoadFactor),
			}
			report := runHashArray(count, opts...)

			p := a.printer
			p.Title("Hash array")
			p.Info("Inserting " + strconv.Itoa(count) + " keys...")
			p.KeyValue(tagNames.GetOr(tagNumber, "?"), strconv.Itoa(report.Numbers))
			p.KeyValue(tagNames.GetOr(tagChar, "?"), strconv.Itoa(report.Chars))
			p.KeyValue("indexed", strconv.Itoa(report.StoredTotal))
			p.KeyValue("buckets", strconv.Itoa(report.Buckets))
			p.KeyValue("load_factor", strconv.FormatFloat(report.LoadFactor, 'f', 3, 64))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1000, "number of loop iterations, each offering one number and one char key")
	return cmd
}

// runHashArray offers i%50 as a number key and i%127 as a char key for
// each i below count, inserting only keys that are not yet indexed.
func runHashArray(count int, opts ...container.HashArrayOption) hashArrayReport {
	store := &keyStore{}
	index := container.NewTaggedHashArray[demoKey, int, keyTag](
		container.TaggedHasherFunc[demoKey, keyTag](hashDemoKey), opts...)

	var report hashArrayReport
	offer := func(tag keyTag, key demoKey) {
		if index.Contains(tag, key, store) {
			return
		}
		id := store.insert(tag, key)
		if index.TryInsert(tag, key, id, store) {
			report.Inserted++
		}
	}

	for i := 0; i < count; i++ {
		offer(tagNumber, demoKey{number: i % 50})
		offer(tagChar, demoKey{char: byte(i % 127)})
	}

	report.Numbers = len(store.numbers)
	report.Chars = len(store.chars)
	report.Buckets = index.BucketCount()
	report.LoadFactor = index.LoadFactor()
	report.StoredTotal = index.Len()
	return report
}
