// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package coll provides iteration helpers over slices and maps taking
// function values: transforming, filtering, folding, searching, and sorting
// without mutating the input. Map traversal is always in ascending key order
// so results are deterministic.
package coll

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Join concatenates the string form of all items, separated by the given
// separator. An empty input produces an empty string.
func Join[T any](items []T, separator string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(separator)
		}
		fmt.Fprintf(&b, "%v", item)
	}
	return b.String()
}

// Each invokes the given consumer on every item, in order.
func Each[T any](items []T, consume func(T)) {
	for _, item := range items {
		consume(item)
	}
}

// Collect transforms every item with the given function and returns the
// results in the input's order. The input is not modified.
func Collect[T, R any](items []T, transform func(T) R) []R {
	result := make([]R, len(items))
	for i, item := range items {
		result[i] = transform(item)
	}
	return result
}

// FindAll returns the items satisfying the given predicate, preserving the
// input's order. The input is not modified.
func FindAll[T any](items []T, predicate func(T) bool) []T {
	result := []T{}
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Find returns the first item satisfying the given predicate, or the zero
// value and false if there is none.
func Find[T any](items []T, predicate func(T) bool) (T, bool) {
	for _, item := range items {
		if predicate(item) {
			return item, true
		}
	}
	var none T
	return none, false
}

// Any returns true if at least one item satisfies the given predicate. It is
// false for an empty input.
func Any[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Every returns true if all items satisfy the given predicate. It is true for
// an empty input.
func Every[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Count returns the number of items satisfying the given predicate.
func Count[T any](items []T, predicate func(T) bool) int {
	count := 0
	for _, item := range items {
		if predicate(item) {
			count++
		}
	}
	return count
}

// Sort returns a new slice with the items ordered by the given comparator,
// which reports a negative value if a is to be ordered before b. The input is
// not modified and the order of items comparing equal is retained.
func Sort[T any](items []T, compare func(a, b T) int) []T {
	result := slices.Clone(items)
	slices.SortStableFunc(result, compare)
	return result
}

// SortBy returns a new slice with the items ordered ascending by the given
// key. The input is not modified.
func SortBy[T any, K constraints.Ordered](items []T, key func(T) K) []T {
	return Sort(items, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// Max returns the largest item, or the zero value and false for an empty
// input.
func Max[T constraints.Ordered](items []T) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	return slices.Max(items), true
}

// MaxBy returns the item with the largest score, or the zero value and false
// for an empty input. Of several items sharing the largest score, the first
// is returned.
func MaxBy[T any, S constraints.Ordered](items []T, score func(T) S) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	best := items[0]
	bestScore := score(best)
	for _, item := range items[1:] {
		if s := score(item); s > bestScore {
			best, bestScore = item, s
		}
	}
	return best, true
}

// Min returns the smallest item, or the zero value and false for an empty
// input.
func Min[T constraints.Ordered](items []T) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	return slices.Min(items), true
}

// MinBy returns the item with the smallest score, or the zero value and false
// for an empty input. Of several items sharing the smallest score, the first
// is returned.
func MinBy[T any, S constraints.Ordered](items []T, score func(T) S) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	best := items[0]
	bestScore := score(best)
	for _, item := range items[1:] {
		if s := score(item); s < bestScore {
			best, bestScore = item, s
		}
	}
	return best, true
}

// Inject folds the items into a single value, starting from the given seed
// and combining left to right.
func Inject[T, R any](items []T, seed R, combine func(R, T) R) R {
	accumulator := seed
	for _, item := range items {
		accumulator = combine(accumulator, item)
	}
	return accumulator
}

// Sum adds up all items. An empty input sums to zero.
func Sum[T constraints.Integer | constraints.Float](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// Unique returns the items with duplicates removed, keeping the first
// occurrence of each value and preserving the input's order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := []T{}
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Reverse returns a new slice with the items in reverse order. The input is
// not modified.
func Reverse[T any](items []T) []T {
	result := slices.Clone(items)
	slices.Reverse(result)
	return result
}

// GroupBy partitions the items by the given key, preserving the input's
// order within each group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := map[K][]T{}
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
