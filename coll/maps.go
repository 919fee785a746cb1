// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package coll

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// MapEntry is a key/value pair of a map, used by the pair-wise helpers below
// where an operation needs to see both components as a single value.
type MapEntry[K any, V any] struct {
	Key K
	Val V
}

func (e MapEntry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}

// Keys returns the keys of the map in ascending order.
func Keys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

// Values returns the values of the map, ordered by ascending key.
func Values[K constraints.Ordered, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		values = append(values, m[k])
	}
	return values
}

// Entries returns the key/value pairs of the map, ordered by ascending key.
func Entries[K constraints.Ordered, V any](m map[K]V) []MapEntry[K, V] {
	entries := make([]MapEntry[K, V], 0, len(m))
	for _, k := range Keys(m) {
		entries = append(entries, MapEntry[K, V]{Key: k, Val: m[k]})
	}
	return entries
}

// EachPair invokes the given consumer on every key/value pair of the map, in
// ascending key order.
func EachPair[K constraints.Ordered, V any](m map[K]V, consume func(K, V)) {
	for _, k := range Keys(m) {
		consume(k, m[k])
	}
}

// CollectPair transforms every key/value pair of the map and returns the
// results in ascending key order.
func CollectPair[K constraints.Ordered, V, R any](m map[K]V, transform func(K, V) R) []R {
	result := make([]R, 0, len(m))
	for _, k := range Keys(m) {
		result = append(result, transform(k, m[k]))
	}
	return result
}

// FindAllPair returns a new map holding the key/value pairs satisfying the
// given predicate. The predicate sees the pairs in ascending key order. The
// input is not modified.
func FindAllPair[K constraints.Ordered, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	result := map[K]V{}
	for _, k := range Keys(m) {
		if predicate(k, m[k]) {
			result[k] = m[k]
		}
	}
	return result
}

// AnyPair returns true if at least one key/value pair satisfies the given
// predicate, checking pairs in ascending key order and stopping at the first
// match. It is false for an empty map.
func AnyPair[K constraints.Ordered, V any](m map[K]V, predicate func(K, V) bool) bool {
	for _, k := range Keys(m) {
		if predicate(k, m[k]) {
			return true
		}
	}
	return false
}

// EveryPair returns true if all key/value pairs satisfy the given predicate,
// checking pairs in ascending key order and stopping at the first mismatch.
// It is true for an empty map.
func EveryPair[K constraints.Ordered, V any](m map[K]V, predicate func(K, V) bool) bool {
	for _, k := range Keys(m) {
		if !predicate(k, m[k]) {
			return false
		}
	}
	return true
}
