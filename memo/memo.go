// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package memo provides memoizing wrappers for pure functions: unbounded and
// size-bounded in-memory caches, and a persistent tier storing results in a
// byte-oriented Store between process runs.
package memo

import (
	"container/list"
	"fmt"
	"sync"
)

// memoEntry is one cached slot of an unbounded cache. The once gate makes
// sure the wrapped function runs at most once per argument.
type memoEntry[R any] struct {
	once  sync.Once
	value R
}

// Memoize wraps a pure unary function with an unbounded cache. Each argument
// is computed at most once per wrapper. The wrapper is safe for concurrent
// use, and the wrapped function may recursively call the wrapper with other
// arguments.
func Memoize[A comparable, R any](f func(A) R) func(A) R {
	var cache sync.Map // A -> *memoEntry[R]
	return func(arg A) R {
		slot, _ := cache.LoadOrStore(arg, &memoEntry[R]{})
		entry := slot.(*memoEntry[R])
		entry.once.Do(func() {
			entry.value = f(arg)
		})
		return entry.value
	}
}

// argPair is the composite cache key used by Memoize2.
type argPair[A, B comparable] struct {
	a A
	b B
}

// Memoize2 wraps a pure binary function with an unbounded cache keyed by the
// argument pair. Each pair is computed at most once per wrapper.
func Memoize2[A, B comparable, R any](f func(A, B) R) func(A, B) R {
	memoized := Memoize(func(p argPair[A, B]) R { return f(p.a, p.b) })
	return func(a A, b B) R {
		return memoized(argPair[A, B]{a: a, b: b})
	}
}

// lruEntry is one cached argument/value pair, stored in the recency list of a
// bounded cache.
type lruEntry[A comparable, R any] struct {
	arg   A
	value R
}

// MemoizeAtMost wraps a pure unary function with a cache holding at most the
// given number of entries, evicting the least recently used entry when full.
// A non-positive bound is a programming error and panics.
//
// The wrapper is safe for concurrent use. The function runs outside the cache
// lock, so concurrent first calls with the same argument may compute it more
// than once; the bound on the cache size always holds.
func MemoizeAtMost[A comparable, R any](f func(A) R, max int) func(A) R {
	if max <= 0 {
		panic(fmt.Sprintf("invalid cache bound %d, must be positive", max))
	}
	var mu sync.Mutex
	recency := list.New() // front = most recently used
	entries := map[A]*list.Element{}
	return func(arg A) R {
		mu.Lock()
		if element, ok := entries[arg]; ok {
			recency.MoveToFront(element)
			value := element.Value.(lruEntry[A, R]).value
			mu.Unlock()
			return value
		}
		mu.Unlock()

		value := f(arg)

		mu.Lock()
		defer mu.Unlock()
		// another caller may have filled the slot in the meantime
		if element, ok := entries[arg]; ok {
			recency.MoveToFront(element)
			return element.Value.(lruEntry[A, R]).value
		}
		entries[arg] = recency.PushFront(lruEntry[A, R]{arg: arg, value: value})
		if recency.Len() > max {
			oldest := recency.Back()
			recency.Remove(oldest)
			delete(entries, oldest.Value.(lruEntry[A, R]).arg)
		}
		return value
	}
}
