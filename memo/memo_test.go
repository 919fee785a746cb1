// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memo

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoize_EachArgumentIsComputedOnce(t *testing.T) {
	require := require.New(t)

	calls := 0
	square := Memoize(func(v int) int {
		calls++
		return v * v
	})

	require.Equal(9, square(3))
	require.Equal(9, square(3))
	require.Equal(16, square(4))
	require.Equal(9, square(3))
	require.Equal(2, calls)
}

func TestMemoize_WrappersHaveIndependentCaches(t *testing.T) {
	require := require.New(t)

	calls := 0
	count := func(v int) int {
		calls++
		return v
	}

	first := Memoize(count)
	second := Memoize(count)
	first(1)
	second(1)
	require.Equal(2, calls)
}

func TestMemoize_IsSafeForConcurrentUse(t *testing.T) {
	require := require.New(t)

	var calls atomic.Int32
	square := Memoize(func(v int) int {
		calls.Add(1)
		return v * v
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range 100 {
				_ = square(v)
			}
		}()
	}
	wg.Wait()
	require.Equal(int32(100), calls.Load())
}

func TestMemoize2_EachPairIsComputedOnce(t *testing.T) {
	require := require.New(t)

	calls := 0
	concat := Memoize2(func(a string, b int) string {
		calls++
		return a + "-" + string(rune('0'+b))
	})

	require.Equal("a-1", concat("a", 1))
	require.Equal("a-1", concat("a", 1))
	require.Equal("a-2", concat("a", 2))
	require.Equal("b-1", concat("b", 1))
	require.Equal(3, calls)
}

func TestMemoizeAtMost_EvictsLeastRecentlyUsed(t *testing.T) {
	require := require.New(t)

	calls := 0
	identity := MemoizeAtMost(func(v int) int {
		calls++
		return v
	}, 2)

	identity(1) // cache: 1
	identity(2) // cache: 2, 1
	identity(1) // hit, cache: 1, 2
	require.Equal(2, calls)

	identity(3) // evicts 2, cache: 3, 1
	require.Equal(3, calls)

	identity(1) // still cached
	require.Equal(3, calls)

	identity(2) // was evicted, recomputed
	require.Equal(4, calls)
}

func TestMemoizeAtMost_SingleEntryCache(t *testing.T) {
	require := require.New(t)

	calls := 0
	identity := MemoizeAtMost(func(v int) int {
		calls++
		return v
	}, 1)

	identity(1)
	identity(1)
	require.Equal(1, calls)
	identity(2)
	identity(1)
	require.Equal(3, calls)
}

func TestMemoizeAtMost_NonPositiveBoundPanics(t *testing.T) {
	require := require.New(t)
	require.Panics(func() { MemoizeAtMost(func(v int) int { return v }, 0) })
	require.Panics(func() { MemoizeAtMost(func(v int) int { return v }, -3) })
}
