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
	"strings"
	"testing"

	"github.com/jenspresser/groovy-core/closure"
	"github.com/stretchr/testify/require"
)

var animals = []string{"ant", "bear", "camel"}

func TestJoin_ConcatenatesWithSeparator(t *testing.T) {
	require := require.New(t)
	require.Equal("ant, bear, camel", Join(animals, ", "))
	require.Equal("1-2-3", Join([]int{1, 2, 3}, "-"))
	require.Equal("", Join([]string{}, ", "))
}

func TestEach_VisitsAllItemsInOrder(t *testing.T) {
	require := require.New(t)
	lengths := []int{}
	Each(animals, func(animal string) {
		lengths = append(lengths, len(animal))
	})
	require.Equal([]int{3, 4, 5}, lengths)
}

func TestCollect_TransformsAllItems(t *testing.T) {
	require := require.New(t)
	require.Equal([]int{3, 4, 5}, Collect(animals, func(s string) int { return len(s) }))
}

func TestCollect_SumsNestedLists(t *testing.T) {
	require := require.New(t)
	numLists := [][]int{{1, 2, 3}, {10, 20, 30}}
	require.Equal([]int{6, 60}, Collect(numLists, Sum[int]))
}

func TestCollect_InputIsNotModified(t *testing.T) {
	require := require.New(t)
	input := []string{"a", "b"}
	_ = Collect(input, strings.ToUpper)
	require.Equal([]string{"a", "b"}, input)
}

func TestFindAll_KeepsMatchingItemsInOrder(t *testing.T) {
	require := require.New(t)
	long := FindAll(animals, func(s string) bool { return len(s) > 3 })
	require.Equal([]string{"bear", "camel"}, long)
	require.Equal([]string{}, FindAll(animals, func(s string) bool { return false }))
}

func TestFind_ReturnsFirstMatch(t *testing.T) {
	require := require.New(t)

	found, ok := Find(animals, func(s string) bool { return len(s) > 3 })
	require.True(ok)
	require.Equal("bear", found)

	_, ok = Find(animals, func(s string) bool { return s == "zebra" })
	require.False(ok)
}

func TestAny_TrueIfAtLeastOneItemMatches(t *testing.T) {
	require := require.New(t)
	require.True(Any(animals, func(s string) bool { return s == "bear" }))
	require.False(Any(animals, func(s string) bool { return s == "zebra" }))
	require.False(Any([]string{}, func(s string) bool { return true }))
}

func TestEvery_TrueIfAllItemsMatch(t *testing.T) {
	require := require.New(t)
	hasA := closure.AndThen(
		closure.Func1[string, string](strings.ToUpper),
		closure.Func1[string, bool](func(s string) bool { return strings.Contains(s, "A") }),
	)
	require.True(Every(animals, hasA))
	require.False(Every(animals, func(s string) bool { return len(s) > 3 }))
	require.True(Every([]string{}, func(s string) bool { return false }))
}

func TestCount_CountsMatchingItems(t *testing.T) {
	require := require.New(t)
	require.Equal(2, Count(animals, func(s string) bool { return len(s) > 3 }))
	require.Equal(0, Count([]string{}, func(s string) bool { return true }))
}

func TestSort_OrdersByComparatorWithoutModifyingInput(t *testing.T) {
	require := require.New(t)
	items := []string{"Monkeys", "Giraffe", "Lions"}

	ascending := Sort(items, strings.Compare)
	require.Equal([]string{"Giraffe", "Lions", "Monkeys"}, ascending)

	descending := Sort(items, func(a, b string) int { return -strings.Compare(a, b) })
	require.Equal([]string{"Monkeys", "Lions", "Giraffe"}, descending)

	require.Equal([]string{"Monkeys", "Giraffe", "Lions"}, items, "input must stay untouched")
}

func TestSortBy_OrdersByKey(t *testing.T) {
	require := require.New(t)
	byLength := SortBy(animals, func(s string) int { return -len(s) })
	require.Equal([]string{"camel", "bear", "ant"}, byLength)
}

func TestMax_FindsLargestItem(t *testing.T) {
	require := require.New(t)

	largest, ok := Max([]int{3, 1, 5, 2})
	require.True(ok)
	require.Equal(5, largest)

	_, ok = Max([]int{})
	require.False(ok)
}

func TestMaxBy_FindsItemWithLargestScore(t *testing.T) {
	require := require.New(t)

	longest, ok := MaxBy(animals, func(s string) int { return len(s) })
	require.True(ok)
	require.Equal("camel", longest)

	_, ok = MaxBy([]string{}, func(s string) int { return len(s) })
	require.False(ok)
}

func TestMin_FindsSmallestItem(t *testing.T) {
	require := require.New(t)

	smallest, ok := Min([]int{3, 1, 5, 2})
	require.True(ok)
	require.Equal(1, smallest)

	_, ok = Min([]int{})
	require.False(ok)
}

func TestMinBy_FirstOfEquallyScoredItemsWins(t *testing.T) {
	require := require.New(t)
	shortest, ok := MinBy([]string{"boa", "ant", "bear"}, func(s string) int { return len(s) })
	require.True(ok)
	require.Equal("boa", shortest)
}

func TestInject_FoldsLeftToRight(t *testing.T) {
	require := require.New(t)
	sentence := Inject(animals, "animals:", func(acc, item string) string {
		return acc + " " + item
	})
	require.Equal("animals: ant bear camel", sentence)
	require.Equal(10, Inject([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc + v }))
}

func TestSum_AddsAllItems(t *testing.T) {
	require := require.New(t)
	require.Equal(6, Sum([]int{1, 2, 3}))
	require.Equal(1.5, Sum([]float64{1.0, 0.5}))
	require.Equal(0, Sum([]int{}))
}

func TestUnique_KeepsFirstOccurrence(t *testing.T) {
	require := require.New(t)
	require.Equal([]int{1, 2, 3}, Unique([]int{1, 2, 1, 3, 2, 1}))
	require.Equal([]int{}, Unique([]int{}))
}

func TestReverse_ReturnsReversedCopy(t *testing.T) {
	require := require.New(t)
	require.Equal([]string{"camel", "bear", "ant"}, Reverse(animals))
	require.Equal([]string{"ant", "bear", "camel"}, animals, "input must stay untouched")
}

func TestGroupBy_PartitionsPreservingOrder(t *testing.T) {
	require := require.New(t)
	byLength := GroupBy([]string{"ant", "bear", "boa", "camel"}, func(s string) int { return len(s) })
	require.Equal(map[int][]string{
		3: {"ant", "boa"},
		4: {"bear"},
		5: {"camel"},
	}, byLength)
}
