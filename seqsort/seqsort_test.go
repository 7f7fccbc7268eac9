package seqsort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrikov/seqcore/growarray"
	"github.com/ostrikov/seqcore/seqsort"
)

// sorters enumerates the slice frontends so each case runs all three.
var sorters = map[string]func([]int, ...seqsort.Option){
	"bubble":    seqsort.Bubble[int],
	"selection": seqsort.Selection[int],
	"insertion": seqsort.Insertion[int],
}

func TestSorts_FixedCases(t *testing.T) {
	cases := map[string][]int{
		"empty":      {},
		"single":     {1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3},
		"classic":    {64, 34, 25, 12, 22, 11, 90},
	}
	for name, fn := range sorters {
		for caseName, input := range cases {
			t.Run(name+"/"+caseName, func(t *testing.T) {
				got := append([]int(nil), input...)
				want := append([]int(nil), input...)
				sort.Ints(want)

				fn(got)
				require.Equal(t, want, got)
				require.True(t, seqsort.IsSorted(got))
			})
		}
	}
}

// TestSorts_PermutationProperty checks on random input that each sort
// produces an ordered permutation of its input.
func TestSorts_PermutationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, fn := range sorters {
		t.Run(name, func(t *testing.T) {
			input := make([]int, 200)
			for i := range input {
				input[i] = rng.Intn(50) // force duplicates
			}
			got := append([]int(nil), input...)
			want := append([]int(nil), input...)
			sort.Ints(want)

			fn(got)
			require.Equal(t, want, got)
		})
	}
}

// TestBubble_EarlyExit verifies the swapped-flag optimization: sorted
// input finishes after a single pass.
func TestBubble_EarlyExit(t *testing.T) {
	passes := 0
	seqsort.Bubble([]int{1, 2, 3, 4, 5, 6}, seqsort.WithOnPass(func(int) { passes++ }))
	require.Equal(t, 1, passes)
}

// TestSelection_SwapBudget verifies selection sort performs at most n−1 swaps.
func TestSelection_SwapBudget(t *testing.T) {
	values := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	swaps := 0
	seqsort.Selection(values, seqsort.WithOnSwap(func(int, int) { swaps++ }))
	require.True(t, seqsort.IsSorted(values))
	require.LessOrEqual(t, swaps, len(values)-1)
}

// TestInsertion_AdaptiveOnSortedInput verifies O(n) behavior: no swaps and
// exactly n−1 comparisons on already-sorted input.
func TestInsertion_AdaptiveOnSortedInput(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	var compares, swaps int
	seqsort.Insertion(values,
		seqsort.WithOnCompare(func(int, int) { compares++ }),
		seqsort.WithOnSwap(func(int, int) { swaps++ }),
	)
	require.Equal(t, 0, swaps)
	require.Equal(t, len(values)-1, compares)
}

func TestArrayVariants(t *testing.T) {
	variants := map[string]func(*growarray.Array[int], ...seqsort.Option){
		"bubble":    seqsort.BubbleArray[int],
		"selection": seqsort.SelectionArray[int],
		"insertion": seqsort.InsertionArray[int],
	}
	for name, fn := range variants {
		t.Run(name, func(t *testing.T) {
			arr := growarray.New[int](2)
			for _, v := range []int{42, 7, 19, 3, 25} {
				require.NoError(t, arr.Append(v))
			}
			fn(arr)
			require.Equal(t, []int{3, 7, 19, 25, 42}, arr.Values())
			// Sorting touches only the live prefix; capacity is untouched.
			require.Equal(t, 8, arr.Cap())
		})
	}
}

func TestIsSorted(t *testing.T) {
	require.True(t, seqsort.IsSorted([]int{}))
	require.True(t, seqsort.IsSorted([]int{1}))
	require.True(t, seqsort.IsSorted([]int{1, 1, 2}))
	require.False(t, seqsort.IsSorted([]int{2, 1}))
	require.True(t, seqsort.IsSorted([]string{"a", "b", "b"}))
}
