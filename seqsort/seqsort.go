// Package seqsort implements bubble, selection and insertion sort over
// generic ordered sequences.
//
// All three sorts share one index-based core so the slice frontends and
// the growarray frontends run the identical algorithm.
package seqsort

import (
	"cmp"

	"github.com/ostrikov/seqcore/growarray"
)

// Bubble sorts values ascending in place by repeatedly swapping adjacent
// out-of-order pairs; a pass with no swaps ends the sort early.
// Complexity: O(n²) worst/average, O(n) best, O(1) space.
func Bubble[T cmp.Ordered](values []T, opts ...Option) {
	bubble(len(values), sliceLess(values), sliceSwap(values), buildOptions(opts))
}

// Selection sorts values ascending in place by repeatedly moving the
// minimum of the unsorted suffix into its final position.
// Complexity: O(n²) in all cases, at most n−1 swaps, O(1) space.
func Selection[T cmp.Ordered](values []T, opts ...Option) {
	selection(len(values), sliceLess(values), sliceSwap(values), buildOptions(opts))
}

// Insertion sorts values ascending in place by sliding each element left
// into its position within the sorted prefix.
// Complexity: O(n²) worst/average, O(n) best, O(1) space.
func Insertion[T cmp.Ordered](values []T, opts ...Option) {
	insertion(len(values), sliceLess(values), sliceSwap(values), buildOptions(opts))
}

// IsSorted reports whether values are in ascending order.
// Complexity: O(n)
func IsSorted[T cmp.Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}

	return true
}

// BubbleArray sorts the live prefix of a ascending in place.
func BubbleArray[T cmp.Ordered](a *growarray.Array[T], opts ...Option) {
	bubble(a.Len(), arrayLess(a), arraySwap(a), buildOptions(opts))
}

// SelectionArray sorts the live prefix of a ascending in place.
func SelectionArray[T cmp.Ordered](a *growarray.Array[T], opts ...Option) {
	selection(a.Len(), arrayLess(a), arraySwap(a), buildOptions(opts))
}

// InsertionArray sorts the live prefix of a ascending in place.
func InsertionArray[T cmp.Ordered](a *growarray.Array[T], opts ...Option) {
	insertion(a.Len(), arrayLess(a), arraySwap(a), buildOptions(opts))
}

// bubble is the index-based core shared by Bubble and BubbleArray.
// less reports order between positions; swap exchanges them.
func bubble(n int, less func(i, j int) bool, swap func(i, j int), o Options) {
	for i := 0; i < n-1; i++ {
		swapped := false
		// The last i elements are already in place.
		for j := 0; j < n-i-1; j++ {
			o.OnCompare(j, j+1)
			if less(j+1, j) {
				swap(j, j+1)
				o.OnSwap(j, j+1)
				swapped = true
			}
		}
		o.OnPass(i + 1)
		if !swapped {
			break
		}
	}
}

func selection(n int, less func(i, j int) bool, swap func(i, j int), o Options) {
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			o.OnCompare(j, minIdx)
			if less(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			swap(i, minIdx)
			o.OnSwap(i, minIdx)
		}
		o.OnPass(i + 1)
	}
}

func insertion(n int, less func(i, j int) bool, swap func(i, j int), o Options) {
	for i := 1; i < n; i++ {
		// Slide values[i] left past every greater element of the prefix.
		for j := i; j > 0; j-- {
			o.OnCompare(j-1, j)
			if !less(j, j-1) {
				break
			}
			swap(j-1, j)
			o.OnSwap(j-1, j)
		}
	}
}

func sliceLess[T cmp.Ordered](values []T) func(i, j int) bool {
	return func(i, j int) bool { return values[i] < values[j] }
}

func sliceSwap[T any](values []T) func(i, j int) {
	return func(i, j int) { values[i], values[j] = values[j], values[i] }
}

// arrayLess and arraySwap bind the core onto a growarray live prefix.
// Indices come from the core and are always within [0, Len()), so the
// accessor errors cannot fire here.
func arrayLess[T cmp.Ordered](a *growarray.Array[T]) func(i, j int) bool {
	return func(i, j int) bool {
		vi, _ := a.Get(i)
		vj, _ := a.Get(j)

		return vi < vj
	}
}

func arraySwap[T cmp.Ordered](a *growarray.Array[T]) func(i, j int) {
	return func(i, j int) {
		vi, _ := a.Get(i)
		vj, _ := a.Get(j)
		_ = a.Set(i, vj)
		_ = a.Set(j, vi)
	}
}
