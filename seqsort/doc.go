// Package seqsort provides the three elementary in-place sorts — bubble,
// selection and insertion — over generic ordered sequences, with step
// hooks for callers that want to render or count the work performed.
//
// What
//
//   - Bubble repeatedly swaps adjacent out-of-order pairs; a pass with no
//     swaps ends the sort early (the swapped-flag optimization).
//   - Selection repeatedly moves the minimum of the unsorted suffix to its
//     final position; at most n−1 swaps overall.
//   - Insertion grows a sorted prefix by sliding each element left into
//     place; O(n) on already-sorted input.
//   - IsSorted reports ascending order.
//   - BubbleArray, SelectionArray, InsertionArray sort the live prefix of
//     a growarray.Array in place.
//   - Hooks (all optional, all no-ops by default):
//   - WithOnCompare(fn) — fires per element comparison with both indices
//   - WithOnSwap(fn)    — fires per swap/placement with both indices
//   - WithOnPass(fn)    — fires after each outer pass (bubble/selection)
//
// Why
//
//	These are the canonical teaching sorts: all O(n²) worst case, yet each
//	makes a different trade (bubble's early exit, selection's minimal
//	swaps, insertion's adaptivity). The hooks replace print-tracing inside
//	the algorithm — the package itself never performs I/O; a demo layer
//	renders the steps.
//
// Complexity (n = len(values))
//
//   - Bubble:     O(n²) worst/average, O(n) best (sorted input)
//   - Selection:  O(n²) in all cases, at most n−1 swaps
//   - Insertion:  O(n²) worst/average, O(n) best
//   - All three:  O(1) auxiliary space, in place
//
// Usage
//
//	values := []int{64, 34, 25, 12}
//	seqsort.Bubble(values, seqsort.WithOnSwap(func(i, j int) { /* render */ }))
//	_ = seqsort.IsSorted(values) // true
//
// Errors
//
//	None: sorting a nil or single-element slice is a no-op, and the
//	Array variants report nothing on a destroyed array (its live prefix
//	is empty).
package seqsort
