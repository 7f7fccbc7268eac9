// Package seqops provides small in-place slice primitives that round out
// the sequence toolkit: reversal, rotation, extrema and concatenation.
//
// What
//
//   - Reverse flips a slice in place with a two-index walk.
//   - RotateLeft / RotateRight rotate by k positions using the reversal
//     algorithm (three sub-reversals), so the rotation is in place and
//     O(1) auxiliary regardless of k; k is normalized modulo the length
//     and an empty slice is a no-op.
//   - Max / Min return the extremum of a non-empty slice, or
//     ErrEmptySequence.
//   - Concat copies two slices into a fresh one, a followed by b.
//
// Complexity (n = len(values))
//
//   - Reverse, RotateLeft, RotateRight, Max, Min:  O(n) time, O(1) space
//   - Concat:                                      O(n + m) time and space
//
// Usage
//
//	v := []int{1, 2, 3, 4, 5}
//	seqops.RotateLeft(v, 2) // [3 4 5 1 2]
//	seqops.Reverse(v)       // [2 1 5 4 3]
//	max, err := seqops.Max(v)
//	if err != nil {
//	    // ErrEmptySequence
//	}
//	_ = max
//
// Errors
//
//   - ErrEmptySequence  from Max/Min on an empty slice; every other
//     operation treats empty input as a no-op.
package seqops
