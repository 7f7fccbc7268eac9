// Package seqops implements in-place reversal, rotation, extrema and
// concatenation over generic slices.
package seqops

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrEmptySequence is returned by Max and Min on empty input.
var ErrEmptySequence = errors.New("seqops: empty sequence")

// Reverse flips values in place with a two-index walk.
// Complexity: O(n) time, O(1) space.
func Reverse[T any](values []T) {
	reverseRange(values, 0, len(values)-1)
}

// RotateLeft rotates values k positions toward the front, in place, via
// the reversal algorithm: reverse the first k, reverse the remainder,
// reverse the whole. k is normalized modulo len(values); negative k
// rotates the other way; empty input is a no-op.
// Complexity: O(n) time, O(1) space.
func RotateLeft[T any](values []T, k int) {
	n := len(values)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	reverseRange(values, 0, k-1)
	reverseRange(values, k, n-1)
	reverseRange(values, 0, n-1)
}

// RotateRight rotates values k positions toward the end; the mirror of
// RotateLeft.
// Complexity: O(n) time, O(1) space.
func RotateRight[T any](values []T, k int) {
	n := len(values)
	if n == 0 {
		return
	}
	RotateLeft(values, n-((k%n)+n)%n)
}

// Max returns the largest element, or ErrEmptySequence.
// Complexity: O(n)
func Max[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: max", ErrEmptySequence)
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Min returns the smallest element, or ErrEmptySequence.
// Complexity: O(n)
func Min[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: min", ErrEmptySequence)
	}
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Concat copies a followed by b into a fresh slice; neither input is
// mutated or aliased by the result.
// Complexity: O(n + m) time and space.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// reverseRange flips values[start..end] inclusive.
func reverseRange[T any](values []T, start, end int) {
	for start < end {
		values[start], values[end] = values[end], values[start]
		start++
		end--
	}
}
