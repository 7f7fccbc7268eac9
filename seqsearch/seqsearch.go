// Package seqsearch implements linear and binary search over generic
// sequences.
package seqsearch

import (
	"cmp"
	"fmt"

	"github.com/ostrikov/seqcore/growarray"
)

// Linear scans values front to back and returns the index of the first
// element equal to target, or ErrNotFound.
// Complexity: O(n)
func Linear[T comparable](values []T, target T) (int, error) {
	for i, v := range values {
		if v == target {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
}

// Count returns the number of elements equal to target.
// Complexity: O(n)
func Count[T comparable](values []T, target T) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}

	return n
}

// Binary searches an ascending slice by halving the candidate interval and
// returns an index holding target, or ErrNotFound. Unless disabled via
// WithoutOrderCheck, the input order is validated first and unordered
// input is rejected with ErrNotSorted.
// Complexity: O(log n) search, O(n) validation.
func Binary[T cmp.Ordered](values []T, target T, opts ...Option) (int, error) {
	if err := checkOrder(values, opts); err != nil {
		return -1, err
	}

	left, right := 0, len(values)-1
	for left <= right {
		mid := left + (right-left)/2 // midpoint without overflow
		switch {
		case values[mid] == target:
			return mid, nil
		case values[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
}

// BinaryRecursive is the recursive variant of Binary with the same
// contract.
// Complexity: O(log n) time, O(log n) stack.
func BinaryRecursive[T cmp.Ordered](values []T, target T, opts ...Option) (int, error) {
	if err := checkOrder(values, opts); err != nil {
		return -1, err
	}

	return binaryRec(values, 0, len(values)-1, target)
}

func binaryRec[T cmp.Ordered](values []T, left, right int, target T) (int, error) {
	if left > right {
		return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
	}
	mid := left + (right-left)/2
	switch {
	case values[mid] == target:
		return mid, nil
	case values[mid] < target:
		return binaryRec(values, mid+1, right, target)
	default:
		return binaryRec(values, left, mid-1, target)
	}
}

// InArray runs Linear against the live prefix of a growarray.Array without
// copying it out. An array consumed by Destroy reports ErrNotFound.
// Complexity: O(n)
func InArray[T comparable](a *growarray.Array[T], target T) (int, error) {
	for i := 0; i < a.Len(); i++ {
		v, err := a.Get(i)
		if err != nil {
			return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
		}
		if v == target {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrNotFound, target)
}

// checkOrder applies options and validates ascending order unless skipped.
func checkOrder[T cmp.Ordered](values []T, opts []Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SkipOrderCheck {
		return nil
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return fmt.Errorf("%w: descent at index %d", ErrNotSorted, i)
		}
	}

	return nil
}
