// Package seqsearch provides sentinel errors and tunable options
// for sequence search.
package seqsearch

import "errors"

// Sentinel errors for search operations.
var (
	// ErrNotFound is returned when the target value is absent.
	ErrNotFound = errors.New("seqsearch: value not found")

	// ErrNotSorted is returned when a binary search input is not in
	// ascending order.
	ErrNotSorted = errors.New("seqsearch: sequence not sorted ascending")
)

// Option configures binary search behavior via functional arguments.
type Option func(*Options)

// Options holds binary search parameters.
type Options struct {
	// SkipOrderCheck disables the O(n) ascending-order validation.
	// Only set when the caller guarantees sortedness; binary search on
	// unordered input returns arbitrary misses, not an error.
	SkipOrderCheck bool
}

// DefaultOptions returns Options with order validation enabled.
func DefaultOptions() Options {
	return Options{SkipOrderCheck: false}
}

// WithoutOrderCheck skips the ascending-order validation.
func WithoutOrderCheck() Option {
	return func(o *Options) { o.SkipOrderCheck = true }
}
