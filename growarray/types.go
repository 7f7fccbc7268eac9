// Package growarray provides sentinel errors and tunable options
// for the generic growable array.
package growarray

import "errors"

// Sentinel errors for growable-array operations.
var (
	// ErrIndexOutOfRange is returned when an index falls outside the live prefix.
	ErrIndexOutOfRange = errors.New("growarray: index out of range")

	// ErrDestroyed is returned when an operation is invoked after Destroy.
	ErrDestroyed = errors.New("growarray: array destroyed")

	// ErrCapacityOverflow is returned when doubling the capacity would
	// overflow int. The array remains in its prior valid state.
	ErrCapacityOverflow = errors.New("growarray: capacity overflow")
)

// Option configures Array behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks observing capacity changes.
// The zero value means "no observation"; hooks never alter behavior.
type Options struct {
	// OnGrow is called after a successful growth reallocation
	// with the old and new capacities.
	OnGrow func(oldCap, newCap int)

	// OnShrink is called after a successful shrink reallocation
	// with the old and new capacities.
	OnShrink func(oldCap, newCap int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnGrow:   func(int, int) {},
		OnShrink: func(int, int) {},
	}
}

// WithOnGrow registers a callback to run after each growth reallocation.
func WithOnGrow(fn func(oldCap, newCap int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGrow = fn
		}
	}
}

// WithOnShrink registers a callback to run after each shrink reallocation.
func WithOnShrink(fn func(oldCap, newCap int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnShrink = fn
		}
	}
}
