// Package seqsort provides tunable options for the elementary sorts.
package seqsort

// Option configures sort behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks observing the work a sort performs.
// All hooks are read-only observers; they never alter ordering.
type Options struct {
	// OnCompare is called for every element comparison with the indices
	// being compared.
	OnCompare func(i, j int)

	// OnSwap is called for every swap with the indices exchanged.
	OnSwap func(i, j int)

	// OnPass is called after each outer pass with the 1-based pass number.
	OnPass func(pass int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnCompare: func(int, int) {},
		OnSwap:    func(int, int) {},
		OnPass:    func(int) {},
	}
}

// WithOnCompare registers a callback to run on each comparison.
func WithOnCompare(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback to run on each swap.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnPass registers a callback to run after each outer pass.
func WithOnPass(fn func(pass int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
