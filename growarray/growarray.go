// Package growarray implements a generic growable array with capacity
// doubling on growth and best-effort halving below quarter occupancy.
package growarray

import "math"

// Array is a contiguous, index-addressable sequence of T with automatic
// capacity management. The zero value is not usable; construct with New.
//
// Array is not safe for concurrent use; callers supply external
// synchronization when sharing one instance across goroutines.
type Array[T any] struct {
	data      []T // len(data) == capacity; [0,size) live
	size      int
	destroyed bool
	opts      Options
}

// New creates an empty Array with the requested initial capacity,
// applying any number of functional Options.
// Capacities below 1 are clamped to 1.
// Complexity: O(initialCapacity) for the allocation.
func New[T any](initialCapacity int, opts ...Option) *Array[T] {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Array[T]{
		data: make([]T, initialCapacity),
		opts: o,
	}
}

// Len returns the number of live elements.
// Complexity: O(1)
func (a *Array[T]) Len() int { return a.size }

// Cap returns the total allocated capacity. Zero after Destroy.
// Complexity: O(1)
func (a *Array[T]) Cap() int { return len(a.data) }

// Append inserts v at the end. If the array is full, the buffer is first
// reallocated to twice its capacity, then v is stored.
// Returns ErrDestroyed after Destroy, or ErrCapacityOverflow if the
// doubling would overflow int; on failure no mutation is observable.
// Complexity: O(1) amortized, O(n) worst case on resize.
func (a *Array[T]) Append(v T) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if err := a.growIfFull(); err != nil {
		return err
	}
	a.data[a.size] = v
	a.size++

	return nil
}

// Insert places v at index i in [0, Len()], shifting all elements at or
// after i one slot toward the end. Bounds are checked before any resize,
// so ErrIndexOutOfRange is independent of allocation outcome.
// Complexity: O(n) shifting, plus amortized O(1) for resize.
func (a *Array[T]) Insert(i int, v T) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i > a.size {
		return ErrIndexOutOfRange
	}
	if err := a.growIfFull(); err != nil {
		return err
	}
	// Shift [i, size) right by one; copy handles the overlap.
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++

	return nil
}

// Delete removes the element at index i in [0, Len()), shifting subsequent
// elements one slot toward the front. Afterwards, if capacity exceeds 4 and
// occupancy has fallen below one quarter, the capacity is halved; the
// shrink is best-effort and never reported as an error.
// Complexity: O(n).
func (a *Array[T]) Delete(i int) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	a.size--
	// Zero the vacated slot so the array retains no stale reference.
	var zero T
	a.data[a.size] = zero

	a.shrinkIfSparse()

	return nil
}

// Get returns the element at index i in [0, Len()) without mutation.
// Complexity: O(1)
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if a.destroyed {
		return zero, ErrDestroyed
	}
	if i < 0 || i >= a.size {
		return zero, ErrIndexOutOfRange
	}

	return a.data[i], nil
}

// Set overwrites the element at index i in [0, Len()) in place.
// Complexity: O(1)
func (a *Array[T]) Set(i int, v T) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	a.data[i] = v

	return nil
}

// Values returns a copy of the live prefix in insertion order.
// Returns nil after Destroy.
// Complexity: O(n)
func (a *Array[T]) Values() []T {
	if a.destroyed {
		return nil
	}
	out := make([]T, a.size)
	copy(out, a.data[:a.size])

	return out
}

// Destroy releases the buffer exactly once. Subsequent operations return
// ErrDestroyed; calling Destroy again is a no-op.
// Complexity: O(1)
func (a *Array[T]) Destroy() {
	if a.destroyed {
		return
	}
	a.data = nil
	a.size = 0
	a.destroyed = true
}

// growIfFull reallocates to exactly 2×capacity when size == capacity.
// The old buffer is replaced only after the new one is populated, so a
// failed growth leaves the array in its prior valid state.
func (a *Array[T]) growIfFull() error {
	capacity := len(a.data)
	if a.size < capacity {
		return nil
	}
	if capacity > math.MaxInt/2 {
		return ErrCapacityOverflow
	}
	a.resize(capacity * 2)
	a.opts.OnGrow(capacity, len(a.data))

	return nil
}

// shrinkIfSparse halves the capacity when capacity > 4 and
// size < capacity/4. The asymmetric quarter threshold prevents
// thrashing under alternating Append/Delete at half occupancy.
func (a *Array[T]) shrinkIfSparse() {
	capacity := len(a.data)
	if capacity <= 4 || a.size >= capacity/4 {
		return
	}
	a.resize(capacity / 2)
	a.opts.OnShrink(capacity, len(a.data))
}

// resize swaps the buffer for one of newCapacity slots, preserving the
// live prefix. newCapacity must be >= size.
// Complexity: O(n) — full copy.
func (a *Array[T]) resize(newCapacity int) {
	next := make([]T, newCapacity)
	copy(next, a.data[:a.size])
	a.data = next
}
