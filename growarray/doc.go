// Package growarray provides a generic growable array: a contiguous,
// index-addressable sequence with automatic capacity management and an
// explicit, testable grow/shrink policy.
//
// What
//
//   - Array[T] owns a single contiguous buffer of capacity slots; the first
//     Len() slots hold live elements in insertion order.
//   - Append, Insert, Delete, Get, Set mutate and query the live prefix.
//   - Capacity changes only through the internal resize step:
//   - grow: when Len() == Cap() immediately before an insertion, the
//     buffer is reallocated to exactly 2 × Cap(), then the element is
//     stored (grow-before-insert; no partial mutation on failure).
//   - shrink: after a deletion, when Cap() > 4 and Len() < Cap()/4, the
//     buffer is reallocated to exactly Cap()/2. Shrink is best-effort
//     and never reported as an error.
//   - Destroy releases the buffer exactly once; later operations return
//     ErrDestroyed, and a second Destroy is a no-op.
//   - Optional hooks fire after each successful resize:
//   - WithOnGrow(fn)   — observe (oldCap, newCap) on growth
//   - WithOnShrink(fn) — observe (oldCap, newCap) on shrink
//
// Why
//
//   - Doubling on growth amortizes insertion to O(1) average even though an
//     individual resize copies the whole buffer.
//   - Halving only below one-quarter occupancy (not one-half) prevents
//     oscillation: alternating Append/Delete at exactly half occupancy must
//     never thrash between two capacities. The asymmetric threshold is part
//     of the public contract, not an implementation detail.
//
// Invariants
//
//   - 0 <= Len() <= Cap() after every operation.
//   - Slots [0, Len()) are initialized and meaningful; slots [Len(), Cap())
//     are allocated but not meaningful (zeroed on deletion so the array
//     retains no stale references).
//   - Capacity never shrinks while Len() >= Cap()/4 and never grows except
//     exactly when Len() == Cap() immediately before an insertion.
//
// Complexity (n = Len())
//
//   - Get, Set:        O(1)
//   - Append:          O(1) amortized, O(n) worst case on resize
//   - Insert, Delete:  O(n) shifting, plus amortized O(1) for resize
//   - Destroy:         O(1)
//
// Concurrency
//
//	Array is single-threaded by contract: no internal locking, no operation
//	suspends, and no instance is safe for concurrent use from multiple
//	goroutines without external synchronization supplied by the caller.
//
// Usage
//
//	arr := growarray.New[int](2)
//	_ = arr.Append(10)
//	_ = arr.Append(20)
//	_ = arr.Append(30) // grow: capacity 2 → 4
//	v, err := arr.Get(2)
//	if err != nil {
//	    // handle ErrIndexOutOfRange / ErrDestroyed
//	}
//	_ = v
//	arr.Destroy()
//
// Errors
//
//   - ErrIndexOutOfRange   if an index falls outside the live prefix
//     (outside [0, Len()] for Insert, outside [0, Len()) otherwise).
//   - ErrDestroyed         if the array is used after Destroy.
//   - ErrCapacityOverflow  if a growth doubling would overflow int; the
//     array remains in its prior valid state.
package growarray
