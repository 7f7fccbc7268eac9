// Package linkedseq provides a generic singly linked sequence: a chain of
// individually owned nodes, each holding one value and a forward link to
// its successor.
//
// What
//
//   - List[T] owns its chain transitively from head; each node exclusively
//     owns its successor, and no node is ever reachable from two places.
//   - InsertFront, InsertEnd, InsertAfter grow the chain; Delete removes
//     the first node holding a given value, special-casing head removal.
//   - Search returns a reference to the first matching node; Length counts
//     nodes on every call (no cached count is maintained, so the count can
//     never drift from the chain).
//   - Reverse rewrites every link in place with a three-pointer walk, so no
//     node is ever unreachable mid-traversal.
//   - Destroy unlinks every node exactly once and clears head; calling it
//     on an empty (or already destroyed) list is a no-op.
//
// Why
//
//   - O(1) insertion at a known position without any reallocation or
//     element shifting — the contrasting cost model to a growable array.
//   - Ownership transfers through unlinking, never duplicates, which is
//     what makes "release exactly once" trivially safe here.
//
// Invariants
//
//   - Following next links from head reaches the terminal nil in exactly
//     Length() steps, with no cycles.
//   - A node unlinked by Delete or Destroy has its link cleared and is
//     never reachable from the list again.
//
// Complexity (n = Length())
//
//   - InsertFront:                    O(1)
//   - InsertEnd, InsertAfter, Delete: O(n)
//   - Search, Length, Reverse, Each:  O(n)
//   - Reverse uses O(1) auxiliary space.
//
// Concurrency
//
//	List is single-threaded by contract: no internal locking, and no
//	instance is safe for concurrent use from multiple goroutines without
//	external synchronization supplied by the caller.
//
// Usage
//
//	l := linkedseq.New[int]()
//	l.InsertFront(5)
//	l.InsertEnd(9)          // [5 9]
//	l.Reverse()             // [9 5]
//	if node, ok := l.Search(9); ok {
//	    _ = node.Value
//	}
//	if err := l.Delete(42); err != nil {
//	    // ErrValueNotFound: 42 is absent
//	}
//	l.Destroy()
//
// Errors
//
//   - ErrValueNotFound  if Delete or InsertAfter finds no node holding the
//     target value (an empty list always reports this, never faults).
//   - Each returns the visiting callback's error, wrapped with the index
//     at which the visit aborted.
package linkedseq
