// Package seqsearch provides linear and binary search over generic
// sequences, plus a bridge onto growarray.Array.
//
// What
//
//   - Linear scans a slice front to back and returns the first matching
//     index: O(n), works on any comparable element, no ordering required.
//   - Binary and BinaryRecursive divide a sorted interval in half each
//     step: O(log n), elements must be in ascending order. The input order
//     is validated up front (O(n)) and rejected with ErrNotSorted;
//     WithoutOrderCheck skips the validation when the caller guarantees
//     order.
//   - Count returns the number of occurrences of a value.
//   - InArray runs Linear against the live prefix of a growarray.Array
//     without copying it out.
//
// Why
//
//	Linear vs. binary search is the classic access-pattern trade:
//	unordered data costs O(n) per lookup, while keeping the sequence
//	sorted buys O(log n). Returning an index (not a value) keeps the
//	result useful for follow-up mutation on the owning container.
//
// Complexity (n = len(values))
//
//   - Linear, Count, InArray:    O(n) time, O(1) space
//   - Binary:                    O(log n) time, O(1) space
//   - BinaryRecursive:           O(log n) time, O(log n) stack
//   - Order validation:          O(n), once per Binary* call unless skipped
//
// Usage
//
//	i, err := seqsearch.Binary([]int{2, 4, 6, 8}, 6)
//	if err != nil {
//	    // ErrNotFound or ErrNotSorted
//	}
//	_ = i // 2
//
// Errors
//
//   - ErrNotFound   if the target is absent (empty input always misses).
//   - ErrNotSorted  if a Binary* input is not in ascending order.
package seqsearch
