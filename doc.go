// Package seqcore is a compact toolkit of foundational sequence containers
// and the elementary algorithms that operate on them.
//
// 🚀 What is seqcore?
//
//	A small, dependency-light library that brings together:
//		• growarray  — a generic growable array with an explicit, testable
//		               capacity doubling/halving policy
//		• linkedseq  — a generic singly linked sequence with pointer-based
//		               mutation and in-place reversal
//		• seqsearch  — linear and binary search over sequences
//		• seqsort    — bubble, selection and insertion sorts with step hooks
//		• seqops     — reverse, rotate, min/max and sorted-merge primitives
//
// ✨ Why choose seqcore?
//
//   - Contract-first – every operation states its failure modes and its
//     complexity, and the resize policy is part of the public contract
//   - Hook-friendly – OnGrow, OnShrink, OnSwap and friends let callers
//     observe each structural step without the core ever printing a byte
//   - Pure Go – no cgo, no hidden deps
//   - Single-owner resources – Destroy consumes; double release is inert,
//     not undefined
//
// The two containers implement the same abstract sequence contract with
// deliberately contrasting cost models:
//
//	growarray: contiguous buffer   — get O(1), append O(1) amortized
//	linkedseq: pointer chain       — insert_front O(1), everything else O(n)
//
// Quick ASCII example:
//
//	growarray            linkedseq
//	[10|20|30|··]        10 → 20 → 30 → ∅
//	 size=3 cap=4         head        terminal
//
// None of the containers is safe for concurrent use of a single instance;
// callers provide external synchronization when sharing one across
// goroutines. See each package's doc.go for the full contract.
//
//	go get github.com/ostrikov/seqcore
package seqcore
