// Package linkedseq implements a generic singly linked sequence with
// pointer-based mutation and in-place reversal.
package linkedseq

import (
	"errors"
	"fmt"
)

// ErrValueNotFound is returned when a target value is absent from the list.
var ErrValueNotFound = errors.New("linkedseq: value not found")

// Node holds one value and the link to its successor. A node is exclusively
// owned by its predecessor; the list's head owns the first node.
type Node[T comparable] struct {
	// Value is the payload carried by this node.
	Value T

	next *Node[T]
}

// NewNode allocates a single node holding v with no successor.
// Complexity: O(1)
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the successor node, or nil at the end of the chain.
// Complexity: O(1)
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly linked sequence of T. The zero value is an empty,
// usable list; New additionally allows seeding from initial values.
//
// List is not safe for concurrent use; callers supply external
// synchronization when sharing one instance across goroutines.
type List[T comparable] struct {
	head *Node[T]
}

// New creates a list holding the given values in order.
// Complexity: O(len(values))
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	// Append by walking a moving tail; avoids the O(n²) of repeated InsertEnd.
	var tail *Node[T]
	for _, v := range values {
		node := NewNode(v)
		if tail == nil {
			l.head = node
		} else {
			tail.next = node
		}
		tail = node
	}

	return l
}

// IsEmpty reports whether the list has no nodes.
// Complexity: O(1)
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Front returns the head value, or (zero, false) on an empty list.
// Complexity: O(1)
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.Value, true
}

// InsertFront makes a new node holding v the head; its successor is the
// prior head, or the terminal nil if the list was empty.
// Complexity: O(1)
func (l *List[T]) InsertFront(v T) {
	node := NewNode(v)
	node.next = l.head
	l.head = node
}

// InsertEnd traverses to the last node and links a new node holding v
// after it; on an empty list the new node becomes the head directly,
// never traversing a missing chain.
// Complexity: O(n)
func (l *List[T]) InsertEnd(v T) {
	node := NewNode(v)
	if l.head == nil {
		l.head = node
		return
	}
	curr := l.head
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = node
}

// InsertAfter links a new node holding v between the first node equal to
// target and its former successor. Returns ErrValueNotFound if no node
// holds target (an empty list always reports not found).
// Complexity: O(n)
func (l *List[T]) InsertAfter(target, v T) error {
	curr := l.head
	for curr != nil && curr.Value != target {
		curr = curr.next
	}
	if curr == nil {
		return fmt.Errorf("%w: insert after %v", ErrValueNotFound, target)
	}
	node := NewNode(v)
	node.next = curr.next
	curr.next = node

	return nil
}

// Delete removes the first node holding v, relinking its predecessor
// around it (or reassigning head when the head node matches). The removed
// node is unlinked immediately and never reachable from the list again.
// Returns ErrValueNotFound if v is absent or the list is empty.
// Complexity: O(n)
func (l *List[T]) Delete(v T) error {
	if l.head == nil {
		return fmt.Errorf("%w: delete %v from empty list", ErrValueNotFound, v)
	}

	// Head removal: the second node becomes head.
	if l.head.Value == v {
		removed := l.head
		l.head = removed.next
		removed.next = nil

		return nil
	}

	// Interior/tail removal: stop at the predecessor of the match.
	curr := l.head
	for curr.next != nil && curr.next.Value != v {
		curr = curr.next
	}
	if curr.next == nil {
		return fmt.Errorf("%w: delete %v", ErrValueNotFound, v)
	}
	removed := curr.next
	curr.next = removed.next
	removed.next = nil

	return nil
}

// Search returns the first node holding v, or (nil, false) when absent.
// No mutation.
// Complexity: O(n)
func (l *List[T]) Search(v T) (*Node[T], bool) {
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.Value == v {
			return curr, true
		}
	}

	return nil, false
}

// Length counts nodes from head to the terminal nil. The count is
// recomputed on every call; no cached length exists to drift.
// Complexity: O(n)
func (l *List[T]) Length() int {
	count := 0
	for curr := l.head; curr != nil; curr = curr.next {
		count++
	}

	return count
}

// Reverse rewrites every node's link so the chain runs in the opposite
// order and updates head to the former tail. The three-pointer walk
// (previous, current, next-to-visit) keeps every node reachable at each
// step of the traversal.
// Complexity: O(n) time, O(1) auxiliary space.
func (l *List[T]) Reverse() {
	var prev *Node[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head = prev
}

// Values returns the element order as a slice; empty list yields an empty
// (non-nil) slice.
// Complexity: O(n)
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Length())
	for curr := l.head; curr != nil; curr = curr.next {
		out = append(out, curr.Value)
	}

	return out
}

// Each visits every value in order. If fn returns an error the traversal
// aborts and the error is returned wrapped with the aborting position.
// Complexity: O(n)
func (l *List[T]) Each(fn func(v T) error) error {
	i := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if err := fn(curr.Value); err != nil {
			return fmt.Errorf("linkedseq: visit aborted at position %d: %w", i, err)
		}
		i++
	}

	return nil
}

// Destroy walks the chain from head, unlinking each node exactly once,
// then clears head. Calling Destroy on an empty or already destroyed list
// is a no-op.
// Complexity: O(n)
func (l *List[T]) Destroy() {
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
	}
	l.head = nil
}
