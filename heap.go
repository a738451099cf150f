// Package fibheap implements a generic Fibonacci heap: a mergeable priority
// queue backed by a forest of heap-ordered trees linked by circular doubly
// linked sibling lists. Insert, Min, Merge, and DecreaseKey run in O(1)
// amortized time; ExtractMin and Delete run in O(log n) amortized time.
//
// The heap is a sequential data structure: a single instance must be used
// from one logical owner at a time, and the package performs no internal
// synchronization.
package fibheap

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

var nextHeapID uint64

// Heap is a Fibonacci heap over elements of type E, ordered by cmp.
// The zero value is not usable; construct one with New or NewOrdered.
type Heap[E any] struct {
	id    uint64
	min   *node[E]
	size  int
	roots int
	cmp   Comparator[E]
}

// New returns an empty heap ordered by cmp.
func New[E any](cmp Comparator[E]) *Heap[E] {
	return &Heap[E]{
		id:  atomic.AddUint64(&nextHeapID, 1),
		cmp: cmp,
	}
}

// NewOrdered returns an empty heap over a naturally ordered element type,
// using the built-in relational operators as its comparator.
func NewOrdered[E constraints.Ordered]() *Heap[E] {
	return New[E](func(a, b E) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[E]) IsEmpty() bool {
	return h.size == 0
}

// Size returns the number of elements currently in the heap.
func (h *Heap[E]) Size() int {
	return h.size
}

// RootCount returns the number of trees in the root list.
func (h *Heap[E]) RootCount() int {
	return h.roots
}

// Min returns a handle to the minimum element, or false if the heap is
// empty. Running time O(1).
func (h *Heap[E]) Min() (Handle[E], bool) {
	if h.min == nil {
		return nil, false
	}
	return h.min, true
}

// Insert adds element to the heap and returns a handle to its node.
// Running time O(1) amortized.
func (h *Heap[E]) Insert(element E) Handle[E] {
	n := newNode(element, h.id)
	h.size++
	h.roots++
	if h.min == nil {
		h.min = n
		return n
	}
	concatLists(h.min, n)
	if h.cmp(n.element, h.min.element) < 0 {
		h.min = n
	}
	return n
}

// Clear drops every node from the heap, returning it to its empty state.
// Running time O(1) from the heap's point of view; freeing the individual
// nodes is left to the garbage collector.
func (h *Heap[E]) Clear() {
	h.min = nil
	h.size = 0
	h.roots = 0
}
