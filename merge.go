package fibheap

import "reflect"

// Merge absorbs other into h in O(1) amortized time: the two root lists
// are spliced together directly, without touching any individual node.
// other is left empty afterward. Merging a nil or already-empty other is a
// no-op. Merging a heap built with an incompatible comparator is rejected
// with ErrWrongHeapKind whenever that can be detected cheaply; comparator
// compatibility is checked by function-pointer identity, so two distinct
// closures implementing the same order may still be rejected — callers
// that share a single comparator value across heaps avoid this.
func (h *Heap[E]) Merge(other *Heap[E]) error {
	if other == nil || other.IsEmpty() {
		return nil
	}
	if !sameComparator(h.cmp, other.cmp) {
		return ErrWrongHeapKind
	}

	h.min = concatLists(h.min, other.min)
	h.size += other.size
	h.roots += other.roots
	if h.min == nil || h.cmp(other.min.element, h.min.element) < 0 {
		h.min = other.min
	}

	other.Clear()
	return nil
}

func sameComparator[E any](a, b Comparator[E]) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
