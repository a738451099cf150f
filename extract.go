package fibheap

// ExtractMin removes and returns a handle to the minimum element, or false
// if the heap is empty. Running time O(log n) amortized.
func (h *Heap[E]) ExtractMin() (Handle[E], bool) {
	if h.min == nil {
		return nil, false
	}
	z := h.min
	k := z.degree

	// Promote every child of z into the root list. Each promoted child
	// has its mark cleared here, as soon as it becomes a root: leaving a
	// promoted node marked would violate the rule that only non-root
	// nodes may be marked, and could misfire a later cascading cut if
	// the node is ever reparented.
	if z.child != nil {
		for c, first := z.child, z.child; ; {
			next := c.right
			c.parent = nil
			c.marked = false
			if next == first {
				break
			}
			c = next
		}
		concatLists(z, z.child)
		z.child = nil
	}

	// next is the node that used to sit at z.right before z is removed
	// from its ring; isolate reports nil only when that ring held
	// nothing but z, i.e. the heap is now empty.
	next := z.isolate()
	h.size--

	if next == nil {
		h.min = nil
		h.roots = 0
		return z, true
	}

	h.min = next
	h.roots += k - 1
	h.consolidate()
	return z, true
}

// Delete removes the node identified by handle from the heap, wherever it
// sits in the forest, and returns its handle. Running time O(log n)
// amortized. Returns ErrWrongHandleKind if handle was not produced by this
// heap.
func (h *Heap[E]) Delete(handle Handle[E]) (Handle[E], error) {
	n, err := h.resolve(handle)
	if err != nil {
		return nil, err
	}
	h.rearrange(n, true)
	removed, _ := h.ExtractMin()
	return removed, nil
}
