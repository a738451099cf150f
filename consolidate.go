package fibheap

import "math"

var logPhi = math.Log((1 + math.Sqrt(5)) / 2)

// degreeTableSize returns ⌈log_φ(size)⌉ + 1, the number of slots needed so
// that every root's degree fits, plus one slack slot for the merge that
// can occur while scanning the last root. size must be positive; callers
// guard the size == 0 case (an empty heap never consolidates).
func degreeTableSize(size int) int {
	d := int(math.Ceil(math.Log(float64(size))/logPhi)) + 1
	if d < 1 {
		d = 1
	}
	return d
}

// consolidate merges root trees of equal degree until at most one root of
// each degree remains, then recomputes min from the surviving roots. It is
// invoked only when the heap is non-empty, after a root has just been
// removed from the ring that h.min currently designates as a starting
// point.
func (h *Heap[E]) consolidate() {
	table := make([]*node[E], degreeTableSize(h.size))

	// Each iteration snapshots r.right into next before any linking
	// touches r's sibling pointers, so the traversal visits exactly the
	// roots list's starting length of nodes in their original order even
	// though nodes are being spliced out of the ring as we go.
	r := h.min
	for remaining := h.roots; remaining > 0; remaining-- {
		next := r.right
		d := r.degree
		for d < len(table) && table[d] != nil {
			s := table[d]
			if h.cmp(s.element, r.element) < 0 {
				r, s = s, r
			}
			h.link(s, r)
			table[d] = nil
			d++
		}
		for d >= len(table) {
			table = append(table, nil)
		}
		table[d] = r
		r = next
	}

	h.min = nil
	h.roots = 0
	for _, r := range table {
		if r == nil {
			continue
		}
		r.left, r.right = r, r
		if h.min == nil {
			h.min = r
		} else {
			concatLists(h.min, r)
			if h.cmp(r.element, h.min.element) < 0 {
				h.min = r
			}
		}
		h.roots++
	}
}

// link removes s from the root list and makes it a child of r.
func (h *Heap[E]) link(s, r *node[E]) {
	s.isolate()
	r.child = concatLists(r.child, s)
	r.degree++
	s.parent = r
	s.marked = false
}
