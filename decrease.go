package fibheap

// resolve type-asserts a Handle back to this heap's own node type and
// verifies it was minted by this heap instance.
func (h *Heap[E]) resolve(handle Handle[E]) (*node[E], error) {
	n, ok := handle.(*node[E])
	if !ok || n.heapID != h.id {
		return nil, ErrWrongHandleKind
	}
	return n, nil
}

// DecreaseKey replaces n's element with replacement, which must compare
// less than or equal to n's current element. Running time O(1) amortized.
func (h *Heap[E]) DecreaseKey(handle Handle[E], replacement E) error {
	n, err := h.resolve(handle)
	if err != nil {
		return err
	}
	if h.cmp(replacement, n.element) > 0 {
		return ErrKeyNotDecreased
	}
	n.element = replacement
	h.rearrange(n, false)
	return nil
}

// rearrange implements the cut/cascading-cut/min-update logic shared by
// DecreaseKey and Delete. When force is true, the comparator is bypassed
// entirely: n is treated as though it held -∞, guaranteeing it is cut to
// the root list and becomes the new minimum, so a subsequent ExtractMin
// removes exactly this node.
func (h *Heap[E]) rearrange(n *node[E], force bool) {
	if p := n.parent; p != nil && (force || h.cmp(n.element, p.element) < 0) {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if force || h.cmp(n.element, h.min.element) < 0 {
		h.min = n
	}
}
