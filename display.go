package fibheap

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits every node reachable from the root list in depth-first order,
// calling visit with a read-only handle and the node's depth (roots are
// depth 0). Walk reads no state other than public handles and never
// mutates the heap; it is the hook the display/logging collaborator is
// built on.
func (h *Heap[E]) Walk(visit func(handle Handle[E], depth int)) {
	if h.min == nil {
		return
	}
	walkRing(h.min, 0, visit)
}

func walkRing[E any](start *node[E], depth int, visit func(Handle[E], int)) {
	for n, first := start, start; ; {
		visit(n, depth)
		if n.child != nil {
			walkRing(n.child, depth+1, visit)
		}
		n = n.right
		if n == first {
			return
		}
	}
}

// Dump writes the advisory representation of every node in the forest to
// w, one per line, indented by two spaces per tree depth.
func (h *Heap[E]) Dump(w io.Writer) {
	h.Walk(func(handle Handle[E], depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), handle.String())
	})
}
