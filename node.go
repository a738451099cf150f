package fibheap

import "fmt"

// Comparator orders two elements. It must return a negative number if a
// sorts before b, zero if they are equivalent, and a positive number if a
// sorts after b. A Comparator must be consistent across the lifetime of a
// heap and across every heap that may ever be merged with it.
type Comparator[E any] func(a, b E) int

// Handle is an opaque reference to a node produced by Insert and consumed
// by DecreaseKey and Delete. A handle is valid from the moment Insert
// returns it until the node is removed by ExtractMin or Delete; after that
// the caller may still read Element but must not pass the handle back into
// any heap operation.
type Handle[E any] interface {
	// Element returns the value currently stored at this node.
	Element() E
	// String renders an advisory, human-readable form of the node:
	// "<element> | [* ]↓<degree>", where the leading "*" appears only if
	// the node is marked. The representation leaks no internal pointers.
	String() string
}

// node is the intrusive record backing a Handle. It owns six structural
// fields: parent/child links the forest, left/right form a circular
// doubly linked sibling list, degree counts direct children, and marked
// records whether this node has lost a child since it last became a child
// of its current parent.
type node[E any] struct {
	element E

	parent, child *node[E]
	left, right   *node[E]

	degree int
	marked bool

	heapID uint64
}

// newNode returns a singleton node: a node whose sibling list contains only
// itself, with no parent, no children, degree zero, and unmarked.
func newNode[E any](element E, heapID uint64) *node[E] {
	n := &node[E]{element: element, heapID: heapID}
	n.left, n.right = n, n
	return n
}

func (n *node[E]) Element() E {
	return n.element
}

func (n *node[E]) String() string {
	mark := ""
	if n.marked {
		mark = "* "
	}
	return fmt.Sprintf("%v | [%s]↓%d", n.element, mark, n.degree)
}

// concatLists merges two circular doubly linked sibling lists into one,
// splicing m's list in immediately to the right of n. Either list may be a
// singleton (self-looped) or a larger ring; only the four boundary
// pointers are touched, so this is O(1) regardless of either list's
// length. A nil argument is treated as an empty list.
func concatLists[E any](n, m *node[E]) *node[E] {
	if m == nil {
		return n
	}
	if n == nil {
		return m
	}
	nRight := n.right
	mLeft := m.left

	n.right = m
	m.left = n
	nRight.left = mLeft
	mLeft.right = nRight
	return n
}

// isolate removes n from whatever circular sibling list it currently
// participates in and turns it back into a singleton, returning the
// neighbor that used to be n.right (or nil if n was alone).
func (n *node[E]) isolate() *node[E] {
	if n.right == n {
		return nil
	}
	next := n.right
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
	return next
}
