package fibheap

import "errors"

// ErrWrongHandleKind is returned by DecreaseKey and Delete when the
// supplied handle was not produced by this heap instance: either it is not
// backed by this package's node type, or it is a node that belongs to a
// different heap.
var ErrWrongHandleKind = errors.New("fibheap: handle does not belong to this heap")

// ErrKeyNotDecreased is returned by DecreaseKey when the replacement
// element compares strictly greater than the node's current element.
var ErrKeyNotDecreased = errors.New("fibheap: new element is not less than or equal to the current element")

// ErrWrongHeapKind is returned by Merge when the argument is not a
// compatible heap instance, e.g. one constructed with a different
// comparator.
var ErrWrongHeapKind = errors.New("fibheap: merge argument is not a compatible heap")
