package fibheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainInts(t *testing.T, h *Heap[int]) []int {
	t.Helper()
	var out []int
	for {
		handle, ok := h.ExtractMin()
		if !ok {
			break
		}
		out = append(out, handle.Element())
	}
	return out
}

// Scenario 1: Insert 5, 2, 8, 1, 3. Minimum is 1; draining yields sorted order.
func TestScenarioBasicOrder(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{5, 2, 8, 1, 3} {
		h.Insert(v)
	}
	min, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, 1, min.Element())

	assert.Equal(t, []int{1, 2, 3, 5, 8}, drainInts(t, h))
}

// Scenario 2: Insert 10, 20, 30; decrease 30's handle to 5.
func TestScenarioDecreaseKeyToNewMinimum(t *testing.T) {
	h := NewOrdered[int]()
	h.Insert(10)
	h.Insert(20)
	thirty := h.Insert(30)

	require.NoError(t, h.DecreaseKey(thirty, 5))

	min, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, 5, min.Element())

	handle, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 5, handle.Element())
}

// Scenario 3: Heap A <- [4,7]; Heap B <- [1,9,2]; A.Merge(B); drain A.
func TestScenarioMergeDrainOrder(t *testing.T) {
	a := NewOrdered[int]()
	a.Insert(4)
	a.Insert(7)

	b := NewOrdered[int]()
	b.Insert(1)
	b.Insert(9)
	b.Insert(2)

	require.NoError(t, a.Merge(b))
	assert.Equal(t, []int{1, 2, 4, 7, 9}, drainInts(t, a))
	assert.True(t, b.IsEmpty())
}

// Scenario 4: Insert 50,40,30,20,10; first ExtractMin triggers consolidation.
func TestScenarioConsolidationOnExtract(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{50, 40, 30, 20, 10} {
		h.Insert(v)
	}
	handle, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 10, handle.Element())

	walkInvariants(t, h)
	assert.Equal(t, []int{20, 30, 40, 50}, drainInts(t, h))
}

// Scenario 5: Insert a..j; delete handles of 'c' then 'a'; drain remaining 8.
func TestScenarioDeleteThenDrain(t *testing.T) {
	h := NewOrdered[byte]()
	handles := map[byte]Handle[byte]{}
	for c := byte('a'); c <= 'j'; c++ {
		handles[c] = h.Insert(c)
	}

	_, err := h.Delete(handles['c'])
	require.NoError(t, err)
	_, err = h.Delete(handles['a'])
	require.NoError(t, err)

	var out []byte
	for {
		handle, ok := h.ExtractMin()
		if !ok {
			break
		}
		out = append(out, handle.Element())
	}
	assert.Equal(t, []byte{'b', 'd', 'e', 'f', 'g', 'h', 'i', 'j'}, out)
}

// Scenario 6: reverse-order comparator on strings.
func TestScenarioReverseComparator(t *testing.T) {
	h := New[string](func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	h.Insert("apple")
	h.Insert("banana")
	h.Insert("cherry")

	min, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, "cherry", min.Element())

	var out []string
	for {
		handle, ok := h.ExtractMin()
		if !ok {
			break
		}
		out = append(out, handle.Element())
	}
	assert.Equal(t, []string{"cherry", "banana", "apple"}, out)
}

// Boundary: empty heap operations are no-ops, not errors.
func TestBoundaryEmptyHeap(t *testing.T) {
	h := NewOrdered[int]()
	_, ok := h.ExtractMin()
	assert.False(t, ok)
	_, ok = h.Min()
	assert.False(t, ok)
	require.NoError(t, h.Merge(NewOrdered[int]()))
	h.Clear()
	assert.True(t, h.IsEmpty())
}

// Boundary: single-element heap.
func TestBoundarySingleElement(t *testing.T) {
	h := NewOrdered[int]()
	handle := h.Insert(42)
	require.NoError(t, h.DecreaseKey(handle, 42))
	min, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, 42, min.Element())

	removed, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 42, removed.Element())
	assert.True(t, h.IsEmpty())
}

// Boundary: two-node root list where one is removed (n.right == n branch).
func TestBoundaryTwoRootExtract(t *testing.T) {
	h := NewOrdered[int]()
	h.Insert(1)
	h.Insert(2)
	assert.Equal(t, 2, h.RootCount())

	handle, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 1, handle.Element())
	assert.Equal(t, 1, h.RootCount())

	handle, ok = h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 2, handle.Element())
	assert.True(t, h.IsEmpty())
}

// Decrease-key idempotence-of-equal: setting the key to its current value
// does not change the extraction sequence.
func TestDecreaseKeyToSameValueIsNoOp(t *testing.T) {
	h := NewOrdered[int]()
	handles := make([]Handle[int], 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, h.Insert(i))
	}
	for i, handle := range handles {
		require.NoError(t, h.DecreaseKey(handle, i))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, drainInts(t, h))
}

// Merge equivalence: draining Merge(A, B) equals draining A then B, both
// sorted, merged together.
func TestMergeEquivalence(t *testing.T) {
	aVals := []int{9, 3, 7, 1}
	bVals := []int{4, 4, 2, 8}

	a := NewOrdered[int]()
	for _, v := range aVals {
		a.Insert(v)
	}
	b := NewOrdered[int]()
	for _, v := range bVals {
		b.Insert(v)
	}
	require.NoError(t, a.Merge(b))

	got := drainInts(t, a)

	want := append(append([]int{}, aVals...), bVals...)
	sortInts(want)
	assert.Equal(t, want, got)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
