package heap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
)

// Heap is a binary heap stored as an implicit complete tree in a slice. The
// element with the highest priority under the comparator is always at index 0.
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	comparator Comparator[T]
	items      []T
}

// NewHeap creates a heap ordered by comparator and seeded with items, which are
// copied and heapified in linear time. It panics if comparator is nil.
func NewHeap[T any](comparator Comparator[T], items ...T) Heap[T] {
	if comparator == nil {
		panic(errors.Wrap(ErrInvalidArgument, "nil comparator"))
	}

	out := Heap[T]{
		comparator: comparator,
		items:      slices.Clone(items),
	}
	for k := len(out.items)/2 - 1; k >= 0; k-- {
		out.sink(k)
	}
	return out
}

// NewOrderedHeap creates a heap using the natural order, so the largest element
// is popped first.
func NewOrderedHeap[T cmp.Ordered](items ...T) Heap[T] {
	return NewHeap(Ascending[T], items...)
}

func (me *Heap[T]) Size() int {
	return len(me.items)
}

// SetComparator replaces the ordering. Elements already in the heap are not
// reordered, so the heap invariant only holds afterwards if the heap was empty
// or the new ordering agrees with the old one.
func (me *Heap[T]) SetComparator(comparator Comparator[T]) error {
	if comparator == nil {
		return errors.Wrap(ErrInvalidArgument, "nil comparator")
	}
	me.comparator = comparator
	return nil
}

func (me *Heap[T]) Peek() util.Optional[T] {
	if len(me.items) == 0 {
		return util.None[T]()
	}
	return util.Some(me.items[0])
}

func (me *Heap[T]) Push(value T) {
	me.items = append(me.items, value)
	me.swim(len(me.items) - 1)
}

// Pop removes and returns the element with the highest priority. It returns
// false if the heap is empty.
func (me *Heap[T]) Pop() (out T, exists bool) {
	n := len(me.items)
	if n == 0 {
		return out, false
	}

	out = me.items[0]
	me.swap(0, n-1)

	// release the popped value so the backing array doesn't keep it alive
	var zero T
	me.items[n-1] = zero
	me.items = me.items[:n-1]

	me.sink(0)
	return out, true
}

// Drain pops elements until the heap is empty or the consumer stops.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, exists := me.Pop()
			if !exists || !yield(value) {
				return
			}
		}
	}
}

func (me *Heap[T]) less(i, j int) bool {
	n := len(me.items)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(errors.Wrapf(ErrInvalidState, "less: invalid index (i, j, n = %d, %d, %d)", i, j, n))
	}
	return me.comparator(me.items[i], me.items[j]) < 0
}

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func parent(k int) int {
	return (k - 1) / 2
}

func leftChild(k int) int {
	return 2*k + 1
}

// move node k up while its parent has lower priority
func (me *Heap[T]) swim(k int) {
	for k > 0 && me.less(parent(k), k) {
		me.swap(parent(k), k)
		k = parent(k)
	}
}

// move node k down while one of its children has higher priority
func (me *Heap[T]) sink(k int) {
	n := len(me.items)
	for leftChild(k) < n {
		j := leftChild(k)
		// the right child wins ties
		if j+1 < n && !me.less(j+1, j) {
			j++
		}
		if !me.less(k, j) {
			break
		}
		me.swap(k, j)
		k = j
	}
}
