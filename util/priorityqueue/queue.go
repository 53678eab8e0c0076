// Package priorityqueue provides min- and max-ordered presets of heap.Heap for
// naturally ordered element types.
package priorityqueue

import (
	"cmp"

	"github.com/navijation/njheap/util/heap"
)

// MinPriorityQueue pops its smallest element first.
type MinPriorityQueue[T cmp.Ordered] struct {
	heap.Heap[T]
}

func NewMin[T cmp.Ordered](items ...T) *MinPriorityQueue[T] {
	return &MinPriorityQueue[T]{
		Heap: heap.NewHeap(heap.Descending[T], items...),
	}
}

// MaxPriorityQueue pops its largest element first.
type MaxPriorityQueue[T cmp.Ordered] struct {
	heap.Heap[T]
}

func NewMax[T cmp.Ordered](items ...T) *MaxPriorityQueue[T] {
	return &MaxPriorityQueue[T]{
		Heap: heap.NewHeap(heap.Ascending[T], items...),
	}
}
