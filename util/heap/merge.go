package heap

import (
	"iter"

	"github.com/pkg/errors"
)

type mergeCursor[T any] struct {
	current     T
	sourceIndex int
	next        func() (T, bool)
}

// Merge combines sequences that are each sorted in ascending order under
// comparator into a single ascending sequence. Equal elements are yielded in
// the order of the sequences they came from. It panics if comparator is nil.
func Merge[T any](comparator Comparator[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	if comparator == nil {
		panic(errors.Wrap(ErrInvalidArgument, "nil comparator"))
	}

	return func(yield func(T) bool) {
		cursors := NewHeap(func(a, b mergeCursor[T]) int {
			// pick lower values first, and upon ties pick the earlier sources first
			if comp := comparator(b.current, a.current); comp != 0 {
				return comp
			}
			return b.sourceIndex - a.sourceIndex
		})

		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()

			value, exists := next()
			if !exists {
				continue
			}
			cursors.Push(mergeCursor[T]{
				current:     value,
				sourceIndex: i,
				next:        next,
			})
		}

		for {
			cursor, exists := cursors.Pop()
			if !exists {
				return
			}

			if value, hasNext := cursor.next(); hasNext {
				cursors.Push(mergeCursor[T]{
					current:     value,
					sourceIndex: cursor.sourceIndex,
					next:        cursor.next,
				})
			}

			if !yield(cursor.current) {
				return
			}
		}
	}
}
