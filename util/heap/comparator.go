package heap

import "cmp"

// Comparator orders two elements. A negative result means a has lower priority
// than b; the element with the highest priority sits at the root of the heap.
type Comparator[T any] func(a, b T) int

// Ascending is the natural order. As a heap comparator it pops the largest
// element first.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending pops the smallest element first.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

func Reverse[T any](comparator Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return comparator(b, a)
	}
}

// ByKey orders elements by a key extracted from each of them.
func ByKey[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
