package nonempty

import (
	"github.com/ib-77/fp3/pkg/fp/option"
)

// List is an ordered sequence holding at least one element. The guarantee
// is structural: head is stored apart from the tail, so no constructor can
// produce an empty List and Head needs no runtime check.
type List[T any] struct {
	head T
	tail []T
}

// Of builds a List from a head element and any number of trailing ones.
func Of[T any](head T, rest ...T) List[T] {
	tail := make([]T, len(rest))
	copy(tail, rest)
	return List[T]{head: head, tail: tail}
}

// FromSlice builds a List from a slice, or None when the slice is empty.
func FromSlice[T any](items []T) option.Option[List[T]] {
	if len(items) == 0 {
		return option.None[List[T]]()
	}
	return option.Some(Of(items[0], items[1:]...))
}

// Head returns the first element. It is always defined.
func (l List[T]) Head() T {
	return l.head
}

// Tail returns a copy of the elements after the head; possibly empty.
func (l List[T]) Tail() []T {
	tail := make([]T, len(l.tail))
	copy(tail, l.tail)
	return tail
}

func (l List[T]) Len() int {
	return 1 + len(l.tail)
}

// All returns a copy of every element in order.
func (l List[T]) All() []T {
	all := make([]T, 0, l.Len())
	all = append(all, l.head)
	all = append(all, l.tail...)
	return all
}

// Append returns a new List with items added at the end.
func (l List[T]) Append(items ...T) List[T] {
	tail := make([]T, 0, len(l.tail)+len(items))
	tail = append(tail, l.tail...)
	tail = append(tail, items...)
	return List[T]{head: l.head, tail: tail}
}

// Concat returns a new List holding l's elements followed by other's.
func (l List[T]) Concat(other List[T]) List[T] {
	return l.Append(other.All()...)
}

// Map applies f to every element, preserving order and non-emptiness.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	tail := make([]U, len(l.tail))
	for i, t := range l.tail {
		tail[i] = f(t)
	}
	return List[U]{head: f(l.head), tail: tail}
}

// FlatMap applies f to every element and concatenates the resulting lists
// in encounter order. Every contributing list is non-empty and there is at
// least one element to start, so the result is non-empty as well.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	out := f(l.head)
	for _, t := range l.tail {
		out = out.Concat(f(t))
	}
	return out
}

// FoldLeft reduces the list left to right starting from seed.
func FoldLeft[T, U any](l List[T], seed U, f func(U, T) U) U {
	acc := f(seed, l.head)
	for _, t := range l.tail {
		acc = f(acc, t)
	}
	return acc
}

// Reduce folds the tail onto the head; no seed is needed because the list
// is never empty.
func Reduce[T any](l List[T], f func(T, T) T) T {
	acc := l.head
	for _, t := range l.tail {
		acc = f(acc, t)
	}
	return acc
}

// Map2 combines two lists point-by-point across their full Cartesian
// product, first list outermost. Equivalent to nested FlatMap/Map calls.
func Map2[A, B, C any](as List[A], bs List[B], f func(A, B) C) List[C] {
	return FlatMap(as, func(a A) List[C] {
		return Map(bs, func(b B) C {
			return f(a, b)
		})
	})
}

// Map3 extends Map2 to three lists, first list outermost.
func Map3[A, B, C, D any](as List[A], bs List[B], cs List[C], f func(A, B, C) D) List[D] {
	return FlatMap(as, func(a A) List[D] {
		return Map2(bs, cs, func(b B, c C) D {
			return f(a, b, c)
		})
	})
}
