package lazy

// Seq is a lazily produced sequence of T. The production rule yields a
// fresh iterator per traversal, so a Seq can be consumed any number of
// times; each consumption re-executes the rule from the start.
type Seq[T any] struct {
	resume func() func() (T, bool)
}

// New wraps a production rule. Each call to resume must return a new
// iterator positioned at the first element.
func New[T any](resume func() func() (T, bool)) Seq[T] {
	return Seq[T]{resume: resume}
}

// Empty returns the sequence with no elements.
func Empty[T any]() Seq[T] {
	return New(func() func() (T, bool) {
		return func() (T, bool) {
			var zero T
			return zero, false
		}
	})
}

// Of builds a finite sequence from the given elements.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice builds a finite sequence over a copy of items.
func FromSlice[T any](items []T) Seq[T] {
	elems := make([]T, len(items))
	copy(elems, items)
	return New(func() func() (T, bool) {
		i := 0
		return func() (T, bool) {
			if i >= len(elems) {
				var zero T
				return zero, false
			}
			v := elems[i]
			i++
			return v, true
		}
	})
}

// Unfold produces elements from successive states: step returns the next
// element, the next state, and whether production continues.
func Unfold[S, T any](seed S, step func(S) (T, S, bool)) Seq[T] {
	return New(func() func() (T, bool) {
		state := seed
		done := false
		return func() (T, bool) {
			if done {
				var zero T
				return zero, false
			}
			v, next, ok := step(state)
			if !ok {
				done = true
				var zero T
				return zero, false
			}
			state = next
			return v, true
		}
	})
}

// Iterate produces the infinite sequence seed, next(seed), next(next(seed)), ...
func Iterate[T any](seed T, next func(T) T) Seq[T] {
	return New(func() func() (T, bool) {
		cur := seed
		first := true
		return func() (T, bool) {
			if first {
				first = false
				return cur, true
			}
			cur = next(cur)
			return cur, true
		}
	})
}

// Iterator starts a fresh traversal.
func (s Seq[T]) Iterator() func() (T, bool) {
	return s.resume()
}

// Filter keeps only elements satisfying pred. On an infinite sequence with
// no further matches a pull will not return; bound the input first.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	return New(func() func() (T, bool) {
		next := s.resume()
		return func() (T, bool) {
			for {
				v, ok := next()
				if !ok {
					var zero T
					return zero, false
				}
				if pred(v) {
					return v, true
				}
			}
		}
	})
}

// TakeWhile yields elements until pred first fails, then stops pulling
// from the source entirely.
func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	return New(func() func() (T, bool) {
		next := s.resume()
		done := false
		return func() (T, bool) {
			if done {
				var zero T
				return zero, false
			}
			v, ok := next()
			if !ok || !pred(v) {
				done = true
				var zero T
				return zero, false
			}
			return v, true
		}
	})
}

// Take yields at most n elements.
func (s Seq[T]) Take(n int) Seq[T] {
	return New(func() func() (T, bool) {
		next := s.resume()
		remaining := n
		return func() (T, bool) {
			if remaining <= 0 {
				var zero T
				return zero, false
			}
			remaining--
			return next()
		}
	})
}

// ToSlice materializes the full sequence. Forces production to the end.
func (s Seq[T]) ToSlice() []T {
	var out []T
	next := s.resume()
	for v, ok := next(); ok; v, ok = next() {
		out = append(out, v)
	}
	return out
}

// ForEach consumes the full sequence, invoking f per element.
func (s Seq[T]) ForEach(f func(T)) {
	next := s.resume()
	for v, ok := next(); ok; v, ok = next() {
		f(v)
	}
}

// Map transforms each element as it is produced.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return New(func() func() (U, bool) {
		next := s.resume()
		return func() (U, bool) {
			v, ok := next()
			if !ok {
				var zero U
				return zero, false
			}
			return f(v), true
		}
	})
}

// FlatMap produces an inner sequence for each element of s and
// concatenates all inner productions lazily, outer-then-inner order. The
// outer sequence may be infinite as long as consumption is bounded
// downstream.
func FlatMap[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	return New(func() func() (U, bool) {
		outer := s.resume()
		var inner func() (U, bool)
		return func() (U, bool) {
			for {
				if inner != nil {
					if u, ok := inner(); ok {
						return u, true
					}
					inner = nil
				}
				t, ok := outer()
				if !ok {
					var zero U
					return zero, false
				}
				inner = f(t).Iterator()
			}
		}
	})
}

// FoldLeft reduces the sequence left to right. Forces full production, so
// infinite input must be bounded with TakeWhile or Take first.
func FoldLeft[T, U any](s Seq[T], seed U, f func(U, T) U) U {
	acc := seed
	next := s.resume()
	for v, ok := next(); ok; v, ok = next() {
		acc = f(acc, v)
	}
	return acc
}

// ZipWith combines two sequences point-wise, stopping when either ends.
func ZipWith[A, B, C any](as Seq[A], bs Seq[B], f func(A, B) C) Seq[C] {
	return New(func() func() (C, bool) {
		nextA := as.resume()
		nextB := bs.resume()
		return func() (C, bool) {
			a, okA := nextA()
			if !okA {
				var zero C
				return zero, false
			}
			b, okB := nextB()
			if !okB {
				var zero C
				return zero, false
			}
			return f(a, b), true
		}
	})
}

// Concat chains sequences one after another, lazily.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return FlatMap(FromSlice(seqs), func(s Seq[T]) Seq[T] {
		return s
	})
}
