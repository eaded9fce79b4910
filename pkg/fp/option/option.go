package option

// Option represents presence or absence of a value of type T. The zero
// value is None, so an Option can be embedded or declared without a
// constructor call.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk adapts Go's value/ok idiom (map lookups, type assertions).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOrElse returns the contained value, or def when absent.
func (o Option[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElse returns the contained value, or evaluates f when absent.
func (o Option[T]) OrElse(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

// Filter turns a present Option whose value fails pred into None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && !pred(o.value) {
		return None[T]()
	}
	return o
}

// Map transforms the contained value when present; None passes through.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMap transforms the contained value with a function that itself
// returns an Option; the result is flattened.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}

// Fold reduces the Option to a single value via one of the two handlers.
func Fold[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
