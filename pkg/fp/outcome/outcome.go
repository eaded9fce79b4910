package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome holds either the value produced by a computation or the error
// that stopped it. Each Outcome carries an identity and creation time.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Success constructs an Outcome holding a produced value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

// Failure constructs an Outcome holding a failure reason.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Of runs compute and captures a returned error as a Failure. Only the
// error return is adapted; a panic is a defect and propagates.
func Of[T any](compute func() (T, error)) Outcome[T] {
	v, err := compute()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

func (o Outcome[T]) IsFailure() bool {
	return !o.ok
}

// Value returns the produced value; zero when the Outcome is a Failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure reason; nil when the Outcome is a Success.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt is the construction time (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// GetOrDefault returns the produced value, or evaluates f when failed.
func (o Outcome[T]) GetOrDefault(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// GetOrElse returns the produced value, or computes a replacement from the
// failure reason.
func (o Outcome[T]) GetOrElse(f func(error) T) T {
	if o.ok {
		return o.value
	}
	return f(o.err)
}

// Filter converts a Success whose value fails pred into a Failure with a
// KindUnsatisfied fault; a Failure is unchanged.
func (o Outcome[T]) Filter(pred func(T) bool) Outcome[T] {
	if o.ok && !pred(o.value) {
		return Failure[T](NewFault(KindUnsatisfied, "value did not satisfy filter predicate"))
	}
	return o
}

// Recover converts a Failure into a Success by mapping the reason to a
// replacement value; a Success passes through unchanged.
func (o Outcome[T]) Recover(handler func(error) T) Outcome[T] {
	if o.ok {
		return o
	}
	return Success(handler(o.err))
}

// RecoverWith is the fallible variant of Recover: the fallback computation
// may itself fail, in which case the new failure propagates.
func (o Outcome[T]) RecoverWith(handler func(error) Outcome[T]) Outcome[T] {
	if o.ok {
		return o
	}
	return handler(o.err)
}

// Map transforms the produced value; a Failure passes through unchanged.
func Map[In, Out any](o Outcome[In], f func(In) Out) Outcome[Out] {
	if o.ok {
		return Success(f(o.value))
	}
	return Failure[Out](o.err)
}

// FlatMap transforms the produced value with a function that itself
// returns an Outcome; the first Failure in a chain propagates unchanged.
func FlatMap[In, Out any](o Outcome[In], f func(In) Outcome[Out]) Outcome[Out] {
	if o.ok {
		return f(o.value)
	}
	return Failure[Out](o.err)
}

// Fold reduces the Outcome to a single value via one of the two handlers.
func Fold[T, U any](o Outcome[T], onFailure func(error) U, onSuccess func(T) U) U {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// Transform is the Outcome-returning dual of Fold: both continuations may
// themselves fail.
func Transform[In, Out any](o Outcome[In],
	onSuccess func(In) Outcome[Out], onFailure func(error) Outcome[Out]) Outcome[Out] {

	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}
