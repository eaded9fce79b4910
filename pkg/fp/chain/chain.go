package chain

import (
	"github.com/ib-77/fp3/pkg/fp/outcome"
)

// Chain wraps an Outcome to enable fluent chaining.
type Chain[T any] struct {
	res outcome.Outcome[T]
}

// Start creates a Chain from an existing Outcome.
func Start[T any](o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{res: o}
}

// FromValue creates a Chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(outcome.Success(v))
}

// Outcome returns the underlying Outcome.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.res
}

// Then composes a function that already returns an Outcome.
func (c Chain[T]) Then(onSuccess func(T) outcome.Outcome[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Value())}
}

// ThenTry composes a function that returns (T, error).
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	v := c.res.Value()
	return Chain[T]{res: outcome.Of(func() (T, error) {
		return try(v)
	})}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: outcome.Success(onSuccess(c.res.Value()))}
}

// Filter rejects a successful value that fails pred.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	return Chain[T]{res: c.res.Filter(pred)}
}

// Recover maps a failure back into a successful value.
func (c Chain[T]) Recover(handler func(error) T) Chain[T] {
	return Chain[T]{res: c.res.Recover(handler)}
}

// Ensure triggers side effects for the current state without changing the
// result. Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return outcome.Fold(c.res, onFailure, onSuccess)
}
