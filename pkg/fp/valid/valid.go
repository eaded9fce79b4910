package valid

import (
	"github.com/ib-77/fp3/pkg/fp/either"
	"github.com/ib-77/fp3/pkg/fp/nonempty"
)

// Validated is either a Valid payload or an Invalid non-empty list of
// accumulated errors. Exactly one side is populated.
type Validated[E, A any] struct {
	value A
	errs  nonempty.List[E]
	valid bool
}

// Valid constructs a successful Validated.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{value: a, valid: true}
}

// Invalid constructs a failed Validated from one or more errors.
func Invalid[E, A any](e E, rest ...E) Validated[E, A] {
	return Validated[E, A]{errs: nonempty.Of(e, rest...)}
}

// InvalidAll constructs a failed Validated from an existing error list.
func InvalidAll[E, A any](errs nonempty.List[E]) Validated[E, A] {
	return Validated[E, A]{errs: errs}
}

func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

func (v Validated[E, A]) IsInvalid() bool {
	return !v.valid
}

// Value returns the Valid payload; zero when Invalid.
func (v Validated[E, A]) Value() A {
	return v.value
}

// Errors returns the accumulated errors; meaningful only when IsInvalid.
func (v Validated[E, A]) Errors() nonempty.List[E] {
	return v.errs
}

// Map transforms the Valid payload; an Invalid passes through unchanged.
func Map[E, A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if v.valid {
		return Valid[E](f(v.value))
	}
	return InvalidAll[E, B](v.errs)
}

// Map2 combines two independent validations. Both Valid: f applied to the
// payloads. Exactly one Invalid: that Invalid, unchanged. Both Invalid: the
// errors of va followed by the errors of vb, so no failure is ever lost to
// an earlier one.
func Map2[E, A, B, C any](va Validated[E, A], vb Validated[E, B], f func(A, B) C) Validated[E, C] {
	switch {
	case va.valid && vb.valid:
		return Valid[E](f(va.value, vb.value))
	case !va.valid && !vb.valid:
		return InvalidAll[E, C](va.errs.Concat(vb.errs))
	case !va.valid:
		return InvalidAll[E, C](va.errs)
	default:
		return InvalidAll[E, C](vb.errs)
	}
}

// Map3 generalizes Map2: the result's errors are the ordered concatenation
// of every failing input's errors, left to right.
func Map3[E, A, B, C, D any](va Validated[E, A], vb Validated[E, B], vc Validated[E, C],
	f func(A, B, C) D) Validated[E, D] {

	if va.valid && vb.valid && vc.valid {
		return Valid[E](f(va.value, vb.value, vc.value))
	}
	return InvalidAll[E, D](collectErrors(va.invalidErrors(), vb.invalidErrors(), vc.invalidErrors()))
}

// Map4 generalizes Map2 to four independent validations.
func Map4[E, A, B, C, D, R any](va Validated[E, A], vb Validated[E, B], vc Validated[E, C],
	vd Validated[E, D], f func(A, B, C, D) R) Validated[E, R] {

	if va.valid && vb.valid && vc.valid && vd.valid {
		return Valid[E](f(va.value, vb.value, vc.value, vd.value))
	}
	return InvalidAll[E, R](collectErrors(va.invalidErrors(), vb.invalidErrors(),
		vc.invalidErrors(), vd.invalidErrors()))
}

// invalidErrors returns the error elements, or nil when Valid.
func (v Validated[E, A]) invalidErrors() []E {
	if v.valid {
		return nil
	}
	return v.errs.All()
}

// collectErrors concatenates per-input error slices in argument order.
// Callers only reach this with at least one failing input.
func collectErrors[E any](groups ...[]E) nonempty.List[E] {
	var all []E
	for _, g := range groups {
		all = append(all, g...)
	}
	return nonempty.Of(all[0], all[1:]...)
}

// ToEither converts to a short-circuiting Either carrying the full error
// list on the Left.
func ToEither[E, A any](v Validated[E, A]) either.Either[nonempty.List[E], A] {
	if v.valid {
		return either.Right[nonempty.List[E]](v.value)
	}
	return either.Left[nonempty.List[E], A](v.errs)
}

// FromEither converts a single-error Either into a Validated; the lone
// Left value becomes a one-element error list.
func FromEither[E, A any](e either.Either[E, A]) Validated[E, A] {
	if e.IsRight() {
		return Valid[E](e.Right())
	}
	return Invalid[E, A](e.Left())
}

// FromEitherAll converts an Either already carrying an error list.
func FromEitherAll[E, A any](e either.Either[nonempty.List[E], A]) Validated[E, A] {
	if e.IsRight() {
		return Valid[E](e.Right())
	}
	return InvalidAll[E, A](e.Left())
}

// WithEither converts the Validated to an Either, applies a transform that
// may itself fail, and converts back. This is the sanctioned escape hatch
// for a sequential step inside an otherwise accumulating pipeline.
func WithEither[E, A, B any](v Validated[E, A],
	transform func(either.Either[nonempty.List[E], A]) either.Either[nonempty.List[E], B]) Validated[E, B] {

	return FromEitherAll(transform(ToEither(v)))
}
