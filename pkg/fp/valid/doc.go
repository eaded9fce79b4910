// Package valid provides Validated[E, A], a two-variant container for
// error-accumulating validation. It has the same shape as either.Either but
// the opposite combination policy: independent computations merge every
// failure instead of stopping at the first.
//
// Highlights:
// - Valid/Invalid/InvalidAll: construct a Validated
// - Map2/Map3/Map4: combine independent validations, concatenating the
//   errors of every failing input left to right into a non-empty list
// - ToEither/FromEither: lossless conversion in the single-error direction
// - WithEither: drop into short-circuit semantics for one dependent step
//   and convert back — accumulation cannot express "stop after the first
//   failure", so data-dependent steps go through here
package valid
