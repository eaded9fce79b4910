// Package option provides Option[T], a container representing presence or
// absence of a value. Absence is not an error: no error values appear
// anywhere in this package.
//
// Common usage:
// - Some/None: construct an Option
// - FromOk/FromPtr: adapt Go's value/ok and nil-pointer idioms
// - Map/FlatMap: transform the contained value when present
// - GetOrElse/OrElse/Fold: extract a value or reduce both cases
package option
