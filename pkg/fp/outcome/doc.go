// Package outcome provides Outcome[T], the captured result of a fallible
// computation: either a produced value or the failure reason that stopped
// it. It is the adapter between error-returning Go code and the container
// combinators.
//
// Highlights:
// - Of: run a computation and capture a returned error as a Failure;
//   panics are defects and propagate
// - Success/Failure: construct an Outcome directly
// - Map/FlatMap: transform the Success side with short-circuit propagation
// - Filter/Recover/RecoverWith/Transform: reshape either side
// - Fold/GetOrElse/GetOrDefault: reduce to a concrete value
// - Fault: structured failure description with a Kind discriminant
package outcome
