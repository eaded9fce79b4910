// Package either provides Either[L, R], a disjoint result holding exactly
// one of two values and biased toward the Right side for composition.
//
// Highlights:
// - Right/Left/Cond: construct an Either
// - Map/FlatMap: transform the Right side; a Left short-circuits and passes
//   through every subsequent combinator unchanged
// - MapLeft/Swap: operate on or rebias the Left side
// - Fold/GetOrElse: reduce to a single value
package either
