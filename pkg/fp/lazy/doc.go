// Package lazy provides Seq[T], a lazily produced, potentially infinite
// ordered sequence. No element is computed until consumption begins, and
// every traversal restarts the production rule from the beginning: Seq is
// restartable, not memoizing.
//
// Highlights:
// - Of/FromSlice/Unfold/Iterate: construct finite or infinite sequences
// - Map/Filter/TakeWhile/Take: transform lazily; TakeWhile stops pulling
//   the moment its predicate first fails, which makes infinite input safe
// - FlatMap: produce an inner sequence per element and concatenate lazily
//   in outer-then-inner order
// - FoldLeft/ToSlice/ForEach: force production; bound infinite input with
//   TakeWhile or Take first
// - ZipWith: point-wise combination, stopping at the shorter input
package lazy
