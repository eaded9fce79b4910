// Package nonempty provides List[T], an ordered sequence guaranteed by
// construction to hold at least one element. Head never fails.
//
// Highlights:
// - Of: the only constructor from raw elements; FromSlice yields an Option
// - Map/FlatMap/FoldLeft/Reduce: transform and reduce, preserving order
// - Map2/Map3: N-ary combination producing the full Cartesian product in
//   row-major order (first argument outermost)
// - Append/Concat: grow the list, returning a new value
package nonempty
