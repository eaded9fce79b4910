// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map/Filter/Recover: transform or reshape the current outcome
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is sugar over the outcome package's free functions for pipelines
// that stay on one value type; type-changing steps use outcome.FlatMap and
// friends directly.
package chain
