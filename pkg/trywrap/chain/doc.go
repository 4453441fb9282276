// Package chain provides a minimal fluent Chain[T] for synchronous, context
// aware composition of trywrap.Wrap[T] values.
//
// API surface:
// - Start/FromValue/From: create a Chain
// - Then/ThenTry: compose wrap-returning or error-returning steps
// - Map/Filter: transform or discard the value
// - Switch: move to a Chain of another type
// - Ensure: trigger side effects per state without changing the result
// - Or/And: pick among alternative or required chains
// - RepeatUntil/While: loop a step
// - Finally: reduce to a concrete value via handlers
//
// A step only runs on a Right value. When the chain's context is done before a
// step runs, the chain becomes Left with the context error.
package chain
