// Package trywrap provides Wrap[T], a container for the outcome of a fallible
// call that is in exactly one of three states:
// - Right: the call produced a value
// - Left: the call failed; the error is kept as data
// - Empty: the call succeeded without producing a value
//
// Transformations (Map, FlatMap, Filter) never let a failure escape. They turn
// it into Left and skip the rest of a pipeline. Only consumption operators
// surface a failure, either by returning an error (Unwrap, UnwrapOrRaiseWith),
// a fallback (UnwrapOr, UnwrapOrNone) or by panicking (UnwrapOrRaise,
// UnwrapOrRaiseUnchecked, consumer failures in IfPresent and OnErrorConsume).
//
// A Wrap is immutable and may be shared between goroutines.
package trywrap
