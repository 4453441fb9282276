// Package fallible defines the shapes of work that may fail and the invokers
// that run them safely.
//
// A unit of work fails either by returning a non-nil error or by panicking.
// The invokers (Get, Run, Apply, Test, Accept) recover a panic and report it as
// a *PanicError, so callers only ever have to look at the returned error.
//
// Contracts:
// - Supplier[T]: func() (T, error)
// - Runnable: func() error
// - Function[T, R]: func(T) (R, error)
// - Predicate[T]: func(T) (bool, error)
// - Consumer[T]: func(T) error
//
// Pure, Check and Do adapt plain functions that cannot return an error.
package fallible
