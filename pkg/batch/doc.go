// Package batch applies one fallible function to many inputs and collects the
// outcomes as trywrap.Wrap values. It contains the channel plumbing (Emit,
// Collect), worker configuration via context (WithLines, LinesFrom) and the
// worker loop that drives Run.
//
// Each Wrap is still built and inspected on a single goroutine; only the
// fan-out over inputs is concurrent.
package batch
