// Package try provides Try[T], a two-state outcome of a fallible call:
// Success with a value or Failure with an error. Unlike trywrap.Wrap it has no
// notion of an empty result and no consumption helpers beyond Get.
package try
