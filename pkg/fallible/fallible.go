package fallible

// Supplier produces a value or fails.
type Supplier[T any] func() (T, error)

// Runnable performs a side effect or fails.
type Runnable func() error

// Function transforms a T into an R or fails.
type Function[T, R any] func(T) (R, error)

// Predicate tests a T or fails.
type Predicate[T any] func(T) (bool, error)

// Consumer accepts a T or fails.
type Consumer[T any] func(T) error

// Pure lifts a function that never returns an error. It may still panic.
func Pure[T, R any](f func(T) R) Function[T, R] {
	return func(t T) (R, error) {
		return f(t), nil
	}
}

// Check lifts a plain boolean test.
func Check[T any](f func(T) bool) Predicate[T] {
	return func(t T) (bool, error) {
		return f(t), nil
	}
}

// Do lifts a plain consumer.
func Do[T any](f func(T)) Consumer[T] {
	return func(t T) error {
		f(t)
		return nil
	}
}

// Get calls s once. A panic inside s is returned as a *PanicError.
func Get[T any](s Supplier[T]) (v T, err error) {
	defer recoverInto(&err)
	return s()
}

// Run calls r once. A panic inside r is returned as a *PanicError.
func Run(r Runnable) (err error) {
	defer recoverInto(&err)
	return r()
}

// Apply calls f with t once. A panic inside f is returned as a *PanicError.
func Apply[T, R any](f Function[T, R], t T) (r R, err error) {
	defer recoverInto(&err)
	return f(t)
}

// Test calls p with t once. A panic inside p is returned as a *PanicError.
func Test[T any](p Predicate[T], t T) (ok bool, err error) {
	defer recoverInto(&err)
	return p(t)
}

// Accept calls c with t once. A panic inside c is returned as a *PanicError.
func Accept[T any](c Consumer[T], t T) (err error) {
	defer recoverInto(&err)
	return c(t)
}
