package try

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/trywrap/pkg/fallible"
)

// ErrNilCause replaces a nil error handed to Failure.
var ErrNilCause = errors.New("try: nil error")

// Try is either Success(value) or Failure(err). The zero Try is a Failure
// with ErrNilCause.
type Try[T any] struct {
	value T
	err   error
	ok    bool
}

// Of calls s exactly once and captures its value or its failure.
func Of[T any](s fallible.Supplier[T]) Try[T] {
	v, err := fallible.Get(s)
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func Success[T any](v T) Try[T] {
	return Try[T]{value: v, ok: true}
}

// Failure returns a failed Try. A nil err, typed nil pointers included, is
// replaced by ErrNilCause.
func Failure[T any](err error) Try[T] {
	if fallible.IsNil(err) {
		err = ErrNilCause
	}
	return Try[T]{err: err}
}

// Get returns the value, or the captured error.
func (t Try[T]) Get() (T, error) {
	if !t.ok {
		var zero T
		return zero, t.cause()
	}
	return t.value, nil
}

func (t Try[T]) cause() error {
	if t.ok {
		return nil
	}
	if t.err == nil {
		return ErrNilCause
	}
	return t.err
}

func (t Try[T]) IsSuccess() bool {
	return t.ok
}

// Map applies f to a Success value. A failing f yields Failure.
func Map[T, R any](t Try[T], f fallible.Function[T, R]) Try[R] {
	if !t.ok {
		return Failure[R](t.cause())
	}
	r, err := fallible.Apply(f, t.value)
	if err != nil {
		return Failure[R](err)
	}
	return Success(r)
}

// FlatMap applies f to a Success value and returns its Try as is. A panicking
// f yields Failure.
func FlatMap[T, R any](t Try[T], f func(T) Try[R]) Try[R] {
	if !t.ok {
		return Failure[R](t.cause())
	}
	r, err := fallible.Apply(func(v T) (Try[R], error) { return f(v), nil }, t.value)
	if err != nil {
		return Failure[R](err)
	}
	return r
}

// Equal reports whether both are Success with deeply equal values, or both
// are Failure with deeply equal errors.
func (t Try[T]) Equal(o Try[T]) bool {
	if t.ok != o.ok {
		return false
	}
	if t.ok {
		return reflect.DeepEqual(t.value, o.value)
	}
	return reflect.DeepEqual(t.cause(), o.cause())
}

func (t Try[T]) String() string {
	if t.ok {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.cause())
}
