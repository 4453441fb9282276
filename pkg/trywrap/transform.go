package trywrap

import "github.com/ib-77/trywrap/pkg/fallible"

// Map applies f to a Right value. A failing f yields Left with its error.
// Left and Empty pass through and f is not called.
func Map[T, R any](w Wrap[T], f fallible.Function[T, R]) Wrap[R] {
	switch w.state {
	case stateRight:
		r, err := fallible.Apply(f, w.value)
		if err != nil {
			return captured[R](err)
		}
		return OfValue(r)
	case stateLeft:
		return OfError[R](w.err)
	default:
		return OfEmpty[R]()
	}
}

// FlatMap applies f to a Right value and returns the wrap f produces as is.
// A panicking f yields Left. Left and Empty pass through and f is not called.
func FlatMap[T, R any](w Wrap[T], f func(T) Wrap[R]) Wrap[R] {
	switch w.state {
	case stateRight:
		r, err := fallible.Apply(func(t T) (Wrap[R], error) { return f(t), nil }, w.value)
		if err != nil {
			return captured[R](err)
		}
		return r
	case stateLeft:
		return OfError[R](w.err)
	default:
		return OfEmpty[R]()
	}
}

// Map is the same-type form of the package level Map.
func (w Wrap[T]) Map(f fallible.Function[T, T]) Wrap[T] {
	return Map(w, f)
}

// FlatMap is the same-type form of the package level FlatMap.
func (w Wrap[T]) FlatMap(f func(T) Wrap[T]) Wrap[T] {
	return FlatMap(w, f)
}

// Filter keeps a Right value when p holds, turns it into Empty when p does not
// and into Left when p fails. Left and Empty pass through and p is not called.
func (w Wrap[T]) Filter(p fallible.Predicate[T]) Wrap[T] {
	if w.state != stateRight {
		return w
	}
	ok, err := fallible.Test(p, w.value)
	switch {
	case err != nil:
		return captured[T](err)
	case ok:
		return w
	default:
		return OfEmpty[T]()
	}
}
