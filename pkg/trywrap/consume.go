package trywrap

import (
	"fmt"
	"io"
	"os"

	"github.com/ib-77/trywrap/pkg/fallible"
)

// Unwrap returns the value, the captured error for Left, or ErrEmpty.
func (w Wrap[T]) Unwrap() (T, error) {
	if w.state == stateRight {
		return w.value, nil
	}
	var zero T
	return zero, w.cause()
}

// UnwrapOr returns the value, or def for Left and Empty.
func (w Wrap[T]) UnwrapOr(def T) T {
	if w.state == stateRight {
		return w.value
	}
	return def
}

// UnwrapOrNone returns the value and true, or the zero T and false.
func (w Wrap[T]) UnwrapOrNone() (T, bool) {
	if w.state == stateRight {
		return w.value, true
	}
	var zero T
	return zero, false
}

// UnwrapOrRaise returns the value or panics. A captured panic is re-raised
// with its original value, ErrEmpty is raised as is, any other error is raised
// as a *Fault.
func (w Wrap[T]) UnwrapOrRaise() T {
	if w.state != stateRight {
		raise(w.cause())
	}
	return w.value
}

// UnwrapOrRaiseWith returns the value, or err for Left and Empty.
func (w Wrap[T]) UnwrapOrRaiseWith(err error) (T, error) {
	if w.state == stateRight {
		return w.value, nil
	}
	if err == nil {
		err = ErrNilCause
	}
	var zero T
	return zero, err
}

// UnwrapOrRaiseUnchecked returns the value, or panics with err as a *Fault.
func (w Wrap[T]) UnwrapOrRaiseUnchecked(err error) T {
	if w.state != stateRight {
		panic(newFault(err))
	}
	return w.value
}

// IfPresent calls c with a Right value. If c fails the failure panics as a
// *Fault.
func (w Wrap[T]) IfPresent(c fallible.Consumer[T]) {
	if w.state != stateRight {
		return
	}
	if err := fallible.Accept(c, w.value); err != nil {
		panic(newFault(err))
	}
}

// OnErrorConsume calls c with the error of a Left. Empty is not an error here.
// If c fails the failure panics as a *Fault.
func (w Wrap[T]) OnErrorConsume(c fallible.Consumer[error]) {
	if w.state != stateLeft {
		return
	}
	consumeError(c, w.err)
}

// IfPresentOrElseConsume calls ok with a Right value, or onErr with the
// captured error of a Left or ErrEmpty of an Empty. Unlike OnErrorConsume it
// reaches onErr for every non-Right state; use OnErrorConsume with IfPresent
// when Empty must stay silent.
func (w Wrap[T]) IfPresentOrElseConsume(ok fallible.Consumer[T], onErr fallible.Consumer[error]) {
	switch w.state {
	case stateRight:
		w.IfPresent(ok)
	case stateLeft:
		w.OnErrorConsume(onErr)
	default:
		consumeError(onErr, ErrEmpty)
	}
}

func consumeError(c fallible.Consumer[error], err error) {
	if cerr := fallible.Accept(c, err); cerr != nil {
		panic(newFault(cerr))
	}
}

// OrElsePrintDiagnostic writes the error of a Left to stderr, with a stack
// when the error carries one.
func (w Wrap[T]) OrElsePrintDiagnostic() {
	w.OrElseFprintDiagnostic(os.Stderr)
}

// OrElseFprintDiagnostic is OrElsePrintDiagnostic writing to out.
func (w Wrap[T]) OrElseFprintDiagnostic(out io.Writer) {
	if w.state == stateLeft {
		_, _ = fmt.Fprintf(out, "%+v\n", w.err)
	}
}

// OrElseLogDiagnostic logs the error of a Left on the trywrap logger.
func (w Wrap[T]) OrElseLogDiagnostic() {
	if w.state == stateLeft {
		log.Errorf("%+v", w.err)
	}
}
