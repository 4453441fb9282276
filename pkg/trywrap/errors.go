package trywrap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ib-77/trywrap/pkg/fallible"
)

var (
	// ErrNoSuchElement is the root of every retrieval failure: asking a Wrap
	// for something its state does not hold.
	ErrNoSuchElement = errors.New("no such element")

	// ErrEmpty is the error an Empty wrap reports on retrieval.
	ErrEmpty = fmt.Errorf("%w: empty wrap", ErrNoSuchElement)

	// ErrNilCause replaces a nil error handed to OfError.
	ErrNilCause = errors.New("trywrap: nil error")

	errNoValue = fmt.Errorf("%w: wrap holds no value", ErrNoSuchElement)
	errNoError = fmt.Errorf("%w: wrap holds no error", ErrNoSuchElement)
)

// Fault is the panic payload of the unchecked raise policy.
type Fault struct {
	err error
}

func newFault(err error) *Fault {
	if err == nil {
		err = ErrNilCause
	}
	return &Fault{err: errors.WithStack(err)}
}

func (f *Fault) Error() string {
	return "trywrap: unchecked: " + f.err.Error()
}

func (f *Fault) Unwrap() error {
	return f.err
}

// Format prints the raise stack for %+v.
func (f *Fault) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s\n%+v", f.Error(), f.err)
		return
	}
	_, _ = fmt.Fprint(s, f.Error())
}

// IsUnchecked reports whether err already follows the unchecked policy: a
// recovered panic, a retrieval failure or a Fault.
func IsUnchecked(err error) bool {
	var f *Fault
	return fallible.IsPanic(err) || errors.Is(err, ErrNoSuchElement) || errors.As(err, &f)
}

// raise panics with err following the unchecked policy. A recovered panic is
// re-raised with its original value.
func raise(err error) {
	var p *fallible.PanicError
	if errors.As(err, &p) {
		panic(p.Value)
	}
	if IsUnchecked(err) {
		panic(err)
	}
	panic(newFault(err))
}
