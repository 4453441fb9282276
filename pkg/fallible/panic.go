package fallible

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

// PanicError records a panic recovered while running a fallible operation.
type PanicError struct {
	// Value is whatever was passed to panic.
	Value any
	// Stack is the goroutine stack at the moment of recovery.
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it is itself an error, so that
// errors.As(err, &runtimeErr) finds e.g. an integer divide by zero.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// Format prints the stack for %+v.
func (p *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s\n%s", p.Error(), p.Stack)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, p.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	}
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = &PanicError{Value: r, Stack: debug.Stack()}
	}
}

// IsPanic reports whether err carries a recovered panic.
func IsPanic(err error) bool {
	var p *PanicError
	return errors.As(err, &p)
}

// IsNil reports whether i is nil or holds a nil pointer, map, slice, func,
// channel or interface. A typed nil error is nil here while err != nil holds.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsCancellation reports whether err comes from a done context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
