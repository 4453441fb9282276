package trywrap

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
	"reflect"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/trywrap/pkg/fallible"
)

var log = logging.Logger("trywrap")

type state uint8

const (
	stateEmpty state = iota
	stateRight
	stateLeft
)

// Wrap holds a value (Right), a captured error (Left) or nothing (Empty).
// The zero Wrap is Empty.
type Wrap[T any] struct {
	value T
	err   error
	state state
}

// Of calls s exactly once and captures its outcome: Right with the value, or
// Left with the returned error or recovered panic.
func Of[T any](s fallible.Supplier[T]) Wrap[T] {
	v, err := fallible.Get(s)
	if err != nil {
		return captured[T](err)
	}
	return OfValue(v)
}

// OfRunnable calls r exactly once. It yields Empty when r completes and Left
// when it fails.
func OfRunnable[T any](r fallible.Runnable) Wrap[T] {
	if err := fallible.Run(r); err != nil {
		return captured[T](err)
	}
	return OfEmpty[T]()
}

// OfValue returns Right(v).
func OfValue[T any](v T) Wrap[T] {
	return Wrap[T]{value: v, state: stateRight}
}

// OfError returns Left(err). A nil err, typed nil pointers included, is
// replaced by ErrNilCause.
func OfError[T any](err error) Wrap[T] {
	if fallible.IsNil(err) {
		err = ErrNilCause
	}
	return Wrap[T]{err: err, state: stateLeft}
}

// OfEmpty returns Empty. Retrieving from it fails with ErrEmpty.
func OfEmpty[T any]() Wrap[T] {
	return Wrap[T]{err: ErrEmpty, state: stateEmpty}
}

// Right is an alias of OfValue.
func Right[T any](v T) Wrap[T] { return OfValue(v) }

// Left is an alias of OfError.
func Left[T any](err error) Wrap[T] { return OfError[T](err) }

func captured[T any](err error) Wrap[T] {
	if fallible.IsPanic(err) {
		log.Debugf("captured panic: %v", err)
	}
	return OfError[T](err)
}

func (w Wrap[T]) IsRight() bool { return w.state == stateRight }

func (w Wrap[T]) IsLeft() bool { return w.state == stateLeft }

func (w Wrap[T]) IsEmpty() bool { return w.state == stateEmpty }

// Right returns the value. On Left or Empty it fails with a retrieval error
// wrapping ErrNoSuchElement, never with the captured error.
func (w Wrap[T]) Right() (T, error) {
	if w.state != stateRight {
		var zero T
		return zero, errNoValue
	}
	return w.value, nil
}

// Left returns the captured error, or ErrEmpty for an Empty wrap. On Right it
// fails with a retrieval error wrapping ErrNoSuchElement.
func (w Wrap[T]) Left() (error, error) {
	if w.state == stateRight {
		return nil, errNoError
	}
	return w.cause(), nil
}

func (w Wrap[T]) cause() error {
	switch w.state {
	case stateRight:
		return nil
	case stateLeft:
		return w.err
	default:
		return ErrEmpty
	}
}

// Equal compares state, value and error structurally with reflect.DeepEqual.
// It is not reflexive for values DeepEqual rejects against themselves: a
// Right holding NaN or a non-nil func is not Equal to itself.
func (w Wrap[T]) Equal(o Wrap[T]) bool {
	return w.state == o.state &&
		reflect.DeepEqual(w.value, o.value) &&
		reflect.DeepEqual(w.cause(), o.cause())
}

// Hash derives a hash from the state, a value of basic kind and the dynamic
// type of the error. Wraps that are Equal always hash alike whatever T is;
// values of other kinds do not contribute.
func (w Wrap[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_ = h.WriteByte(byte(w.state))
	if w.state == stateRight {
		hashValue(&h, reflect.ValueOf(w.value))
	}
	if c := w.cause(); c != nil {
		_, _ = h.WriteString(reflect.TypeOf(c).String())
	}
	return h.Sum64()
}

func hashValue(h *maphash.Hash, v reflect.Value) {
	var buf [8]byte
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			buf[0] = 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], v.Uint())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == 0 {
			f = 0 // -0 == +0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	case reflect.String:
		_, _ = h.WriteString(v.String())
		return
	default:
		return
	}
	_, _ = h.Write(buf[:])
}

func (w Wrap[T]) String() string {
	switch w.state {
	case stateRight:
		return fmt.Sprintf("Right(%v)", w.value)
	case stateLeft:
		return fmt.Sprintf("Left(%v)", w.err)
	default:
		return "Empty"
	}
}
