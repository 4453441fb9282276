package trywrap

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func TestUnwrap_ByState(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	v, err := OfValue(1).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = OfError[int](boom).Unwrap()
	assert.Same(t, boom, err)

	_, err = OfEmpty[int]().Unwrap()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

func TestUnwrap_ReadsExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "large")
	content := bytes.Repeat([]byte("x"), 45)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	b, err := Of(func() ([]byte, error) { return os.ReadFile(path) }).Unwrap()
	require.NoError(t, err)
	assert.Len(t, b, 45)
}

func TestUnwrapOr_NeverYieldsStoredError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10, OfValue(10).UnwrapOr(-1))
	assert.Equal(t, -1, OfError[int](errors.New("boom")).UnwrapOr(-1))
	assert.Equal(t, -1, OfEmpty[int]().UnwrapOr(-1))

	var none *int
	assert.Nil(t, OfEmpty[*int]().UnwrapOr(none))
}

func TestUnwrapOrNone(t *testing.T) {
	t.Parallel()
	v, ok := Of(func() (int, error) { return 10, nil }).UnwrapOrNone()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	zero := 0
	v, ok = Of(func() (int, error) { return 10 / zero, nil }).UnwrapOrNone()
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = OfEmpty[int]().UnwrapOrNone()
	assert.False(t, ok)
}

func TestUnwrapOrRaise_Right(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10, OfValue(10).UnwrapOrRaise())
}

func TestUnwrapOrRaise_CapturedPanicIsReraisedAsIs(t *testing.T) {
	t.Parallel()
	zero := 0
	w := Of(func() (int, error) { return 10 / zero, nil })

	r := recovered(func() { w.UnwrapOrRaise() })
	_, ok := r.(runtime.Error)
	assert.True(t, ok, "expected runtime.Error, got %T", r)
}

func TestUnwrapOrRaise_PlainErrorIsWrappedInFault(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "doesNotExist")
	w := Of(func() (*os.File, error) { return os.Open(missing) })

	r := recovered(func() { w.UnwrapOrRaise() })
	f, ok := r.(*Fault)
	require.True(t, ok, "expected *Fault, got %T", r)
	assert.ErrorIs(t, f, os.ErrNotExist)
}

func TestUnwrapOrRaise_EmptyRaisesSentinel(t *testing.T) {
	t.Parallel()
	r := recovered(func() { OfEmpty[int]().UnwrapOrRaise() })
	assert.Equal(t, ErrEmpty, r)
}

func TestUnwrapOrRaiseWith(t *testing.T) {
	t.Parallel()
	custom := errors.New("pom.xml Not Found")

	v, err := OfValue("ok").UnwrapOrRaiseWith(custom)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = OfError[string](errors.New("boom")).UnwrapOrRaiseWith(custom)
	assert.Same(t, custom, err)

	_, err = OfEmpty[string]().UnwrapOrRaiseWith(custom)
	assert.Same(t, custom, err)
}

func TestUnwrapOrRaiseUnchecked(t *testing.T) {
	t.Parallel()
	custom := errors.New("empty guy")
	assert.Equal(t, 3, OfValue(3).UnwrapOrRaiseUnchecked(custom))

	for _, w := range []Wrap[int]{OfError[int](errors.New("boom")), OfEmpty[int]()} {
		r := recovered(func() { w.UnwrapOrRaiseUnchecked(custom) })
		f, ok := r.(*Fault)
		require.True(t, ok, "expected *Fault, got %T", r)
		assert.ErrorIs(t, f, custom)
	}
}

func TestIfPresent_CallsConsumerOnRightOnly(t *testing.T) {
	t.Parallel()
	called := false
	Of(func() (string, error) { return "abc", nil }).IfPresent(func(string) error { called = true; return nil })
	assert.True(t, called)

	called = false
	zero := 0
	Of(func() (int, error) { return 10 / zero, nil }).IfPresent(func(int) error { called = true; return nil })
	OfEmpty[int]().IfPresent(func(int) error { called = true; return nil })
	assert.False(t, called)
}

func TestIfPresent_ConsumerFailurePanicsUnchecked(t *testing.T) {
	t.Parallel()
	zero := 0
	r := recovered(func() {
		OfValue("abc").IfPresent(func(string) error { _ = 10 / zero; return nil })
	})
	f, ok := r.(*Fault)
	require.True(t, ok, "expected *Fault, got %T", r)
	var re runtime.Error
	assert.ErrorAs(t, f, &re)

	boom := errors.New("boom")
	r = recovered(func() { OfValue(1).IfPresent(func(int) error { return boom }) })
	f, ok = r.(*Fault)
	require.True(t, ok)
	assert.ErrorIs(t, f, boom)
}

func TestOnErrorConsume(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	var seen error
	consume := func(err error) error { seen = err; return nil }

	OfValue(1).OnErrorConsume(consume)
	assert.Nil(t, seen)

	OfEmpty[int]().OnErrorConsume(consume)
	assert.Nil(t, seen)

	OfError[int](boom).OnErrorConsume(consume)
	assert.Same(t, boom, seen)

	OfRunnable[int](func() error { return nil }).OnErrorConsume(consume)
	assert.Same(t, boom, seen)
}

func TestOnErrorConsume_ConsumerFailurePanicsUnchecked(t *testing.T) {
	t.Parallel()
	zero := 0
	w := Of(func() (int, error) { return 10 / zero, nil })
	r := recovered(func() {
		w.OnErrorConsume(func(error) error { _ = 10 / zero; return nil })
	})
	_, ok := r.(*Fault)
	assert.True(t, ok, "expected *Fault, got %T", r)
}

func TestIfPresentOrElseConsume(t *testing.T) {
	t.Parallel()
	zero := 0
	var consumerCalled int
	var seen error
	ok := func(string) error { consumerCalled = 2; return nil }
	onErr := func(err error) error { consumerCalled = 1; seen = err; return nil }

	Of(func() (string, error) { return "abc", nil }).IfPresentOrElseConsume(ok, onErr)
	assert.Equal(t, 2, consumerCalled)

	Of(func() (string, error) { return string(rune(10 / zero)), nil }).IfPresentOrElseConsume(ok, onErr)
	assert.Equal(t, 1, consumerCalled)

	consumerCalled = 0
	OfEmpty[string]().IfPresentOrElseConsume(ok, onErr)
	assert.Equal(t, 1, consumerCalled)
	assert.Equal(t, ErrEmpty, seen)
}

func TestOrElseFprintDiagnostic(t *testing.T) {
	t.Parallel()
	zero := 0
	var buf bytes.Buffer

	OfValue(1).OrElseFprintDiagnostic(&buf)
	OfEmpty[int]().OrElseFprintDiagnostic(&buf)
	assert.Zero(t, buf.Len())

	Of(func() (int, error) { return 10 / zero, nil }).OrElseFprintDiagnostic(&buf)
	assert.Contains(t, buf.String(), "divide by zero")
	assert.Contains(t, buf.String(), "goroutine")
}

func TestOrElsePrintAndLogDiagnostic(t *testing.T) {
	t.Parallel()
	w := OfError[int](errors.New("boom"))
	assert.NotPanics(t, w.OrElsePrintDiagnostic)
	assert.NotPanics(t, w.OrElseLogDiagnostic)
}

func TestFault_Format(t *testing.T) {
	t.Parallel()
	f := newFault(errors.New("boom"))
	assert.Equal(t, "trywrap: unchecked: boom", f.Error())
	assert.True(t, IsUnchecked(f))
	assert.True(t, IsUnchecked(ErrEmpty))
	assert.False(t, IsUnchecked(errors.New("plain")))
}
