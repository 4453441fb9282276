package chain

import (
	"context"

	"github.com/ib-77/trywrap/pkg/fallible"
	"github.com/ib-77/trywrap/pkg/trywrap"
)

type Chain[T any] struct {
	ctx context.Context
	w   trywrap.Wrap[T]
}

func Start[T any](ctx context.Context, w trywrap.Wrap[T]) Chain[T] {
	return Chain[T]{ctx: ctx, w: w}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, trywrap.OfValue(v))
}

// From calls s once, passing it the chain context.
func From[T any](ctx context.Context, s func(ctx context.Context) (T, error)) Chain[T] {
	if err := ctx.Err(); err != nil {
		return Start(ctx, trywrap.OfError[T](err))
	}
	return Start(ctx, trywrap.Of(func() (T, error) { return s(ctx) }))
}

func (c Chain[T]) Result() trywrap.Wrap[T] {
	return c.w
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// halted reports whether the next step must be skipped, turning the chain into
// Left when the context is done.
func (c Chain[T]) halted() (Chain[T], bool) {
	if !c.w.IsRight() {
		return c, true
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, w: trywrap.OfError[T](err)}, true
	}
	return c, false
}

func (c Chain[T]) value() T {
	v, _ := c.w.Right()
	return v
}

// Then composes steps that already return a trywrap.Wrap[T]
func (c Chain[T]) Then(onRight func(ctx context.Context, t T) trywrap.Wrap[T]) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	return Chain[T]{ctx: c.ctx, w: trywrap.FlatMap(c.w, func(t T) trywrap.Wrap[T] { return onRight(c.ctx, t) })}
}

// ThenTry composes steps that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	return Chain[T]{ctx: c.ctx, w: c.w.Map(func(t T) (T, error) { return try(c.ctx, t) })}
}

// Map transforms the Right value
func (c Chain[T]) Map(onRight func(ctx context.Context, t T) T) Chain[T] {
	return c.ThenTry(func(ctx context.Context, t T) (T, error) { return onRight(ctx, t), nil })
}

// Filter keeps the value while keep holds and turns the chain Empty otherwise
func (c Chain[T]) Filter(keep func(ctx context.Context, t T) (bool, error)) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	return Chain[T]{ctx: c.ctx, w: c.w.Filter(func(t T) (bool, error) { return keep(c.ctx, t) })}
}

// Switch moves the chain to another value type
func Switch[T, U any](c Chain[T], onRight func(ctx context.Context, t T) (U, error)) Chain[U] {
	if h, stop := c.halted(); stop {
		return Chain[U]{ctx: c.ctx, w: retype[T, U](h.w)}
	}
	return Chain[U]{ctx: c.ctx, w: trywrap.Map(c.w, func(t T) (U, error) { return onRight(c.ctx, t) })}
}

func retype[T, U any](w trywrap.Wrap[T]) trywrap.Wrap[U] {
	return trywrap.FlatMap(w, func(T) trywrap.Wrap[U] { return trywrap.OfEmpty[U]() })
}

// RepeatUntil runs onRight at least once and again until done holds.
func (c Chain[T]) RepeatUntil(onRight func(ctx context.Context, t T) trywrap.Wrap[T],
	done func(ctx context.Context, t T) bool) Chain[T] {

	if h, stop := c.halted(); stop {
		return h
	}

	for {
		c = c.Then(onRight)

		if !c.w.IsRight() || done(c.ctx, c.value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onRight func(ctx context.Context, t T) trywrap.Wrap[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.w.IsRight() && while(c.ctx, c.value()) {
		c = c.Then(onRight)
	}
	return c
}

// Or returns the first Right chain, else the first Left, else c.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	hasLeft := false
	var leftChain Chain[T]

	for _, ch := range candidates {
		if ch.w.IsRight() {
			return ch
		}
		if ch.w.IsLeft() && !hasLeft {
			hasLeft = true
			leftChain = ch
		}
	}

	if hasLeft {
		return leftChain
	}
	return c
}

// And returns the first chain that is not Right, else the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if !ch.w.IsRight() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects per state without changing the result. Nil
// handlers are skipped.
func (c Chain[T]) Ensure(onRight func(context.Context, T), onLeft func(context.Context, error),
	onEmpty func(context.Context)) Chain[T] {

	switch {
	case c.w.IsRight():
		if onRight != nil {
			onRight(c.ctx, c.value())
		}
	case c.w.IsLeft():
		if onLeft != nil {
			err, _ := c.w.Left()
			onLeft(c.ctx, err)
		}
	default:
		if onEmpty != nil {
			onEmpty(c.ctx)
		}
	}
	return c
}

// Finally collapses the chain to a final value
func Finally[T, U any](c Chain[T],
	onRight func(context.Context, T) U,
	onLeft func(context.Context, error) U,
	onEmpty func(context.Context) U,
) U {
	switch {
	case c.w.IsRight():
		return onRight(c.ctx, c.value())
	case c.w.IsLeft():
		err, _ := c.w.Left()
		return onLeft(c.ctx, err)
	default:
		return onEmpty(c.ctx)
	}
}

// TryThen adapts a fallible.Function into a Then step.
func TryThen[T any](f fallible.Function[T, T]) func(context.Context, T) trywrap.Wrap[T] {
	return func(_ context.Context, t T) trywrap.Wrap[T] {
		return trywrap.Map(trywrap.OfValue(t), f)
	}
}
