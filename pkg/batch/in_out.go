package batch

import (
	"context"
)

// Emit sends values on a new channel until they run out or ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
