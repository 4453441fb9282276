package batch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/trywrap/pkg/fallible"
	"github.com/ib-77/trywrap/pkg/trywrap"
)

var log = logging.Logger("trywrap/batch")

// Job is the outcome of one input processed by Run.
type Job[T any] struct {
	ID     uuid.UUID
	Index  int
	Result trywrap.Wrap[T]
}

// Cancelled reports whether the job failed because its context was done.
func (j Job[T]) Cancelled() bool {
	err, ok := j.Result.Left()
	return ok == nil && fallible.IsCancellation(err)
}

type indexed[T any] struct {
	index int
	value T
}

// OfAll applies f to every input in order, calling it exactly once per input.
func OfAll[In, Out any](inputs []In, f fallible.Function[In, Out]) []trywrap.Wrap[Out] {
	out := make([]trywrap.Wrap[Out], len(inputs))
	for i, in := range inputs {
		out[i] = trywrap.Map(trywrap.OfValue(in), f)
	}
	return out
}

// Run applies f to every value received on inputCh using lines workers. When
// lines <= 0 the count comes from LinesFrom(ctx, 1). Jobs are emitted in
// completion order; Index is the position of the value on inputCh. After ctx
// is done workers stop reading, and a value already taken may still be emitted
// as Left with the context error.
func Run[In, Out any](ctx context.Context, inputCh <-chan In, f fallible.Function[In, Out],
	lines int) <-chan Job[Out] {

	if lines <= 0 {
		lines = LinesFrom(ctx, 1)
	}

	numbered := make(chan indexed[In])
	go func() {
		defer close(numbered)
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-inputCh:
				if !ok {
					return
				}
				select {
				case numbered <- indexed[In]{index: i, value: v}:
					i++
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	out := make(chan Job[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go worker(ctx, numbered, out, f, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[In, Out any](ctx context.Context, inputCh <-chan indexed[In], outCh chan<- Job[Out],
	f fallible.Function[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			job := Job[Out]{ID: uuid.New(), Index: in.index}
			if err := ctx.Err(); err != nil {
				job.Result = trywrap.OfError[Out](err)
			} else {
				job.Result = trywrap.Map(trywrap.OfValue(in.value), f)
			}
			switch {
			case job.Cancelled():
				log.Debugw("job cancelled", "id", job.ID, "index", job.Index)
			case job.Result.IsLeft():
				log.Debugw("job failed", "id", job.ID, "index", job.Index, "result", job.Result)
			}

			select {
			case outCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Rights returns the values of the Right wraps, in order.
func Rights[T any](ws []trywrap.Wrap[T]) []T {
	rights, _, _ := Partition(ws)
	return rights
}

// Lefts returns the errors of the Left wraps, in order.
func Lefts[T any](ws []trywrap.Wrap[T]) []error {
	_, lefts, _ := Partition(ws)
	return lefts
}

// Partition splits ws into Right values, Left errors and the count of Empty.
func Partition[T any](ws []trywrap.Wrap[T]) (rights []T, lefts []error, empties int) {
	for _, w := range ws {
		switch {
		case w.IsRight():
			v, _ := w.Right()
			rights = append(rights, v)
		case w.IsLeft():
			err, _ := w.Left()
			lefts = append(lefts, err)
		default:
			empties++
		}
	}
	return rights, lefts, empties
}

// Results unwraps the Result of every job.
func Results[T any](jobs []Job[T]) []trywrap.Wrap[T] {
	out := make([]trywrap.Wrap[T], len(jobs))
	for i, j := range jobs {
		out[i] = j.Result
	}
	return out
}
