package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/trywrap/pkg/batch"
	"github.com/ib-77/trywrap/pkg/trywrap"
)

type runIDKey struct{}

func withRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

func runID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(runIDKey{}).(uuid.UUID)
	return id
}

var ReadCmd = cli.Command{
	Name:      "read",
	Usage:     "read files and report their sizes",
	ArgsUsage: "<file>...",
	Flags: []cli.Flag{
		&linesFlag,
		&minSizeFlag,
	},
	Action: doRead,
}

var ParseCmd = cli.Command{
	Name:      "parse",
	Usage:     "parse integers and report their doubled values",
	ArgsUsage: "<number>...",
	Action:    doParse,
}

var DivideCmd = cli.Command{
	Name:      "divide",
	Usage:     "divide two integers; division by zero is captured, not fatal",
	ArgsUsage: "<dividend> <divisor>",
	Action:    doDivide,
}

func doRead(ctx *cli.Context) error {
	files := ctx.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("missing file arguments")
	}
	minSize := ctx.Int(minSizeFlag.Name)

	readSized := func(name string) (trywrap.Wrap[int], error) {
		return trywrap.Map(
			trywrap.Of(func() ([]byte, error) { return os.ReadFile(name) }).
				Filter(func(b []byte) (bool, error) { return len(b) >= minSize, nil }),
			func(b []byte) (int, error) { return len(b), nil },
		), nil
	}

	jobs := batch.Collect(ctx.Context,
		batch.Run(ctx.Context, batch.Emit(ctx.Context, files...), readSized, ctx.Int(linesFlag.Name)))

	results := make([]trywrap.Wrap[int], len(files))
	for _, j := range jobs {
		w := trywrap.FlatMap(j.Result, func(w trywrap.Wrap[int]) trywrap.Wrap[int] { return w })
		w.OrElseLogDiagnostic()
		results[j.Index] = w
	}

	failed := 0
	for i, w := range results {
		report(ctx.App.Writer, files[i], w, func(n int) string { return fmt.Sprintf("%d bytes", n) })
		if w.IsLeft() {
			failed++
		}
	}
	log.Infow("read done", "run", runID(ctx.Context), "files", len(files), "failed", failed)
	return nil
}

func doParse(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	for i, w := range batch.OfAll(args, strconv.Atoi) {
		doubled := w.Map(func(n int) (int, error) { return n * 2, nil })
		report(ctx.App.Writer, args[i], doubled, strconv.Itoa)
	}
	return nil
}

func doDivide(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected <dividend> <divisor>, got %d arguments", ctx.NArg())
	}
	a, err := strconv.Atoi(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := strconv.Atoi(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	w := trywrap.Of(func() (int, error) { return a / b, nil })
	w.OrElseLogDiagnostic()
	report(ctx.App.Writer, fmt.Sprintf("%d/%d", a, b), w, strconv.Itoa)
	return nil
}

func report[T any](out io.Writer, label string, w trywrap.Wrap[T], show func(T) string) {
	w.IfPresentOrElseConsume(
		func(v T) error {
			_, err := fmt.Fprintf(out, "%s\tright\t%s\n", label, show(v))
			return err
		},
		func(err error) error {
			state := "left"
			if w.IsEmpty() {
				state = "empty"
			}
			_, werr := fmt.Fprintf(out, "%s\t%s\t%v\n", label, state, err)
			return werr
		},
	)
}
