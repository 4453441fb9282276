package batch

import "context"

type OptionKey string

const LinesOptionKey OptionKey = "lines_options"

type LinesOptions struct {
	Count int
}

// WithLines sets the number of workers Run uses when called with lines <= 0.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, LinesOptionKey, LinesOptions{Count: lines})
}

func LinesFrom(ctx context.Context, defaultLines int) int {
	options, ok := ctx.Value(LinesOptionKey).(LinesOptions)
	if ok && options.Count > 0 {
		return options.Count
	}
	return defaultLines
}
