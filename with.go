package gnuplot

import (
	"context"
	"fmt"
)

// With manages the channel lifecycle with automatic cleanup.
//
// It opens a channel with the provided options, runs fn, and closes the
// channel on every exit path, including panics in fn. A Close failure is
// logged and returned only when fn itself succeeded.
//
//	err := gnuplot.With(ctx, func(g *gnuplot.Gnuplot) error {
//	    return g.Send("plot sin(x)")
//	}, gnuplot.WithPersist(true))
func With(ctx context.Context, fn func(*Gnuplot) error, opts ...Option) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	g, err := New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to start gnuplot: %w", err)
	}

	defer func() {
		if closeErr := g.Close(); closeErr != nil {
			g.log.Warn("failed to close gnuplot", "error", closeErr)

			if err == nil {
				err = closeErr
			}
		}
	}()

	return fn(g)
}
