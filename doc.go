// Package gnuplot drives an external gnuplot process through its stdin.
//
// A channel is a one-way, ordered stream of command text. Commands are
// written with a printf-style call or appended token by token, numeric
// columns are uploaded as named inline data blocks, and gnuplot's own
// output can optionally be captured in a log file and read back.
//
// # Basic Usage
//
//	g, err := gnuplot.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	_ = g.Send("set title 'Bessel'")
//	_ = g.Sendf("plot besj0(x)*%d with lines", 2)
//
// # Appending Tokens
//
// Append writes Text, numeric and control tokens, each text or number
// preceded by a space:
//
//	_ = g.Append(gnuplot.Text("x="), gnuplot.Int(314159), gnuplot.Text(";"),
//	    gnuplot.Text("y="), gnuplot.Float(2.5), gnuplot.Endl)
//
// # Data Blocks
//
// DataBlock serializes columns into "$name << EOD ... EOD" and returns the
// generated name:
//
//	name, err := gnuplot.DataBlock(g, gnuplot.Layout{Row: 1}, xs, ys)
//	if err != nil {
//	    return err
//	}
//	_ = g.Sendf("plot %s using 1:2 with linespoints", name)
//
// # Reading Output
//
// With WithLogCapture or WithLogFile, gnuplot's stdout and stderr go to a
// file. Log and Scan flush, wait a short fixed delay and read it back:
//
//	g, _ := gnuplot.New(ctx, gnuplot.WithLogCapture(), gnuplot.WithPersist(false))
//	_ = g.Script("x=314159", "y=-271828", "print x, y")
//	s, _ := g.Scan(1)
//	var x, y int
//	_ = s.Scan(&x, &y)
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	g, err := gnuplot.New(ctx, gnuplot.WithLogger(logger))
//
// # Error Handling
//
// Starting the channel is the only step expected to fail. It returns a
// *LaunchError, wrapping a *NotFoundError when no executable was found:
//
//	g, err := gnuplot.New(ctx)
//	if notFound, ok := errors.AsType[*gnuplot.NotFoundError](err); ok {
//	    log.Fatalf("gnuplot not installed, searched: %v", notFound.SearchedPaths)
//	}
//
// # Requirements
//
// gnuplot 5.0 or newer on PATH, or named by the GNUPLOT environment
// variable or WithExecutable.
package gnuplot
