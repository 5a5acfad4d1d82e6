// Command g3p drives gnuplot from the command line: evaluate commands and
// print their output, or render TOML plot scripts with inline data.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
