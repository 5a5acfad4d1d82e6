package gnuplot

import (
	"log/slog"
	"time"

	"github.com/wagiedev/gnuplot-go/internal/config"
)

// Options configures a channel. See the With* functions.
type Options = config.Options

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options on top of the channel defaults.
func applyOptions(opts []Option) *Options {
	options := config.Default()
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithExecutable sets the gnuplot executable, bypassing the GNUPLOT
// environment variable and the PATH search.
func WithExecutable(path string) Option {
	return func(o *Options) {
		o.Executable = path
	}
}

// WithPersist controls whether plot windows stay open after the channel
// closes. The default is true.
func WithPersist(persist bool) Option {
	return func(o *Options) {
		o.Persist = persist
	}
}

// WithEnv provides additional environment variables for gnuplot,
// e.g. {"GNUTERM": "dumb"}.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithLogCapture redirects gnuplot's output to a temporary file that is
// removed when the channel closes. Enables Log and Scan.
func WithLogCapture() Option {
	return func(o *Options) {
		o.LogCapture = true
	}
}

// WithLogFile redirects gnuplot's output to path, which is kept after the
// channel closes. Enables Log and Scan.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.LogFile = path
	}
}

// WithLogSettle sets how long Log and Scan wait for gnuplot to flush its
// output before reading. The default is 100ms.
func WithLogSettle(d time.Duration) Option {
	return func(o *Options) {
		o.LogSettle = d
	}
}

// WithStderr streams gnuplot's stderr to fn, one line per call.
// Ignored when a log is configured.
func WithStderr(fn func(line string)) Option {
	return func(o *Options) {
		o.Stderr = fn
	}
}

// WithBlockTerminator changes the line that ends named data blocks.
func WithBlockTerminator(terminator string) Option {
	return func(o *Options) {
		o.BlockTerminator = terminator
	}
}

// WithSkipVersionCheck disables the advisory gnuplot version check.
func WithSkipVersionCheck() Option {
	return func(o *Options) {
		o.SkipVersionCheck = true
	}
}
