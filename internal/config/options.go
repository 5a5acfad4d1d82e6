// Package config provides configuration types for the gnuplot channel.
package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultExecutable is the conventional gnuplot binary name.
	DefaultExecutable = "gnuplot"

	// ExecutableEnv overrides the gnuplot executable path.
	ExecutableEnv = "GNUPLOT"

	// SkipVersionCheckEnv disables the advisory version check when set.
	SkipVersionCheckEnv = "GNUPLOT_GO_SKIP_VERSION_CHECK"

	// DefaultLogSettle is how long log reads wait for gnuplot to flush.
	DefaultLogSettle = 100 * time.Millisecond

	// DefaultBlockTerminator closes a named data block.
	DefaultBlockTerminator = "EOD"
)

// Options configures a gnuplot channel.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Executable is an explicit gnuplot path. It takes precedence over
	// the GNUPLOT environment variable and PATH search.
	Executable string

	// Persist keeps plot windows open after the input ends (-persist).
	Persist bool

	// Env provides additional environment variables for the process.
	Env map[string]string

	// LogCapture redirects gnuplot output to an implicit temporary file
	// that is removed on Close.
	LogCapture bool

	// LogFile redirects gnuplot output to an explicit file that is kept
	// after Close. Takes precedence over LogCapture.
	LogFile string

	// LogSettle is the delay before reading the log back.
	LogSettle time.Duration

	// Stderr receives gnuplot's stderr line by line when no log is configured.
	Stderr func(line string)

	// BlockTerminator closes named data blocks. Defaults to "EOD".
	BlockTerminator string

	// SkipVersionCheck skips the advisory gnuplot version check.
	SkipVersionCheck bool
}

// Default returns options with the channel defaults applied.
func Default() *Options {
	return &Options{
		Persist:         true,
		LogSettle:       DefaultLogSettle,
		BlockTerminator: DefaultBlockTerminator,
	}
}

// LogEnabled reports whether output capture is configured.
func (o *Options) LogEnabled() bool {
	return o.LogCapture || o.LogFile != ""
}
