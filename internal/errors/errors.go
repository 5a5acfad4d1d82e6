package errors

import (
	"errors"
	"fmt"
	"strings"
)

// GnuplotError is the base interface for all channel errors.
type GnuplotError interface {
	error
	IsGnuplotError() bool
}

// Compile-time verification that all error types implement GnuplotError.
var (
	_ GnuplotError = (*NotFoundError)(nil)
	_ GnuplotError = (*LaunchError)(nil)
	_ GnuplotError = (*FormatError)(nil)
	_ GnuplotError = (*ColumnLengthError)(nil)
	_ GnuplotError = (*TokenError)(nil)
	_ GnuplotError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrChannelClosed indicates the channel has been closed and its pipe released.
	ErrChannelClosed = errors.New("gnuplot channel closed")

	// ErrLogNotConfigured indicates output capture was requested on a channel
	// opened without a log destination.
	ErrLogNotConfigured = errors.New("gnuplot log capture not configured")

	// ErrNoToken indicates a token scanner ran out of input.
	ErrNoToken = errors.New("no more tokens")

	// ErrUnknownToken indicates an Append token outside the known set, such
	// as a nil Token or an undefined Control value.
	ErrUnknownToken = errors.New("unknown append token")
)

// NotFoundError indicates the gnuplot executable was not found.
type NotFoundError struct {
	SearchedPaths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gnuplot not found in: %v", e.SearchedPaths)
}

// IsGnuplotError implements GnuplotError.
func (e *NotFoundError) IsGnuplotError() bool { return true }

// LaunchError indicates the gnuplot process could not be started.
// It is the only fatal condition of a channel.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to launch gnuplot: %v", e.Err)
	}

	return fmt.Sprintf("failed to launch gnuplot (%s): %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsGnuplotError implements GnuplotError.
func (e *LaunchError) IsGnuplotError() bool { return true }

// FormatError indicates a command template and its arguments did not match.
// Output holds the text fmt produced, including its %! markers.
type FormatError struct {
	Format string
	Output string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad command format %q: %s", e.Format, e.Output)
}

// IsGnuplotError implements GnuplotError.
func (e *FormatError) IsGnuplotError() bool { return true }

// ColumnLengthError indicates the columns of a data block differ in length.
type ColumnLengthError struct {
	Column int
	Want   int
	Got    int
}

func (e *ColumnLengthError) Error() string {
	return fmt.Sprintf("data block column %d has %d values, want %d", e.Column, e.Got, e.Want)
}

// IsGnuplotError implements GnuplotError.
func (e *ColumnLengthError) IsGnuplotError() bool { return true }

// TokenError indicates a log token could not be converted to the requested type.
type TokenError struct {
	Token string
	Kind  string
	Err   error
}

func (e *TokenError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "token %q is not a valid %s", e.Token, e.Kind)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// IsGnuplotError implements GnuplotError.
func (e *TokenError) IsGnuplotError() bool { return true }

// ProcessError indicates gnuplot exited with a failure status after its
// input was closed.
type ProcessError struct {
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("gnuplot exited with status %d: %v", e.ExitCode, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsGnuplotError implements GnuplotError.
func (e *ProcessError) IsGnuplotError() bool { return true }
