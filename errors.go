package gnuplot

import "github.com/wagiedev/gnuplot-go/internal/errors"

// Re-export error types from internal package

// Error is the base interface for all channel errors.
type Error = errors.GnuplotError

// LaunchError indicates gnuplot could not be started.
type LaunchError = errors.LaunchError

// NotFoundError indicates the gnuplot executable was not found.
type NotFoundError = errors.NotFoundError

// FormatError indicates a command template and its arguments did not match.
type FormatError = errors.FormatError

// ColumnLengthError indicates the columns of a data block differ in length.
type ColumnLengthError = errors.ColumnLengthError

// TokenError indicates a log token could not be converted.
type TokenError = errors.TokenError

// ProcessError indicates gnuplot exited with a failure status.
type ProcessError = errors.ProcessError

// Re-export sentinel errors from internal package.
var (
	// ErrChannelClosed indicates the channel has been closed.
	ErrChannelClosed = errors.ErrChannelClosed

	// ErrLogNotConfigured indicates Log or Scan on a channel without a log.
	ErrLogNotConfigured = errors.ErrLogNotConfigured

	// ErrNoToken indicates a token scanner ran out of input.
	ErrNoToken = errors.ErrNoToken

	// ErrUnknownToken indicates Append was given a nil Token or an
	// undefined Control.
	ErrUnknownToken = errors.ErrUnknownToken
)
