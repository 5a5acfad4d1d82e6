package gnuplot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNotFoundError_ThroughLaunch checks that a missing executable surfaces
// as both a launch failure and a not-found error.
func TestNotFoundError_ThroughLaunch(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gnuplot")

	_, err := New(context.Background(), WithExecutable(missing))
	require.Error(t, err)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Contains(t, notFound.SearchedPaths, missing)
}

// TestError_Interface tests that every exported error type is an Error.
func TestError_Interface(t *testing.T) {
	errs := []error{
		&NotFoundError{SearchedPaths: []string{"$PATH"}},
		&LaunchError{Err: fmt.Errorf("boom")},
		&FormatError{Format: "%d", Output: "%!d(string=x)"},
		&ColumnLengthError{Column: 1, Want: 3, Got: 2},
		&TokenError{Token: "abc", Kind: "int", Err: fmt.Errorf("bad")},
		&ProcessError{ExitCode: 1, Err: fmt.Errorf("exit status 1")},
	}

	for _, err := range errs {
		var gerr Error
		require.True(t, errors.As(err, &gerr), "%T", err)
		require.True(t, gerr.IsGnuplotError())
	}
}

// TestProcessError_Wrapped tests matching a wrapped ProcessError.
func TestProcessError_Wrapped(t *testing.T) {
	err := fmt.Errorf("render: %w", &ProcessError{ExitCode: 3, Err: fmt.Errorf("exit status 3")})

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, 3, procErr.ExitCode)
	require.Contains(t, err.Error(), "gnuplot exited with status 3")
}

// TestSentinels tests sentinel identity through wrapping.
func TestSentinels(t *testing.T) {
	require.ErrorIs(t, fmt.Errorf("send: %w", ErrChannelClosed), ErrChannelClosed)
	require.ErrorIs(t, fmt.Errorf("log: %w", ErrLogNotConfigured), ErrLogNotConfigured)
	require.NotErrorIs(t, ErrNoToken, ErrChannelClosed)
}
