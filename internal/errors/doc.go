// Package errors defines error types for the gnuplot channel.
//
// This package provides structured error types for the failure scenarios of
// driving a gnuplot child process. All error types support error unwrapping
// and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
