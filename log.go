package gnuplot

import (
	"github.com/wagiedev/gnuplot-go/internal/errors"
	"github.com/wagiedev/gnuplot-go/internal/logcapture"
)

// TokenScanner reads whitespace-delimited tokens from captured output.
type TokenScanner = logcapture.TokenScanner

// Log flushes pending commands, waits briefly for gnuplot to write its
// output, and returns the captured log: all of it when lines <= 0, the
// last lines lines otherwise.
//
// The wait is a fixed delay, not a handshake. Requires WithLogCapture or
// WithLogFile.
func (g *Gnuplot) Log(lines int) (string, error) {
	if g.capture == nil {
		return "", errors.ErrLogNotConfigured
	}

	if err := g.proc.Flush(); err != nil {
		return "", err
	}

	return g.capture.Read(lines)
}

// Scan returns a token scanner over the last lines lines of the log:
//
//	g.Sendf("print x, y")
//	var x, y int
//	s, err := g.Scan(1)
//	...
//	err = s.Scan(&x, &y)
func (g *Gnuplot) Scan(lines int) (*TokenScanner, error) {
	text, err := g.Log(lines)
	if err != nil {
		return nil, err
	}

	return logcapture.NewTokenScanner(text), nil
}
