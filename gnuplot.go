package gnuplot

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/wagiedev/gnuplot-go/internal/errors"
	"github.com/wagiedev/gnuplot-go/internal/logcapture"
	"github.com/wagiedev/gnuplot-go/internal/process"
)

// LogBanner is printed into a captured log before any user command.
const LogBanner = ">>>>> g3p -- gnuplot log <<<<<"

// fmtErrorMarker matches the markers fmt leaves for mismatched verbs and
// arguments: %!d(string=x), %!s(MISSING), %!(EXTRA int=1), %!(BADINDEX)...
var fmtErrorMarker = regexp.MustCompile(`%![a-zA-Z]?\(`)

// Gnuplot is an ordered command channel to one gnuplot process.
//
// Everything written through Send, Sendf, Append and the data block helpers
// reaches gnuplot in call order. A Gnuplot must not be copied; use the
// pointer returned by New.
type Gnuplot struct {
	noCopy noCopy

	log     *slog.Logger
	options *Options
	proc    *process.Process
	capture *logcapture.Log

	closeOnce sync.Once
	closeErr  error
}

// noCopy makes go vet's copylocks check report copies of a Gnuplot.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New starts gnuplot and returns a channel to it.
//
// The executable is resolved from WithExecutable, then the GNUPLOT
// environment variable, then PATH. The context bounds discovery only;
// cancelling it later has no effect on the running process.
//
// Any failure is returned as *LaunchError, and everything acquired up to
// that point is released.
func New(ctx context.Context, opts ...Option) (*Gnuplot, error) {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	g := &Gnuplot{
		log:     log.With("component", "gnuplot"),
		options: options,
	}

	if options.LogEnabled() {
		capture, err := logcapture.Create(log, options.LogFile, options.LogSettle)
		if err != nil {
			return nil, &errors.LaunchError{Err: err}
		}

		g.capture = capture
	}

	g.proc = process.New(log, options, g.captureFile())
	if err := g.proc.Start(ctx); err != nil {
		if g.capture != nil {
			_ = g.capture.Close()
		}

		return nil, err
	}

	if g.capture != nil {
		if err := g.Send(`print "` + LogBanner + `"`); err != nil {
			_ = g.Close()

			return nil, &errors.LaunchError{Path: g.proc.Path(), Err: err}
		}
	}

	return g, nil
}

func (g *Gnuplot) captureFile() *os.File {
	if g.capture == nil {
		return nil
	}

	return g.capture.File()
}

// Path returns the gnuplot executable in use.
func (g *Gnuplot) Path() string {
	return g.proc.Path()
}

// LogPath returns the captured log file, or "" when no log is configured.
func (g *Gnuplot) LogPath() string {
	if g.capture == nil {
		return ""
	}

	return g.capture.Path()
}

// Close ends gnuplot's input and waits for it to exit on its own; plot
// windows opened with persist stay up. An implicitly allocated log is
// removed. Close is safe to call more than once.
func (g *Gnuplot) Close() error {
	g.closeOnce.Do(func() {
		g.log.Debug("Closing gnuplot channel")

		err := g.proc.Close()

		if g.capture != nil {
			err = stderrors.Join(err, g.capture.Close())
		}

		g.closeErr = err
	})

	return g.closeErr
}

// Send writes line followed by a newline, without any substitution.
// Use it for commands that contain gnuplot's own % formats.
func (g *Gnuplot) Send(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	_, err := g.proc.Write(buf)

	return err
}

// Sendf formats a command with fmt.Sprintf semantics and writes it
// followed by a newline.
//
// A template whose verbs do not match its arguments is rejected with a
// *FormatError before anything is written. Literal percent signs must be
// doubled ("%%"), or the line sent with Send.
func (g *Gnuplot) Sendf(format string, args ...any) error {
	line := fmt.Sprintf(format, args...)

	if fmtErrorMarker.MatchString(line) {
		return &errors.FormatError{Format: format, Output: line}
	}

	return g.Send(line)
}

// Script sends each line in order.
func (g *Gnuplot) Script(lines ...string) error {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := g.proc.Write([]byte(b.String()))

	return err
}

// Flush pushes buffered commands to gnuplot. It does not wait for gnuplot
// to execute them.
func (g *Gnuplot) Flush() error {
	return g.proc.Flush()
}

// End terminates data sent inline after "plot '-'".
func (g *Gnuplot) End() error {
	return g.Send("e")
}

// EndBlock writes the data block terminator line.
func (g *Gnuplot) EndBlock() error {
	return g.Send(g.options.BlockTerminator)
}
