package process

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"slices"
	"sync"
	"time"

	"github.com/wagiedev/gnuplot-go/internal/config"
	"github.com/wagiedev/gnuplot-go/internal/discovery"
	"github.com/wagiedev/gnuplot-go/internal/errors"
)

const (
	// writeBufferSize is the size of the buffer in front of gnuplot's stdin.
	writeBufferSize = 64 * 1024

	// waitDelay bounds how long Close waits for output copying after
	// gnuplot exits. Persistent plot windows can keep inherited pipes open.
	waitDelay = time.Second
)

// Process owns one gnuplot child process and the write end of its stdin.
type Process struct {
	log     *slog.Logger
	options *config.Options
	output  *os.File
	path    string
	args    []string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	w       *bufio.Writer
	stderr  *lineWriter
	mu      sync.Mutex // Serializes writes to stdin
	closed  bool
}

// New creates a process handle. Output, when non-nil, receives gnuplot's
// stdout and stderr. Nothing is spawned until Start.
func New(log *slog.Logger, options *config.Options, output *os.File) *Process {
	return &Process{
		log:     log.With("component", "process"),
		options: options,
		output:  output,
	}
}

// Start discovers the gnuplot executable and spawns it.
//
// The context bounds discovery and the version check only. Once started,
// gnuplot runs until its input is closed by Close.
//
// Every failure is returned as *errors.LaunchError.
func (p *Process) Start(ctx context.Context) error {
	p.log.Info("Starting gnuplot")

	path, err := discovery.NewDiscoverer(&discovery.Config{
		Executable:       p.options.Executable,
		SkipVersionCheck: p.options.SkipVersionCheck,
		Logger:           p.log,
	}).Discover(ctx)
	if err != nil {
		return &errors.LaunchError{Err: err}
	}

	p.path = path
	p.args = BuildArgs(p.options)
	p.log.Debug("Built command arguments", "args", p.args)

	//nolint:gosec // G204: the executable path is resolved by discovery
	cmd := exec.Command(p.path, p.args...)
	cmd.Env = BuildEnvironment(p.options)
	cmd.WaitDelay = waitDelay

	switch {
	case p.output != nil:
		cmd.Stdout = p.output
		cmd.Stderr = p.output
	case p.options.Stderr != nil:
		p.stderr = &lineWriter{fn: p.options.Stderr}
		cmd.Stderr = p.stderr
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		p.log.Error("Failed to create stdin pipe", "error", err)

		return &errors.LaunchError{Path: p.path, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		p.log.Error("Failed to start gnuplot", "error", err)

		return &errors.LaunchError{Path: p.path, Err: fmt.Errorf("start process: %w", err)}
	}

	p.cmd = cmd
	p.stdin = stdin
	p.w = bufio.NewWriterSize(stdin, writeBufferSize)
	p.log.Info("gnuplot started", "pid", cmd.Process.Pid, "path", p.path)

	return nil
}

// Path returns the resolved executable path after Start.
func (p *Process) Path() string {
	return p.path
}

// Write appends data to gnuplot's input buffer.
// Each call is written as a unit; concurrent calls never interleave.
func (p *Process) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.usable(); err != nil {
		return 0, err
	}

	p.log.Debug("Writing to gnuplot", "bytes", len(data))

	n, err := p.w.Write(data)
	if err != nil {
		return n, fmt.Errorf("write to stdin: %w", err)
	}

	return n, nil
}

// WriteAndFlush writes data and flushes under one lock acquisition.
func (p *Process) WriteAndFlush(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.usable(); err != nil {
		return err
	}

	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("write to stdin: %w", err)
	}

	return p.flush()
}

// Flush pushes buffered input into the pipe. It does not wait for gnuplot
// to read it.
func (p *Process) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.usable(); err != nil {
		return err
	}

	return p.flush()
}

func (p *Process) flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("flush stdin: %w", err)
	}

	return nil
}

func (p *Process) usable() error {
	if p.closed {
		return errors.ErrChannelClosed
	}

	if p.w == nil {
		return errors.ErrChannelClosed
	}

	return nil
}

// Close flushes pending input, closes stdin and waits for gnuplot to exit
// on its own. The process is never killed. Safe to call more than once.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	if p.cmd == nil {
		return nil
	}

	var flushErr error
	if err := p.w.Flush(); err != nil {
		flushErr = fmt.Errorf("flush stdin: %w", err)
	}

	p.log.Debug("Closing stdin pipe")

	if err := p.stdin.Close(); err != nil && flushErr == nil {
		flushErr = fmt.Errorf("close stdin: %w", err)
	}

	p.log.Debug("Waiting for gnuplot to exit", "pid", p.cmd.Process.Pid)

	err := p.cmd.Wait()

	if p.stderr != nil {
		p.stderr.flush()
	}

	if err != nil {
		if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
			p.log.Warn("gnuplot exited with error", "exit_code", exitErr.ExitCode())

			return &errors.ProcessError{ExitCode: exitErr.ExitCode(), Err: err}
		}

		if !stderrors.Is(err, exec.ErrWaitDelay) {
			return fmt.Errorf("wait for gnuplot: %w", err)
		}
	}

	p.log.Info("gnuplot exited")

	return flushErr
}

// BuildArgs returns the command line arguments for gnuplot.
func BuildArgs(options *config.Options) []string {
	args := make([]string, 0, 1)

	if options.Persist {
		args = append(args, "-persist")
	}

	return args
}

// BuildEnvironment returns the process environment: the current one plus
// options.Env, applied in key order so later duplicates win predictably.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for _, key := range slices.Sorted(maps.Keys(options.Env)) {
		env = append(env, key+"="+options.Env[key])
	}

	return env
}
