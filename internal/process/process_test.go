package process

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/gnuplot-go/internal/config"
	"github.com/wagiedev/gnuplot-go/internal/errors"
	"github.com/wagiedev/gnuplot-go/internal/gnuplottest"
)

func TestMain(m *testing.M) {
	gnuplottest.Main()
	os.Exit(m.Run())
}

func newOutput(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "gnuplot.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func startFake(t *testing.T, mode string, output *os.File, mutate ...func(*config.Options)) *Process {
	t.Helper()

	options := config.Default()
	options.Executable = gnuplottest.Use(t, mode)
	options.SkipVersionCheck = true

	for _, fn := range mutate {
		fn(options)
	}

	p := New(slog.Default(), options, output)
	require.NoError(t, p.Start(context.Background()))

	return p
}

func TestStart_NotFound(t *testing.T) {
	options := config.Default()
	options.Executable = "/nonexistent/gnuplot"

	p := New(slog.Default(), options, nil)
	err := p.Start(context.Background())

	launchErr, ok := stderrors.AsType[*errors.LaunchError](err)
	require.True(t, ok)

	_, ok = stderrors.AsType[*errors.NotFoundError](launchErr)
	require.True(t, ok)

	// A failed start leaves nothing to release.
	require.NoError(t, p.Close())
}

func TestWrite_OrderPreserved(t *testing.T) {
	out := newOutput(t)
	p := startFake(t, gnuplottest.ModeCat, out)

	_, err := p.Write([]byte("set xrange [0:1]\n"))
	require.NoError(t, err)
	require.NoError(t, p.WriteAndFlush([]byte("plot x\n")))
	_, err = p.Write([]byte("e\n"))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	require.Equal(t, "set xrange [0:1]\nplot x\ne\n", string(data))
}

func TestWrite_ConcurrentWritesDoNotInterleave(t *testing.T) {
	out := newOutput(t)
	p := startFake(t, gnuplottest.ModeCat, out)

	const writers = 10

	var wg sync.WaitGroup

	for i := range writers {
		wg.Go(func() {
			line := "print " + strconv.Itoa(i) + ", " + strconv.Itoa(i) + "\n"
			_, _ = p.Write([]byte(line))
		})
	}

	wg.Wait()
	require.NoError(t, p.Close())

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)

	for i := range writers {
		require.Contains(t, string(data), "print "+strconv.Itoa(i)+", "+strconv.Itoa(i)+"\n")
	}
}

func TestClose_WithoutCommands(t *testing.T) {
	p := startFake(t, gnuplottest.ModeCat, nil)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "second close is a no-op")
}

func TestWrite_AfterClose(t *testing.T) {
	p := startFake(t, gnuplottest.ModeCat, nil)
	require.NoError(t, p.Close())

	_, err := p.Write([]byte("plot x\n"))
	require.ErrorIs(t, err, errors.ErrChannelClosed)
	require.ErrorIs(t, p.Flush(), errors.ErrChannelClosed)
	require.ErrorIs(t, p.WriteAndFlush(nil), errors.ErrChannelClosed)
}

func TestWrite_BeforeStart(t *testing.T) {
	p := New(slog.Default(), config.Default(), nil)

	_, err := p.Write([]byte("plot x\n"))
	require.ErrorIs(t, err, errors.ErrChannelClosed)
}

func TestClose_ReportsExitStatus(t *testing.T) {
	t.Setenv(gnuplottest.ExitEnv, "3")

	p := startFake(t, gnuplottest.ModeCat, nil)
	err := p.Close()

	procErr, ok := stderrors.AsType[*errors.ProcessError](err)
	require.True(t, ok)
	require.Equal(t, 3, procErr.ExitCode)
}

func TestStderrCallback(t *testing.T) {
	var lines []string

	p := startFake(t, gnuplottest.ModeStderr, nil, func(o *config.Options) {
		o.Stderr = func(line string) { lines = append(lines, line) }
	})

	_, err := p.Write([]byte("line 1\r\nline 2\nunterminated"))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	require.Equal(t, []string{"line 1", "line 2", "unterminated"}, lines)
}

func TestBuildArgs(t *testing.T) {
	require.Equal(t, []string{"-persist"}, BuildArgs(&config.Options{Persist: true}))
	require.Empty(t, BuildArgs(&config.Options{}))
}

func TestBuildEnvironment(t *testing.T) {
	env := BuildEnvironment(&config.Options{
		Env: map[string]string{"GNUTERM": "dumb", "A_FIRST": "1"},
	})

	require.Contains(t, env, "GNUTERM=dumb")
	require.Equal(t, "GNUTERM=dumb", env[len(env)-1], "keys are applied in sorted order")
	require.Equal(t, "A_FIRST=1", env[len(env)-2])
}

func TestLineWriter_SplitsLongLines(t *testing.T) {
	var lines []string

	w := &lineWriter{fn: func(s string) { lines = append(lines, s) }}

	long := make([]byte, maxLineSize+10)
	for i := range long {
		long[i] = 'x'
	}

	_, err := w.Write(long)
	require.NoError(t, err)
	w.flush()

	require.Len(t, lines, 1)
	require.Len(t, lines[0], maxLineSize+10)
}
