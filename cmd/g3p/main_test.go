package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gnuplot "github.com/wagiedev/gnuplot-go"
	"github.com/wagiedev/gnuplot-go/internal/gnuplottest"
)

func TestMain(m *testing.M) {
	gnuplottest.Main()
	os.Exit(m.Run())
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Keep a developer's own config out of the way.
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestVersion(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)

	out, err := execute(t, "", "version", "--gnuplot", exe)
	require.NoError(t, err)

	assert.Contains(t, out, "g3p "+version)
	assert.Contains(t, out, "gnuplot 5.4 ("+exe+")")
}

func TestVersion_NotFound(t *testing.T) {
	_, err := execute(t, "", "version", "--gnuplot", filepath.Join(t.TempDir(), "missing"))

	var notFound *gnuplot.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestEval_Expressions(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeInterp)

	out, err := execute(t, "",
		"eval", "--gnuplot", exe, "--persist=false", "--log-settle", "250ms",
		"-e", "x = 6; y = 7", "-e", "print x, y",
	)
	require.NoError(t, err)
	assert.Equal(t, "6 7\n", out)
}

func TestEval_Stdin(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeInterp)

	out, err := execute(t, "a = 1\nprint a\nprint \"done\"\n",
		"eval", "--gnuplot", exe, "--persist=false", "--log-settle", "250ms", "-",
	)
	require.NoError(t, err)
	assert.Equal(t, "1\ndone\n", out)
}

func TestEval_File(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeInterp)

	path := filepath.Join(t.TempDir(), "commands.gp")
	require.NoError(t, os.WriteFile(path, []byte("n = 3\nprint n\n"), 0o600))

	out, err := execute(t, "",
		"eval", "--gnuplot", exe, "--persist=false", "--log-settle", "250ms", path,
	)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEval_NothingToDo(t *testing.T) {
	_, err := execute(t, "", "eval")
	require.ErrorContains(t, err, "nothing to evaluate")
}

func TestEval_ConfigFromEnvironment(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeInterp)
	t.Setenv("G3P_GNUPLOT", exe)
	t.Setenv("G3P_PERSIST", "false")
	t.Setenv("G3P_LOG_SETTLE", "250ms")

	out, err := execute(t, "", "eval", "-e", `print "env"`)
	require.NoError(t, err)
	assert.Equal(t, "env\n", out)
}

func TestEval_ConfigFile(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeInterp)

	cfg := filepath.Join(t.TempDir(), "g3p.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"gnuplot: "+exe+"\npersist: false\nlog_settle: 250ms\n",
	), 0o600))

	out, err := execute(t, "", "--config", cfg, "eval", "-e", `print "file"`)
	require.NoError(t, err)
	assert.Equal(t, "file\n", out)
}

func TestEval_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "eval", "-e", "print 1")
	require.Error(t, err)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plot.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const testScript = `
persist = false
commands = ["plot @pts using 1:2 with lines"]

[[block]]
name = "pts"
columns = [[1, 2, 3], [4, 5, 6]]
`

func TestPlot(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)

	_, err := execute(t, "", "plot", "--gnuplot", exe, writeScript(t, testScript))
	require.NoError(t, err)
}

func TestRender_SendsScriptThroughChannel(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)
	logPath := filepath.Join(t.TempDir(), "gnuplot.log")

	v := viper.New()
	v.Set(keyGnuplot, exe)

	err := render(context.Background(), v, gnuplot.NopLogger(), writeScript(t, testScript),
		gnuplot.WithLogFile(logPath))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 7)

	header := regexp.MustCompile(`^(\$[a-zA-Z][a-zA-Z0-9]{7}) << EOD$`).FindStringSubmatch(lines[1])
	require.NotNil(t, header, lines[1])

	assert.Equal(t, []string{"1 4", "2 5", "3 6", "EOD"}, lines[2:6])
	assert.Equal(t, "plot "+header[1]+" using 1:2 with lines", lines[6])
}

func TestPlot_ExitStatus(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)
	t.Setenv(gnuplottest.ExitEnv, "3")

	_, err := execute(t, "", "plot", "--gnuplot", exe, writeScript(t, testScript))

	var procErr *gnuplot.ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, 3, procErr.ExitCode)
}

func TestPlot_InvalidScript(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)

	_, err := execute(t, "", "plot", "--gnuplot", exe, writeScript(t, "persist = \"yes\"\n"))
	require.Error(t, err)
}

func TestPlot_RequiresScript(t *testing.T) {
	_, err := execute(t, "", "plot")
	require.Error(t, err)
}

func TestWatchScript_StopsOnCancel(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)
	path := writeScript(t, testScript)

	v := viper.New()
	v.Set(keyGnuplot, exe)
	v.Set(keyPersist, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- watchScript(ctx, v, gnuplot.NopLogger(), path, 20*time.Millisecond)
	}()

	// A change while watching re-renders; a broken script only logs.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("not toml ="), 0o600))
	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestStripBanner(t *testing.T) {
	assert.Equal(t, "1\n", stripBanner(gnuplot.LogBanner+"\n1\n"))
	assert.Equal(t, "no banner\n", stripBanner("no banner\n"))
}

func TestConfig_PrintsEffectiveSettings(t *testing.T) {
	t.Setenv("G3P_GNUPLOT", "/opt/gnuplot/bin/gnuplot")

	out, err := execute(t, "", "config", "--persist=false", "--log-settle", "1s")
	require.NoError(t, err)

	assert.Equal(t, `gnuplot: /opt/gnuplot/bin/gnuplot
persist: false
log_settle: 1s
verbose: false
`, out)
}
