// Package gnuplottest provides a stand-in gnuplot for tests.
//
// A test package calls Main from TestMain. When the test binary is started
// with ModeEnv set, it behaves as a minimal gnuplot instead of running tests:
//
//	func TestMain(m *testing.M) {
//	    gnuplottest.Main()
//	    os.Exit(m.Run())
//	}
//
// Use then points a channel at the test binary.
package gnuplottest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"
)

const (
	// ModeEnv selects the fake's behaviour.
	ModeEnv = "GNUPLOT_GO_FAKE"

	// ExitEnv sets the fake's exit status.
	ExitEnv = "GNUPLOT_GO_FAKE_EXIT"

	// VersionBanner is what the fake prints for --version.
	VersionBanner = "gnuplot 5.4 patchlevel 8"
)

// Fake modes.
const (
	// ModeCat copies stdin to stdout unchanged.
	ModeCat = "cat"
	// ModeStderr copies stdin to stderr unchanged.
	ModeStderr = "stderr"
	// ModeInterp evaluates assignments and print statements.
	ModeInterp = "interp"
)

// Main runs the fake and exits when ModeEnv is set. Otherwise it returns.
func Main() {
	mode := os.Getenv(ModeEnv)
	if mode == "" {
		return
	}

	for _, arg := range os.Args[1:] {
		if arg == "--version" {
			fmt.Println(VersionBanner)
			os.Exit(0)
		}
	}

	switch mode {
	case ModeCat:
		_, _ = io.Copy(os.Stdout, os.Stdin)
	case ModeStderr:
		_, _ = io.Copy(os.Stderr, os.Stdin)
	case ModeInterp:
		interpret(os.Stdin, os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "unknown fake mode %q\n", mode)
		os.Exit(2)
	}

	code, _ := strconv.Atoi(os.Getenv(ExitEnv))
	os.Exit(code)
}

// Use configures the environment so that the current test binary acts as
// gnuplot in the given mode, and returns its path.
func Use(t testing.TB, mode string) string {
	t.Helper()

	t.Setenv(ModeEnv, mode)

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("locate test binary: %v", err)
	}

	return exe
}

// interpret evaluates a tiny gnuplot subset: "name=value" assignments
// separated by ';', "print expr, ..." of variables and literals, and
// "$name << EOD" data blocks, which are skipped. Printed values are joined
// by single spaces, as gnuplot does.
func interpret(in io.Reader, out io.Writer) {
	vars := map[string]string{}
	terminator := ""

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if terminator != "" {
			if line == terminator {
				terminator = ""
			}

			continue
		}

		if name, term, ok := strings.Cut(line, "<<"); ok && strings.HasPrefix(strings.TrimSpace(name), "$") {
			terminator = strings.TrimSpace(term)

			continue
		}

		for stmt := range strings.SplitSeq(line, ";") {
			stmt = strings.TrimSpace(stmt)

			switch {
			case stmt == "":
			case strings.HasPrefix(stmt, "print "):
				args := strings.Split(strings.TrimPrefix(stmt, "print "), ",")
				values := make([]string, 0, len(args))

				for _, arg := range args {
					values = append(values, evaluate(vars, strings.TrimSpace(arg)))
				}

				fmt.Fprintln(out, strings.Join(values, " "))
			case strings.Contains(stmt, "="):
				name, value, _ := strings.Cut(stmt, "=")
				vars[strings.TrimSpace(name)] = evaluate(vars, strings.TrimSpace(value))
			}
		}
	}
}

func evaluate(vars map[string]string, expr string) string {
	if v, ok := vars[expr]; ok {
		return v
	}

	if len(expr) >= 2 && (expr[0] == '\'' || expr[0] == '"') && expr[len(expr)-1] == expr[0] {
		return expr[1 : len(expr)-1]
	}

	return expr
}
