package gnuplot_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	gnuplot "github.com/wagiedev/gnuplot-go"
	"github.com/wagiedev/gnuplot-go/internal/gnuplottest"
	"pgregory.net/rapid"
)

// TestProperty_CallOrderPreserved checks that, for any mix of Send, Sendf
// and Append calls, gnuplot receives the concatenation of each call's
// output in call order.
func TestProperty_CallOrderPreserved(t *testing.T) {
	exe := gnuplottest.Use(t, gnuplottest.ModeCat)
	dir := t.TempDir()
	word := rapid.StringMatching(`[a-z=;]{1,8}`)

	iteration := 0

	rapid.Check(t, func(rt *rapid.T) {
		iteration++
		logPath := filepath.Join(dir, "run-"+strconv.Itoa(iteration)+".log")

		g, err := gnuplot.New(context.Background(),
			gnuplot.WithExecutable(exe),
			gnuplot.WithSkipVersionCheck(),
			gnuplot.WithPersist(false),
			gnuplot.WithLogFile(logPath),
			gnuplot.WithLogSettle(0),
		)
		require.NoError(rt, err)

		var want strings.Builder

		ops := rapid.IntRange(0, 20).Draw(rt, "ops")
		for i := range ops {
			label := "op" + strconv.Itoa(i)

			switch rapid.IntRange(0, 4).Draw(rt, label) {
			case 0:
				s := word.Draw(rt, label+"-line")
				require.NoError(rt, g.Send(s))
				want.WriteString(s + "\n")
			case 1:
				n := rapid.Int().Draw(rt, label+"-int")
				require.NoError(rt, g.Sendf("n=%d", n))
				want.WriteString("n=" + strconv.Itoa(n) + "\n")
			case 2:
				s := word.Draw(rt, label+"-text")
				require.NoError(rt, g.Append(gnuplot.Text(s)))
				want.WriteString(" " + s)
			case 3:
				n := rapid.Int().Draw(rt, label+"-num")
				require.NoError(rt, g.Append(gnuplot.Int(n), gnuplot.Sync))
				want.WriteString(" " + strconv.Itoa(n))
			case 4:
				require.NoError(rt, g.Append(gnuplot.Endl))
				want.WriteString("\n")
			}
		}

		require.NoError(rt, g.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(rt, err)

		_, got, _ := strings.Cut(string(data), "\n")
		require.Equal(rt, want.String(), got)
	})
}
