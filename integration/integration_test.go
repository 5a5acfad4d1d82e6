//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gnuplot "github.com/wagiedev/gnuplot-go"
)

// open starts a real gnuplot with log capture, skipping when it is not
// installed.
func open(t *testing.T) *gnuplot.Gnuplot {
	t.Helper()

	g, err := gnuplot.New(context.Background(),
		gnuplot.WithPersist(false),
		gnuplot.WithLogCapture(),
		gnuplot.WithLogSettle(300*time.Millisecond),
		gnuplot.WithEnv(map[string]string{"GNUTERM": "dumb"}),
	)
	if _, ok := errors.AsType[*gnuplot.NotFoundError](err); ok {
		t.Skip("gnuplot not installed")
	}

	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, g.Close()) })

	return g
}
