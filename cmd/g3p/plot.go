package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	gnuplot "github.com/wagiedev/gnuplot-go"
	"github.com/wagiedev/gnuplot-go/internal/script"
	"github.com/wagiedev/gnuplot-go/internal/watcher"
	"golang.org/x/sync/errgroup"
)

func newPlotCmd(v *viper.Viper) *cobra.Command {
	var (
		watch    bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "plot script.toml",
		Short: "Render a TOML plot script",
		Long: `Render a TOML plot script: data blocks plus the gnuplot commands that
use them. With --watch the script is rendered again each time it changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd.ErrOrStderr())
			path := args[0]

			if err := render(cmd.Context(), v, log, path); err != nil {
				return err
			}

			if !watch {
				return nil
			}

			return watchScript(cmd.Context(), v, log, path, debounce)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "render again when the script changes")
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultConfig("").DebounceDur, "quiet period before re-rendering")

	return cmd
}

// render loads the script at path and runs it in a fresh gnuplot. opts are
// applied after the configured options.
func render(ctx context.Context, v *viper.Viper, log *slog.Logger, path string, opts ...gnuplot.Option) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	var extra []gnuplot.Option
	if s.Persist != nil {
		extra = append(extra, gnuplot.WithPersist(*s.Persist))
	}

	extra = append(extra, opts...)

	run := func(g *gnuplot.Gnuplot) error {
		return s.Run(g)
	}

	if err := gnuplot.With(ctx, run, channelOptions(v, log, extra...)...); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	log.Debug("rendered script", "path", path, "blocks", len(s.Blocks), "commands", len(s.Commands))

	return nil
}

// watchScript re-renders path on every change until ctx is cancelled.
// Render failures are logged and do not stop the watch.
func watchScript(ctx context.Context, v *viper.Viper, log *slog.Logger, path string, debounce time.Duration) error {
	cfg := watcher.DefaultConfig(path)
	cfg.DebounceDur = debounce
	cfg.Logger = log

	w, err := watcher.New(cfg)
	if err != nil {
		return err
	}

	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}

				if err := render(ctx, v, log, path); err != nil {
					log.Error("render failed", "path", path, "error", err)
				}
			}
		}
	})

	log.Info("watching script", "path", path)

	return g.Wait()
}
