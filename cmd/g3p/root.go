package main

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	gnuplot "github.com/wagiedev/gnuplot-go"
	"github.com/wagiedev/gnuplot-go/internal/config"
)

// Configuration keys.
const (
	keyGnuplot   = "gnuplot"
	keyPersist   = "persist"
	keyLogSettle = "log_settle"
	keyVerbose   = "verbose"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	var cfgFile string

	root := &cobra.Command{
		Use:          "g3p",
		Short:        "Drive gnuplot from the command line",
		Long:         `g3p sends commands and inline data to gnuplot over a pipe and reads back what gnuplot prints.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig(v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/g3p/config.yaml)")
	flags.String("gnuplot", "", "gnuplot executable (default: $GNUPLOT or PATH)")
	flags.Bool("persist", true, "keep plot windows open after exit")
	flags.Duration("log-settle", config.DefaultLogSettle, "wait before reading gnuplot output")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	_ = v.BindPFlag(keyGnuplot, flags.Lookup("gnuplot"))
	_ = v.BindPFlag(keyPersist, flags.Lookup("persist"))
	_ = v.BindPFlag(keyLogSettle, flags.Lookup("log-settle"))
	_ = v.BindPFlag(keyVerbose, flags.Lookup("verbose"))

	root.AddCommand(
		newVersionCmd(v),
		newConfigCmd(v),
		newEvalCmd(v),
		newPlotCmd(v),
	)

	return root
}

// loadConfig reads the config file and G3P_* environment variables into v.
// A missing default config file is not an error; a missing --config file is.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetDefault(keyPersist, true)
	v.SetDefault(keyLogSettle, config.DefaultLogSettle)

	v.SetEnvPrefix("G3P")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)

		return v.ReadInConfig()
	}

	home, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(home, ".config", "g3p"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := stderrors.AsType[viper.ConfigFileNotFoundError](err); ok {
			return nil
		}

		return err
	}

	return nil
}

// newLogger builds the CLI logger: warnings only unless verbose.
func newLogger(v *viper.Viper, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// channelOptions turns configuration into channel options.
func channelOptions(v *viper.Viper, log *slog.Logger, extra ...gnuplot.Option) []gnuplot.Option {
	opts := []gnuplot.Option{
		gnuplot.WithLogger(log),
		gnuplot.WithPersist(v.GetBool(keyPersist)),
		gnuplot.WithLogSettle(durationOr(v.GetDuration(keyLogSettle), config.DefaultLogSettle)),
	}

	if exe := v.GetString(keyGnuplot); exe != "" {
		opts = append(opts, gnuplot.WithExecutable(exe))
	}

	return append(opts, extra...)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d < 0 {
		return fallback
	}

	return d
}
