package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	gnuplot "github.com/wagiedev/gnuplot-go"
)

func newEvalCmd(v *viper.Viper) *cobra.Command {
	var exprs []string

	cmd := &cobra.Command{
		Use:   "eval [-e command]... [file|-]",
		Short: "Run gnuplot commands and print what gnuplot prints",
		Example: `  g3p eval -e 'x = 6*7' -e 'print x'
  g3p eval commands.gp
  echo 'print pi' | g3p eval -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src io.Reader

			if len(args) == 1 {
				if args[0] == "-" {
					src = cmd.InOrStdin()
				} else {
					f, err := os.Open(args[0])
					if err != nil {
						return err
					}
					defer f.Close()

					src = f
				}
			}

			if len(exprs) == 0 && src == nil {
				return fmt.Errorf("nothing to evaluate: pass -e or a file")
			}

			log := newLogger(v, cmd.ErrOrStderr())

			var output string

			err := gnuplot.With(cmd.Context(), func(g *gnuplot.Gnuplot) error {
				if err := g.Script(exprs...); err != nil {
					return err
				}

				if src != nil {
					if err := sendLines(g, src); err != nil {
						return err
					}
				}

				text, err := g.Log(0)
				if err != nil {
					return err
				}

				output = stripBanner(text)

				return nil
			}, channelOptions(v, log, gnuplot.WithLogCapture())...)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), output)

			return err
		},
	}

	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "gnuplot command (repeatable)")

	return cmd
}

func sendLines(g *gnuplot.Gnuplot, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := g.Send(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// stripBanner drops everything up to and including the log banner line.
func stripBanner(text string) string {
	_, after, found := strings.Cut(text, gnuplot.LogBanner+"\n")
	if !found {
		return text
	}

	return after
}
