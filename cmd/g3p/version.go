package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wagiedev/gnuplot-go/internal/discovery"
)

func newVersionCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the gnuplot executable and its version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := newLogger(v, cmd.ErrOrStderr())

			path, err := discovery.NewDiscoverer(&discovery.Config{
				Executable:       v.GetString(keyGnuplot),
				SkipVersionCheck: true,
				Logger:           log,
			}).Discover(ctx)
			if err != nil {
				return err
			}

			ver, err := discovery.Version(ctx, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "g3p %s\n", version)
			fmt.Fprintf(out, "gnuplot %s (%s)\n", ver, path)

			return nil
		},
	}
}
