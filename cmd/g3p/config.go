package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// settings is the effective CLI configuration as written to config.yaml.
type settings struct {
	Gnuplot   string `yaml:"gnuplot"`
	Persist   bool   `yaml:"persist"`
	LogSettle string `yaml:"log_settle"`
	Verbose   bool   `yaml:"verbose"`
}

func currentSettings(v *viper.Viper) settings {
	return settings{
		Gnuplot:   v.GetString(keyGnuplot),
		Persist:   v.GetBool(keyPersist),
		LogSettle: v.GetDuration(keyLogSettle).Round(time.Millisecond).String(),
		Verbose:   v.GetBool(keyVerbose),
	}
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration g3p would use after merging the config file,
G3P_* environment variables and flags. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if used := v.ConfigFileUsed(); used != "" {
				cmd.PrintErrf("# from %s\n", used)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(currentSettings(v)); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
