package main

import (
	"github.com/spf13/cobra"
)

var (
	cfg     *Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fetchback",
	Short: "Explain how server-generated column values are fetched after writes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" || cmd.Name() == "backends" {
			return nil
		}

		var err error
		cfg, err = LoadConfig(cfgFile)
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: fetchback.yaml in the working directory)")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(versionCmd)
}
