package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.3.1"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fetchback version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "fetchback", version)
	},
}
