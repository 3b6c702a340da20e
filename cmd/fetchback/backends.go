package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fetchback/fetchback"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List built-in backends and their capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "BACKEND\tRETURNING\tDEFAULT KEYWORD")
		for _, b := range fetchback.Backends() {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				b.Name(),
				yesNo(b.Has(fetchback.FeatureReturning)),
				yesNo(b.Has(fetchback.FeatureDefaultKeyword)),
			)
		}
		return w.Flush()
	},
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
