package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fetchback/fetchback"
)

var explainShapes bool

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print the fetch decision for every configured column",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := cfg.backend()
		if err != nil {
			return err
		}

		var (
			preExec    []fetchback.Column
			returning  []fetchback.Column
			postSelect []fetchback.Column
			deferred   []fetchback.Column
		)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "COLUMN\tDECISION\tNOTE")
		for _, cc := range cfg.Columns {
			col, err := cc.column(cfg.Table)
			if err != nil {
				return err
			}

			d, err := fetchback.Decide(col, backend)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s\t%s\t%s\n", col.Name, d, decisionNote(d))

			switch d {
			case fetchback.PreExecute:
				preExec = append(preExec, col)
			case fetchback.Returning:
				returning = append(returning, col)
			case fetchback.PostSelect:
				postSelect = append(postSelect, col)
			case fetchback.PostSelectDeferred:
				deferred = append(deferred, col)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if explainShapes {
			printShapes(cmd, preExec, returning, postSelect, deferred)
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().BoolVar(&explainShapes, "shapes", false, "also print illustrative statement shapes")
}

func decisionNote(d fetchback.Decision) string {
	switch d {
	case fetchback.None:
		return "value supplied by the caller"
	case fetchback.Returning:
		return "captured in the write statement"
	case fetchback.PreExecute:
		return "computed with a SELECT before the write"
	case fetchback.PostSelect:
		return "fetched right after the write (extra round-trip)"
	case fetchback.PostSelectDeferred:
		return "fetched on next access"
	default:
		return ""
	}
}

func printShapes(cmd *cobra.Command, preExec, returning, postSelect, deferred []fetchback.Column) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	for _, col := range preExec {
		fmt.Fprintf(out, "before the write:\tSELECT %s\n", col.Expression)
	}

	insert := fmt.Sprintf("INSERT INTO %s (...) VALUES (...)", cfg.Table)
	if len(returning) > 0 {
		insert += " RETURNING " + columnList(returning)
	}
	fmt.Fprintf(out, "the write:\t%s\n", insert)

	if len(postSelect) > 0 {
		fmt.Fprintf(out, "after the write:\tSELECT %s FROM %s WHERE <pk>\n", columnList(postSelect), cfg.Table)
	}
	if len(deferred) > 0 {
		fmt.Fprintf(out, "on next access:\tSELECT %s FROM %s WHERE <pk>\n", columnList(deferred), cfg.Table)
	}
}

func columnList(cols []fetchback.Column) string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return strings.Join(names, ", ")
}
