// Command fetchback inspects default-fetch planning: it explains, for a
// configured table and backend, how each server-generated column value will
// be fetched after a write and what the emitted statements look like.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fetchback:", err)
		os.Exit(1)
	}
}
