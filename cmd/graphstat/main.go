// Command graphstat runs structural analyses and 2-D layouts over graphs
// described as CSV edge lists.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("graphstat: command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
