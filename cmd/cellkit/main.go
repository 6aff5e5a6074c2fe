package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cellkit",
		Short: "Inspect and manage cellkit persistence stores",
		Long: `cellkit is the companion CLI for the cellkit reactive cell library.

It operates on the key/value stores that back Persistent cells, letting
you read, write, list, and delete persisted values out of band:

  cellkit store --dir ./state list
  cellkit store --dir ./state get theme
  cellkit store --badger ./db set theme '"dark"'`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		storeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
