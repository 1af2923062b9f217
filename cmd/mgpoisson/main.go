// SPDX-License-Identifier: MIT

// Command mgpoisson solves the manufactured 2-D Poisson problem with
// geometric multigrid or plain relaxation and reports how it converged.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "mgpoisson [command] (flags)",
	Short:        "geometric multigrid solver for the 2-D Poisson equation",
	Long:         ``,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(solveCmd, sweepCmd)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
