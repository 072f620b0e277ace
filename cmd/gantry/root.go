package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gantry",
	Short: "Gantry is the error-surface and CI tooling for the durable execution testing stack",
	Long: `Gantry bundles two tools used around the durable execution testing stack:
an HTTP fixture server that emits AWS-compliant error responses for SDK
integration tests, and a pull-request title linter for CI.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
