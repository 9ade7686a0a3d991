// Package main is the HeartGuard command line: the HTTP API server, one-off
// predictions and database migrations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "heartguard",
	Short:         "Heart disease risk prediction service",
	Long:          "HeartGuard scores clinical records for heart disease risk, explains the score and stratifies patients into care-management levels.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
