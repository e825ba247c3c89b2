package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leapfrog-api",
	Short: "LeapFrog Health API server",
	Long:  `The REST API server for the LeapFrog patient progress analytics platform.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Local development reads settings from .env; missing file is fine
	_ = godotenv.Load()

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
