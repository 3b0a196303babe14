// Package main provides the entry point for the Barangay Records HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barangay_api",
	Short: "Barangay Records HTTP API Server",
	Long:  "Barangay Records manages residents, households, blotter incidents, services, and officials, and issues barangay certificates as PDF and Word documents via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
