// Package main provides the entry point for the GlobalPath job agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "globalpath",
	Short: "GlobalPath International Job Portal agent",
	Long:  "GlobalPath browses a curated catalog of international job listings, captures job alerts, and runs AI-assisted visa document verification for applications.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
