// Package main provides the entry point for the jobdesk CLI, a client for
// the job-board backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobdesk",
	Short: "Job board client",
	Long:  "jobdesk drives the job-board backend from the terminal: accounts, job postings, applications, CVs, and company analytics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
