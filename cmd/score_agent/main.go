// Package main provides the entry point for the Resume Scorer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "score_agent",
	Short: "Resume Scorer HTTP API Server",
	Long:  "Resume Scorer evaluates resumes against job descriptions: hard-requirement gates, weighted section scores, keyword coverage and edit suggestions, via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
