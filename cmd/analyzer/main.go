// Package main provides the entry point for the resume analyzer service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Resume analysis scoring service",
	Long:  "Analyzer scores resumes and job descriptions: match scoring, job recommendations, interview success prediction, resume feedback, and ATS compatibility checks, via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
