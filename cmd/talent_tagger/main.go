// Package main provides the entry point for the talent tagger service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_tagger",
	Short: "Talent experience-tag inference service",
	Long:  "Talent Tagger infers human-readable experience tags from structured resumes by combining pgvector evidence retrieval with a single LLM completion.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
