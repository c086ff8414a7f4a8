package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchright/talent-tagger/internal/config"
	"github.com/searchright/talent-tagger/internal/logger"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the document-store schema",
	Long:  `Create the pgvector extension, source tables, and indexes if they do not exist.`,
	RunE:  runInitDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := vectorstore.EnsureSchema(context.Background(), cfg.DatabaseURL); err != nil {
		return err
	}

	log.Info("schema created or verified")
	return nil
}
