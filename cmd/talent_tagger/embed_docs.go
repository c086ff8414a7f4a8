package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchright/talent-tagger/internal/config"
	"github.com/searchright/talent-tagger/internal/ingest"
	"github.com/searchright/talent-tagger/internal/llm"
	"github.com/searchright/talent-tagger/internal/logger"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

var embedDocsCmd = &cobra.Command{
	Use:   "embed-docs",
	Short: "Embed pending company profiles and news",
	Long:  `Embed company profiles and news rows that have no document yet and insert them into the document store.`,
	RunE:  runEmbedDocs,
}

func init() {
	rootCmd.AddCommand(embedDocsCmd)
}

func runEmbedDocs(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	store, err := vectorstore.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, llm.DefaultConfig(), log)
	if err != nil {
		return err
	}

	runner, err := ingest.NewRunner(store, client, log)
	if err != nil {
		return err
	}

	if err := runner.Run(ctx); err != nil {
		return err
	}

	log.Info("embedding insertion complete")
	return nil
}
