package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchright/talent-tagger/internal/alias"
	"github.com/searchright/talent-tagger/internal/config"
	"github.com/searchright/talent-tagger/internal/inference"
	"github.com/searchright/talent-tagger/internal/llm"
	"github.com/searchright/talent-tagger/internal/logger"
	"github.com/searchright/talent-tagger/internal/server"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /infer for resume tag inference.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
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

	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, llm.DefaultConfig().WithCompletionModel(cfg.CompletionModel), log)
	if err != nil {
		return err
	}

	svc := inference.NewService(alias.NewResolver(alias.DefaultTable()), store, client, log)

	return server.New(cfg.Port, svc, log).Start()
}
