// Package llm provides the completion and embedding client abstractions.
package llm

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client is an abstraction over the completion provider
type Client interface {
	// Complete issues a single chat completion for the prompt and returns the raw response text
	Complete(ctx context.Context, prompt string) (string, error)
}

// Embedder is an abstraction over the embedding provider
type Embedder interface {
	// Embed returns the embedding vector for the input text
	Embed(ctx context.Context, input string) ([]float32, error)
}

// OpenAIClient implements Client and Embedder for the OpenAI API
type OpenAIClient struct {
	client *openai.Client
	config *Config
	log    *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey string, config *Config, log *zap.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		config: config,
		log:    log,
	}, nil
}

// Complete issues one chat completion at deterministic (zero) temperature.
// go-openai omits a literal zero temperature from the request, so the
// smallest positive float stands in for it.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.CompletionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	c.log.Debug("completion done",
		zap.String("model", c.config.CompletionModel),
		zap.Int("tokens_used", resp.Usage.TotalTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// Embed returns the embedding vector for the input text
func (c *OpenAIClient) Embed(ctx context.Context, input string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{input},
		Model: c.config.EmbeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no data in embedding response")
	}
	return resp.Data[0].Embedding, nil
}
