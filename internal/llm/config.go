package llm

import "github.com/sashabaranov/go-openai"

// Config holds the model configuration for the application
type Config struct {
	CompletionModel string
	EmbeddingModel  openai.EmbeddingModel
}

// DefaultConfig returns the default model configuration
func DefaultConfig() *Config {
	return &Config{
		CompletionModel: openai.GPT3Dot5Turbo,
		EmbeddingModel:  openai.AdaEmbeddingV2,
	}
}

// WithCompletionModel returns a copy of the config with the completion model overridden
func (c *Config) WithCompletionModel(model string) *Config {
	out := *c
	if model != "" {
		out.CompletionModel = model
	}
	return &out
}
