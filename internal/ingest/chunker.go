// Package ingest implements the embedding ETL: chunking source documents,
// embedding them, and writing them into the company document store.
package ingest

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// maxChunkTokens keeps every chunk inside the embedding model's input limit.
const maxChunkTokens = 8000

// Chunker splits text into token-bounded chunks using the cl100k_base
// encoding, matching the embedding model's tokenizer.
type Chunker struct {
	encoding  *tiktoken.Tiktoken
	maxTokens int
}

// NewChunker creates a chunker with the default token budget
func NewChunker() (*Chunker, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load cl100k_base encoding: %w", err)
	}
	return &Chunker{encoding: enc, maxTokens: maxChunkTokens}, nil
}

// Split returns the text as one or more chunks, each at most maxTokens
// tokens. Short inputs come back as a single chunk.
func (c *Chunker) Split(text string) []string {
	tokens := c.encoding.Encode(text, nil, nil)

	var chunks []string
	for i := 0; i < len(tokens); i += c.maxTokens {
		end := i + c.maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, c.encoding.Decode(tokens[i:end]))
	}
	return chunks
}

// averageEmbeddings combines chunk embeddings into a single vector by
// element-wise mean. All inputs must share the same dimension.
func averageEmbeddings(embeddings [][]float32) []float32 {
	if len(embeddings) == 0 {
		return nil
	}
	if len(embeddings) == 1 {
		return embeddings[0]
	}

	avg := make([]float32, len(embeddings[0]))
	for _, emb := range embeddings {
		for i, v := range emb {
			avg[i] += v
		}
	}
	n := float32(len(embeddings))
	for i := range avg {
		avg[i] /= n
	}
	return avg
}
