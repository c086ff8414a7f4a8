package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/searchright/talent-tagger/internal/llm"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

// Runner embeds company profiles and news that are not yet present in the
// document store. Rows already embedded are skipped, so repeated runs only
// pick up new source data.
type Runner struct {
	store    *vectorstore.Store
	embedder llm.Embedder
	chunker  *Chunker
	log      *zap.Logger
}

// NewRunner creates a new ingestion runner
func NewRunner(store *vectorstore.Store, embedder llm.Embedder, log *zap.Logger) (*Runner, error) {
	chunker, err := NewChunker()
	if err != nil {
		return nil, err
	}
	return &Runner{
		store:    store,
		embedder: embedder,
		chunker:  chunker,
		log:      log,
	}, nil
}

// Run embeds all pending profiles, then all pending news
func (r *Runner) Run(ctx context.Context) error {
	if err := r.embedProfiles(ctx); err != nil {
		return err
	}
	return r.embedNews(ctx)
}

func (r *Runner) embedProfiles(ctx context.Context) error {
	companies, err := r.store.Companies(ctx)
	if err != nil {
		return err
	}

	for _, c := range companies {
		exists, err := r.store.HasProfileDoc(ctx, c.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		content := string(c.Data)
		embedding, err := r.embedText(ctx, content)
		if err != nil {
			return fmt.Errorf("failed to embed profile for %s: %w", c.Name, err)
		}

		if err := r.store.InsertProfileDoc(ctx, c.Name, content, embedding); err != nil {
			return err
		}
		r.log.Info("embedded profile", zap.String("company", c.Name))
	}
	return nil
}

func (r *Runner) embedNews(ctx context.Context) error {
	news, err := r.store.UnembeddedNews(ctx)
	if err != nil {
		return err
	}

	for _, n := range news {
		content := n.Title + "\n\n" + n.OriginalLink

		embedding, err := r.embedText(ctx, content)
		if err != nil {
			return fmt.Errorf("failed to embed news for %s: %w", n.CompanyName, err)
		}

		if err := r.store.InsertNewsDoc(ctx, n.CompanyName, content, embedding, n.NewsDate); err != nil {
			return err
		}
		r.log.Info("embedded news",
			zap.String("company", n.CompanyName),
			zap.Time("published", n.NewsDate),
		)
	}
	return nil
}

// embedText chunks the text, embeds every chunk, and averages the chunk
// vectors into a single document embedding.
func (r *Runner) embedText(ctx context.Context, text string) ([]float32, error) {
	chunks := r.chunker.Split(text)

	embeddings := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		emb, err := r.embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, emb)
	}
	return averageEmbeddings(embeddings), nil
}
