// Package inference implements the retrieval-augmented experience-tag
// pipeline: company resolution, evidence retrieval, prompt composition, one
// completion call, and response decoding.
package inference

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/searchright/talent-tagger/internal/alias"
	"github.com/searchright/talent-tagger/internal/types"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

// evidenceTopK is the number of documents retrieved per resume position.
const evidenceTopK = 3

// Retriever is the document-store contract the pipeline depends on
type Retriever interface {
	MostSimilar(ctx context.Context, companyName string, startDate, endDate *time.Time, topK int) ([]vectorstore.Document, error)
}

// CompletionClient is the model contract the pipeline depends on
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Clock provides the current date, injectable so retrieval windows for
// open-ended positions are deterministic in tests.
type Clock func() time.Time

// Service orchestrates the tag inference pipeline. Stateless per request;
// safe for concurrent use.
type Service struct {
	resolver  *alias.Resolver
	retriever Retriever
	client    CompletionClient
	now       Clock
	log       *zap.Logger
}

// NewService creates a new inference service
func NewService(resolver *alias.Resolver, retriever Retriever, client CompletionClient, log *zap.Logger) *Service {
	return &Service{
		resolver:  resolver,
		retriever: retriever,
		client:    client,
		now:       time.Now,
		log:       log,
	}
}

// WithClock overrides the current-date provider and returns the service
func (s *Service) WithClock(now Clock) *Service {
	s.now = now
	return s
}

// Run executes the full pipeline for one resume payload. Failure modes:
// *ValidationError for an empty position list (checked before any external
// call), *vectorstore.NoEmbeddingError when a company has no indexed profile,
// *MalformedResponseError when the model output cannot be decoded, and
// wrapped transport errors otherwise.
func (s *Service) Run(ctx context.Context, payload *types.ResumePayload) (*types.TagResult, error) {
	if len(payload.Positions) == 0 {
		return nil, &ValidationError{Rule: "positions must contain at least one entry"}
	}

	var docs []vectorstore.Document
	for _, pos := range payload.Positions {
		company := s.resolver.Resolve(pos.CompanyName)
		start, end := s.employmentWindow(pos)

		s.log.Debug("retrieving evidence",
			zap.String("raw_company", pos.CompanyName),
			zap.String("company", company),
			zap.String("title", pos.Title),
			zap.Time("start", start),
			zap.Time("end", end),
		)

		found, err := s.retriever.MostSimilar(ctx, company, &start, &end, evidenceTopK)
		if err != nil {
			return nil, err
		}
		docs = append(docs, found...)
	}

	prompt, err := ComposePrompt(payload, docs)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}
	s.log.Debug("raw model response", zap.String("response", raw))

	tags, err := DecodeTags(raw)
	if err != nil {
		return nil, err
	}

	return &types.TagResult{Tags: tags}, nil
}

// employmentWindow derives the evidence window for a position: first day of
// the start month through the last day of the end month, or today when the
// position is current.
func (s *Service) employmentWindow(pos types.Position) (time.Time, time.Time) {
	start := time.Date(pos.StartEndDate.Start.Year, time.Month(pos.StartEndDate.Start.Month), 1, 0, 0, 0, 0, time.UTC)

	var end time.Time
	if e := pos.StartEndDate.End; e != nil {
		end = time.Date(e.Year, time.Month(e.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	} else {
		end = s.now()
	}
	return start, end
}
