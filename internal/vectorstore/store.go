// Package vectorstore provides PostgreSQL/pgvector access to the company
// document store used for evidence retrieval.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
	"go.uber.org/zap"
)

// Document types stored in company_docs. The single profile row per company
// is the similarity anchor; news rows are the retrieval candidate pool.
const (
	DocTypeProfile = "profile"
	DocTypeNews    = "news"
)

// DefaultTopK bounds a similarity query when the caller does not specify a limit.
const DefaultTopK = 5

// Document is one retrieved unit of evidence. PublishedAt is nil for
// profile documents.
type Document struct {
	CompanyName string
	DocType     string
	Content     string
	PublishedAt *time.Time
}

// Store wraps a PostgreSQL connection pool over the company document tables.
// All retrieval methods are read-only; writes happen only through the
// ingestion methods in etl.go.
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Connect establishes a connection pool and registers pgvector types on
// every connection.
func Connect(ctx context.Context, databaseURL string, log *zap.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, log: log}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// MostSimilar returns up to topK news documents for a company, ordered by
// ascending cosine distance to the company's profile embedding. When both
// startDate and endDate are given, candidates are restricted to those
// published inside the inclusive interval. A missing or null profile
// embedding is a *NoEmbeddingError; an empty result is not an error.
func (s *Store) MostSimilar(ctx context.Context, companyName string, startDate, endDate *time.Time, topK int) ([]Document, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	s.log.Debug("similarity search",
		zap.String("company", companyName),
		zap.Timep("start", startDate),
		zap.Timep("end", endDate),
		zap.Int("top_k", topK),
	)

	var emb *pgvector.Vector
	err := s.pool.QueryRow(ctx,
		`SELECT embedding FROM company_docs
		 WHERE doc_type = 'profile' AND company_name = $1
		 LIMIT 1`,
		companyName,
	).Scan(&emb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NoEmbeddingError{CompanyName: companyName}
		}
		return nil, fmt.Errorf("failed to fetch profile embedding for %s: %w", companyName, err)
	}
	if emb == nil {
		return nil, &NoEmbeddingError{CompanyName: companyName}
	}

	query := `SELECT company_name, doc_type, content, published_at
		FROM company_docs
		WHERE doc_type != 'profile' AND company_name = $1`
	args := []any{companyName}

	if startDate != nil && endDate != nil {
		query += ` AND published_at BETWEEN $2 AND $3 ORDER BY embedding <=> $4 LIMIT $5`
		args = append(args, *startDate, *endDate, *emb, topK)
	} else {
		query += ` ORDER BY embedding <=> $2 LIMIT $3`
		args = append(args, *emb, topK)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("similarity query failed for %s: %w", companyName, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.CompanyName, &d.DocType, &d.Content, &d.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("similarity query failed for %s: %w", companyName, err)
	}

	s.log.Debug("similarity search done", zap.String("company", companyName), zap.Int("documents", len(docs)))
	return docs, nil
}
