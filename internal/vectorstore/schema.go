package vectorstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the pgvector extension, source tables, and indexes if
// they do not already exist. Safe to run repeatedly. It opens its own plain
// connection: Connect registers the vector type on every connection, which
// fails on a fresh database before the extension exists.
func EnsureSchema(ctx context.Context, databaseURL string) error {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS vector;

		CREATE TABLE IF NOT EXISTS company (
		  id   SERIAL PRIMARY KEY,
		  name VARCHAR(255) NOT NULL,
		  data JSONB        NOT NULL
		);

		CREATE TABLE IF NOT EXISTS company_news (
		  id            SERIAL PRIMARY KEY,
		  company_id    INTEGER NOT NULL
		                 REFERENCES company(id) ON DELETE CASCADE,
		  title         VARCHAR(1000) NOT NULL,
		  original_link TEXT,
		  news_date     DATE NOT NULL
		);

		CREATE TABLE IF NOT EXISTS company_docs (
		  id           SERIAL PRIMARY KEY,
		  company_name TEXT NOT NULL,
		  doc_type     TEXT NOT NULL,
		  content      TEXT NOT NULL,
		  embedding    VECTOR(1536),
		  content_hash TEXT GENERATED ALWAYS AS (md5(content)) STORED,
		  published_at DATE
		);

		CREATE INDEX IF NOT EXISTS idx_company_docs_embedding
		  ON company_docs USING ivfflat (embedding vector_cosine_ops);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_company_docs_news_full
		  ON company_docs (company_name, doc_type, content_hash);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
