package vectorstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
)

// CompanyRecord is a source company row awaiting profile embedding. Data is
// the raw JSONB profile payload.
type CompanyRecord struct {
	Name string
	Data []byte
}

// NewsRecord is a source news row awaiting embedding.
type NewsRecord struct {
	CompanyName  string
	Title        string
	OriginalLink string
	NewsDate     time.Time
}

// Companies lists every source company with its profile payload.
func (s *Store) Companies(ctx context.Context) ([]CompanyRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, data FROM company`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []CompanyRecord
	for rows.Next() {
		var c CompanyRecord
		if err := rows.Scan(&c.Name, &c.Data); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// HasProfileDoc reports whether a profile document already exists for a company.
func (s *Store) HasProfileDoc(ctx context.Context, companyName string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM company_docs
		   WHERE company_name = $1 AND doc_type = 'profile'
		 )`,
		companyName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check profile doc for %s: %w", companyName, err)
	}
	return exists, nil
}

// InsertProfileDoc stores the embedded profile document for a company.
func (s *Store) InsertProfileDoc(ctx context.Context, companyName, content string, embedding []float32) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO company_docs (company_name, doc_type, content, embedding)
		 VALUES ($1, 'profile', $2, $3)`,
		companyName, content, pgvector.NewVector(embedding),
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile doc for %s: %w", companyName, err)
	}
	return nil
}

// UnembeddedNews lists news rows that have no matching document yet. The
// match key is the md5 content hash of the rendered news text, computed on
// the database side to stay consistent with the generated content_hash
// column.
func (s *Store) UnembeddedNews(ctx context.Context) ([]NewsRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.name, cn.title, COALESCE(cn.original_link, ''), cn.news_date
		FROM company_news cn
		JOIN company c
		  ON c.id = cn.company_id
		LEFT JOIN company_docs cd
		  ON cd.company_name = c.name
		 AND cd.doc_type     = 'news'
		 AND cd.content_hash = md5(cn.title || E'\n\n' || cn.original_link)
		WHERE cd.company_name IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unembedded news: %w", err)
	}
	defer rows.Close()

	var news []NewsRecord
	for rows.Next() {
		var n NewsRecord
		if err := rows.Scan(&n.CompanyName, &n.Title, &n.OriginalLink, &n.NewsDate); err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		news = append(news, n)
	}
	return news, rows.Err()
}

// InsertNewsDoc stores an embedded news document. Duplicates (same company,
// type, and content hash) are silently skipped.
func (s *Store) InsertNewsDoc(ctx context.Context, companyName, content string, embedding []float32, publishedAt time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO company_docs (company_name, doc_type, content, embedding, published_at)
		 VALUES ($1, 'news', $2, $3, $4)
		 ON CONFLICT (company_name, doc_type, content_hash) DO NOTHING`,
		companyName, content, pgvector.NewVector(embedding), publishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert news doc for %s: %w", companyName, err)
	}
	return nil
}
